package patientclaims

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swasthyasetu/portal/internal/platform/auth"
	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	patient := api.Group("/patient", auth.RequireRole(auth.RolePatient))
	patient.GET("/claims", h.ListClaims)
	patient.GET("/claims/:id", h.GetClaim)
	patient.POST("/claims", h.SubmitClaim)
}

func (h *Handler) ListClaims(c echo.Context) error {
	matched, err := h.svc.SearchClaims(c.Request().Context(), browse.Criteria{
		Query:  c.QueryParam("q"),
		Facets: map[string]string{"status": c.QueryParam("status")},
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": matched, "total": len(matched)})
}

func (h *Handler) GetClaim(c echo.Context) error {
	claim, err := h.svc.GetClaim(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "claim not found")
	}
	return c.JSON(http.StatusOK, claim)
}

func (h *Handler) SubmitClaim(c echo.Context) error {
	var in SubmissionInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	out, err := h.svc.Submit(c.Request().Context(), in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"message": "Please fill in all required fields",
				"errors":  verr.Fields,
			})
		}
		if errors.Is(err, dispatch.ErrInFlight) {
			return echo.NewHTTPError(http.StatusConflict, "submission already in progress")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}
