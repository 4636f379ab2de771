package diagnosis

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
	doctor := api.Group("/doctor", auth.RequireRole(auth.RoleDoctor))
	doctor.GET("/patients", h.ListPatients)
	doctor.POST("/patients", h.RegisterPatient)
	doctor.GET("/patients/:id", h.GetPatient)
	doctor.GET("/patients/:id/problems", h.ListProblems)
	doctor.GET("/diagnoses/suggestions", h.ListSuggestions)
	doctor.GET("/treatments", h.GetTreatments)
	doctor.POST("/diagnoses", h.SubmitEntry)
}

func (h *Handler) ListPatients(c echo.Context) error {
	matched, err := h.svc.SearchPatients(c.Request().Context(), browse.Criteria{
		Query:  c.QueryParam("q"),
		Facets: map[string]string{"status": c.QueryParam("status")},
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": matched, "total": len(matched)})
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListProblems(c echo.Context) error {
	problems, err := h.svc.Problems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": problems, "total": len(problems)})
}

func (h *Handler) ListSuggestions(c echo.Context) error {
	matched, err := h.svc.SearchSuggestions(c.Request().Context(), browse.Criteria{
		Query:  c.QueryParam("q"),
		Facets: map[string]string{"category": c.QueryParam("category")},
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": matched, "total": len(matched)})
}

func (h *Handler) GetTreatments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.TreatmentRecommendations(c.Request().Context()))
}

func (h *Handler) RegisterPatient(c echo.Context) error {
	var in RegistrationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rec, out, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"message": "Please fill in all required fields",
				"errors":  verr.Fields,
			})
		}
		if errors.Is(err, dispatch.ErrInFlight) {
			return echo.NewHTTPError(http.StatusConflict, "this patient is already being saved")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"data": rec, "toast": out})
}

func (h *Handler) SubmitEntry(c echo.Context) error {
	var in EntryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	out, err := h.svc.Submit(c.Request().Context(), in)
	switch {
	case errors.Is(err, ErrIncompleteEntry):
		return echo.NewHTTPError(http.StatusBadRequest, "Please select a patient and at least one diagnosis")
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, dispatch.ErrInFlight):
		return echo.NewHTTPError(http.StatusConflict, "a diagnosis entry is already being saved for this patient")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}
