package claims

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swasthyasetu/portal/internal/platform/auth"
	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/pkg/browse"
	"github.com/swasthyasetu/portal/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	admin := api.Group("/admin", auth.RequireRole(auth.RoleAdmin))
	admin.GET("/claims", h.ListClaims)
	admin.GET("/claims/analytics", h.GetAnalytics)
	admin.GET("/claims/export", h.ExportClaims)
	admin.GET("/claims/rules", h.ListRules)
	admin.POST("/claims/rules", h.CreateRule)
	admin.GET("/claims/:id", h.GetClaim)
	admin.POST("/claims/:id/approve", h.reviewAction("approve"))
	admin.POST("/claims/:id/reject", h.reviewAction("reject"))
	admin.POST("/claims/:id/flag", h.reviewAction("flag"))
}

func criteriaFromContext(c echo.Context) browse.Criteria {
	return browse.Criteria{
		Query:  c.QueryParam("q"),
		Facets: map[string]string{"status": c.QueryParam("status")},
	}
}

func (h *Handler) ListClaims(c echo.Context) error {
	matched, err := h.svc.SearchClaims(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	pg := pagination.FromContext(c)
	start, end := pg.Slice(len(matched))
	return c.JSON(http.StatusOK, pagination.NewResponse(matched[start:end], len(matched), pg.Limit, pg.Offset))
}

func (h *Handler) GetClaim(c echo.Context) error {
	claim, err := h.svc.GetClaim(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "claim not found")
	}
	return c.JSON(http.StatusOK, claim)
}

func (h *Handler) reviewAction(action string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in ReviewInput
		if err := c.Bind(&in); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		out, err := h.svc.Review(c.Request().Context(), c.Param("id"), action, in)
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "claim not found")
		case errors.Is(err, dispatch.ErrInFlight):
			return echo.NewHTTPError(http.StatusConflict, "review already in progress")
		case err != nil:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, out)
	}
}

func (h *Handler) ListRules(c echo.Context) error {
	rules, err := h.svc.ListRules(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": rules, "total": len(rules)})
}

func (h *Handler) CreateRule(c echo.Context) error {
	var in CreateRuleInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	out, err := h.svc.CreateRule(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, dispatch.ErrInFlight) {
			return echo.NewHTTPError(http.StatusConflict, "submission already in progress")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetAnalytics(c echo.Context) error {
	analytics, err := h.svc.Analytics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analytics)
}

func (h *Handler) ExportClaims(c echo.Context) error {
	data, filename, err := h.svc.ExportCSV(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
