package auditlog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swasthyasetu/portal/internal/platform/auth"
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
	admin.GET("/audit-logs", h.ListEntries)
	admin.GET("/audit-logs/stats", h.GetStats)
	admin.GET("/audit-logs/export", h.ExportEntries)
	admin.GET("/audit-logs/:id", h.GetEntry)
}

func criteriaFromContext(c echo.Context) browse.Criteria {
	return browse.Criteria{
		Query: c.QueryParam("q"),
		Facets: map[string]string{
			"action":    c.QueryParam("action"),
			"user_type": c.QueryParam("user_type"),
		},
	}
}

func (h *Handler) ListEntries(c echo.Context) error {
	matched, err := h.svc.SearchEntries(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	pg := pagination.FromContext(c)
	start, end := pg.Slice(len(matched))
	return c.JSON(http.StatusOK, pagination.NewResponse(matched[start:end], len(matched), pg.Limit, pg.Offset))
}

func (h *Handler) GetEntry(c echo.Context) error {
	e, err := h.svc.GetEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "audit log entry not found")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ExportEntries(c echo.Context) error {
	data, filename, err := h.svc.ExportCSV(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
