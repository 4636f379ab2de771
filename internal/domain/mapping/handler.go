package mapping

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
	admin.GET("/mappings", h.ListMappings)
	admin.GET("/mappings/stats", h.GetStats)
	admin.GET("/mappings/export", h.ExportMappings)
	admin.GET("/mappings/:id", h.GetMapping)
	admin.POST("/mappings/:id/approve", h.reviewAction("approve"))
	admin.POST("/mappings/:id/reject", h.reviewAction("reject"))
}

func criteriaFromContext(c echo.Context) browse.Criteria {
	return browse.Criteria{
		Query:  c.QueryParam("q"),
		Facets: map[string]string{"status": c.QueryParam("status")},
	}
}

func (h *Handler) ListMappings(c echo.Context) error {
	matched, err := h.svc.SearchMappings(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	pg := pagination.FromContext(c)
	start, end := pg.Slice(len(matched))
	return c.JSON(http.StatusOK, pagination.NewResponse(matched[start:end], len(matched), pg.Limit, pg.Offset))
}

func (h *Handler) GetMapping(c echo.Context) error {
	m, err := h.svc.GetMapping(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "mapping not found")
	}
	return c.JSON(http.StatusOK, m)
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
			return echo.NewHTTPError(http.StatusNotFound, "mapping not found")
		case errors.Is(err, dispatch.ErrInFlight):
			return echo.NewHTTPError(http.StatusConflict, "review already in progress")
		case err != nil:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, out)
	}
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ExportMappings(c echo.Context) error {
	data, filename, err := h.svc.ExportJSON(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}
