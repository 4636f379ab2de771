package sync

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
	admin := api.Group("/admin", auth.RequireRole(auth.RoleAdmin))
	admin.GET("/sync/services", h.ListServices)
	admin.GET("/sync/services/:id", h.GetService)
	admin.POST("/sync/services/:id/run", h.RunSync)
	admin.POST("/sync/services/:id/autosync", h.SetAutoSync)
	admin.GET("/sync/logs", h.ListLogs)
	admin.GET("/sync/stats", h.GetStats)
}

func (h *Handler) ListServices(c echo.Context) error {
	matched, err := h.svc.SearchServices(c.Request().Context(), browse.Criteria{
		Query:  c.QueryParam("q"),
		Facets: map[string]string{"status": c.QueryParam("status")},
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": matched, "total": len(matched)})
}

func (h *Handler) GetService(c echo.Context) error {
	svc, err := h.svc.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "sync service not found")
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *Handler) RunSync(c echo.Context) error {
	out, err := h.svc.Run(c.Request().Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "sync service not found")
	case errors.Is(err, dispatch.ErrInFlight):
		return echo.NewHTTPError(http.StatusConflict, "sync already running for this service")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) SetAutoSync(c echo.Context) error {
	var in AutoSyncInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	out, err := h.svc.SetAutoSync(c.Request().Context(), c.Param("id"), in)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "sync service not found")
	case errors.Is(err, dispatch.ErrInFlight):
		return echo.NewHTTPError(http.StatusConflict, "toggle already in progress")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListLogs(c echo.Context) error {
	logs, err := h.svc.ListLogs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": logs, "total": len(logs)})
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
