package users

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
	admin.GET("/users", h.ListUsers)
	admin.GET("/users/stats", h.GetStats)
	admin.GET("/users/export", h.ExportUsers)
	admin.GET("/users/:id", h.GetUser)
	admin.POST("/users", h.CreateUser)
	admin.POST("/users/:id/actions", h.PerformAction)
}

func criteriaFromContext(c echo.Context) browse.Criteria {
	return browse.Criteria{
		Query: c.QueryParam("q"),
		Facets: map[string]string{
			"type":   c.QueryParam("type"),
			"status": c.QueryParam("status"),
		},
	}
}

func (h *Handler) ListUsers(c echo.Context) error {
	matched, err := h.svc.SearchUsers(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	pg := pagination.FromContext(c)
	start, end := pg.Slice(len(matched))
	return c.JSON(http.StatusOK, pagination.NewResponse(matched[start:end], len(matched), pg.Limit, pg.Offset))
}

func (h *Handler) GetUser(c echo.Context) error {
	u, err := h.svc.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) PerformAction(c echo.Context) error {
	var in ActionInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	out, err := h.svc.PerformAction(c.Request().Context(), c.Param("id"), in)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	case errors.Is(err, dispatch.ErrInFlight):
		return echo.NewHTTPError(http.StatusConflict, "action already in progress")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var in CreateUserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	out, err := h.svc.CreateUser(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, dispatch.ErrInFlight) {
			return echo.NewHTTPError(http.StatusConflict, "submission already in progress")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ExportUsers(c echo.Context) error {
	data, filename, err := h.svc.ExportCSV(c.Request().Context(), criteriaFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
