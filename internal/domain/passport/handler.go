package passport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swasthyasetu/portal/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	patient := api.Group("/patient", auth.RequireRole(auth.RolePatient))
	patient.GET("/passport", h.GetPassport)
	patient.GET("/passport/qr", h.GetQR)
	patient.GET("/passport/export", h.ExportPassport)
}

// GetPassport returns the passport, masked unless ?sensitive=true.
func (h *Handler) GetPassport(c echo.Context) error {
	ctx := c.Request().Context()
	sensitive := c.QueryParam("sensitive") == "true"
	p := h.svc.Get(ctx, auth.UserIDFromContext(ctx), auth.UserNameFromContext(ctx), sensitive)
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetQR(c echo.Context) error {
	ctx := c.Request().Context()
	payload := h.svc.QR(ctx, auth.UserIDFromContext(ctx), auth.UserNameFromContext(ctx))
	return c.JSON(http.StatusOK, payload)
}

// ExportPassport downloads the passport as HTML (default) or JSON.
func (h *Handler) ExportPassport(c echo.Context) error {
	ctx := c.Request().Context()
	uid, name := auth.UserIDFromContext(ctx), auth.UserNameFromContext(ctx)

	var (
		data     []byte
		filename string
		mime     string
		err      error
	)
	switch format := c.QueryParam("format"); format {
	case "json":
		mime = echo.MIMEApplicationJSON
		data, filename, err = h.svc.ExportJSON(ctx, uid, name)
	case "", "html":
		mime = echo.MIMETextHTML
		data, filename, err = h.svc.ExportHTML(ctx, uid, name)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported export format: "+format)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, mime, data)
}
