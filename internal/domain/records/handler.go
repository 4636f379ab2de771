package records

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swasthyasetu/portal/internal/platform/auth"
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
	patient.GET("/records", h.GetRecords)
	patient.GET("/records/vitals", h.GetVitals)
	patient.GET("/records/medications", h.ListMedications)
	patient.GET("/records/labs", h.ListLabResults)
	patient.GET("/records/export", h.ExportRecords)
}

// GetRecords returns the record overview: vitals, medications, and labs
// whole, plus the medical history reduced by the query and type facet.
func (h *Handler) GetRecords(c echo.Context) error {
	ctx := c.Request().Context()
	history, err := h.svc.SearchHistory(ctx, browse.Criteria{
		Query:  c.QueryParam("q"),
		Facets: map[string]string{"type": c.QueryParam("type")},
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	graph, err := h.svc.Graph(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	graph.MedicalHistory = history
	return c.JSON(http.StatusOK, graph)
}

func (h *Handler) GetVitals(c echo.Context) error {
	vitals, err := h.svc.Vitals(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, vitals)
}

func (h *Handler) ListMedications(c echo.Context) error {
	meds, err := h.svc.Medications(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": meds, "total": len(meds)})
}

func (h *Handler) ListLabResults(c echo.Context) error {
	labs, err := h.svc.LabResults(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": labs, "total": len(labs)})
}

func (h *Handler) ExportRecords(c echo.Context) error {
	data, filename, err := h.svc.ExportJSON(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}
