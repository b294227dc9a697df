package mapping

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
	"github.com/carelink/carelink/internal/platform/respond"
	"github.com/carelink/carelink/pkg/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:patient_id", h.ListByPatient)
	g.DELETE("/:id", h.Delete)
}

func param(c echo.Context, name, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("Validation failed", []apperr.FieldError{
			{Field: name, Message: label + " must be a positive integer"},
		})
	}
	return id, nil
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	m, err := h.svc.Create(c.Request().Context(), in, callerID)
	if err != nil {
		return err
	}
	return respond.Created(c, "Doctor assigned to patient successfully", m)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond.OK(c, "Mappings retrieved successfully", items)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := param(c, "patient_id", "Patient ID")
	if err != nil {
		return err
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID, callerID)
	if err != nil {
		return err
	}
	return respond.OK(c, "Patient doctors retrieved successfully", items)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := param(c, "id", "ID")
	if err != nil {
		return err
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), id, callerID); err != nil {
		return err
	}
	return respond.OK(c, "Doctor removed from patient successfully", nil)
}
