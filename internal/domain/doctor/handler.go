package doctor

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
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("Validation failed", []apperr.FieldError{
			{Field: "id", Message: "ID must be a positive integer"},
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
	d, err := h.svc.Create(c.Request().Context(), in, callerID)
	if err != nil {
		return err
	}
	return respond.Created(c, "Doctor created successfully", d)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond.OK(c, "Doctors retrieved successfully", items)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond.OK(c, "Doctor retrieved successfully", d)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	d, err := h.svc.Update(c.Request().Context(), id, in, callerID)
	if err != nil {
		return err
	}
	return respond.OK(c, "Doctor updated successfully", d)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), id, callerID); err != nil {
		return err
	}
	return respond.OK(c, "Doctor deleted successfully", nil)
}
