package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
	"github.com/carelink/carelink/internal/platform/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the open endpoints on public and the token-protected
// ones on protected.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
	public.POST("/refresh", h.Refresh)
	protected.GET("/me", h.Me)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	u, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond.Created(c, "User registered successfully", u)
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	creds, err := h.svc.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond.OK(c, "Login successful", creds)
}

func (h *Handler) Refresh(c echo.Context) error {
	var in RefreshInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	creds, err := h.svc.Refresh(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond.OK(c, "Token refreshed successfully", creds)
}

func (h *Handler) Me(c echo.Context) error {
	callerID := auth.UserIDFromContext(c.Request().Context())
	u, err := h.svc.Me(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return respond.OK(c, "Profile retrieved successfully", u)
}
