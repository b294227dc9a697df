// Package respond shapes every API response into the uniform JSON envelope
// and centralizes the mapping from service errors to HTTP status codes.
package respond

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/carelink/pkg/apperr"
)

// Envelope is the wire format shared by all endpoints.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

// OK writes a 200 success envelope. Pass nil data to omit the field.
func OK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// ErrorHandler returns the echo HTTPErrorHandler that serializes service
// errors into failure envelopes. Unexpected errors are logged with request
// context and answered with a generic message so internal detail never leaks.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status  int
			message string
			fields  []apperr.FieldError
		)

		var appErr *apperr.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = apperr.HTTPStatus(appErr.Kind)
			message = appErr.Message
			fields = appErr.Fields
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if s, ok := httpErr.Message.(string); ok {
				message = s
			} else {
				message = http.StatusText(status)
			}
		default:
			status = http.StatusInternalServerError
			message = "Internal server error"
		}

		if status == http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("internal error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, Envelope{Success: false, Message: message, Errors: fields})
	}
}
