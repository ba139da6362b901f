package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/domains/auth"
	"go.uber.org/zap"
)

// Context wraps echo.Context with additional fields
type Context struct {
	echo.Context
	L *zap.Logger

	// UserID is the authenticated caller, set by Authed. Empty on
	// unauthenticated routes.
	UserID string
}

// HandlerFunc is a handler function that uses our custom Context
type HandlerFunc func(ctx Context) error

// Wrap wraps a handler function to use our custom context
func Wrap(h HandlerFunc, l *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)

		ctx := Context{
			Context: c,
			L:       l.With(zap.String("request_id", rid)),
		}

		return h(ctx)
	}
}

// Authed wraps a handler behind bearer access-token authentication.
// When the route carries a :userId (or :id) param it must match the
// token's subject; acting on another user's resources is a 403.
func Authed(h HandlerFunc, l *zap.Logger) echo.HandlerFunc {
	return Wrap(func(c Context) error {
		token := bearerToken(c)
		if token == "" {
			return c.Unauthorized("missing bearer token")
		}

		userID, err := auth.ParseAccessToken(token)
		if err != nil {
			return c.Unauthorized("invalid access token")
		}
		c.UserID = userID

		for _, param := range []string{"userId", "id"} {
			if p := c.Param(param); p != "" && p != userID {
				return c.Forbidden("cannot act on another user")
			}
		}

		return h(c)
	}, l)
}

func bearerToken(c Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// Error sends an error response
func (c Context) Error(status int, message string) error {
	return c.JSON(status, map[string]string{
		"error": message,
	})
}

// BadRequest sends a 400 error
func (c Context) BadRequest(message string) error {
	return c.Error(http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error
func (c Context) Unauthorized(message string) error {
	return c.Error(http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error
func (c Context) Forbidden(message string) error {
	return c.Error(http.StatusForbidden, message)
}

// NotFound sends a 404 error
func (c Context) NotFound(message string) error {
	return c.Error(http.StatusNotFound, message)
}

// Conflict sends a 409 error
func (c Context) Conflict(message string) error {
	return c.Error(http.StatusConflict, message)
}

// UnsupportedMediaType sends a 415 error
func (c Context) UnsupportedMediaType(message string) error {
	return c.Error(http.StatusUnsupportedMediaType, message)
}

// InternalError sends a 500 error
func (c Context) InternalError(message string) error {
	return c.Error(http.StatusInternalServerError, message)
}

// OK sends a 200 response with data
func (c Context) OK(data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with data
func (c Context) Created(data any) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response
func (c Context) NoContent() error {
	return c.Context.NoContent(http.StatusNoContent)
}
