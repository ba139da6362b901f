package auth

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/auth"
	"go.uber.org/zap"
)

// RefreshTokens handles GET /v1/auth/refreshToken/:userId
//
// Guarded by the refresh JWT itself, not the access token: the bearer
// value must be the refresh token previously handed out and stored.
func RefreshTokens(c web.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return c.Unauthorized("missing refresh token")
	}

	ctx := c.Request().Context()

	session, err := auth.RefreshTokens(ctx, token)
	if errors.Is(err, auth.ErrInvalidRefresh) {
		return c.Forbidden("invalid refresh token")
	}
	if err != nil {
		c.L.Error("failed to refresh tokens", zap.Error(err))
		return c.InternalError("failed to refresh tokens")
	}

	if session.User.ID != c.Param("userId") {
		return c.Forbidden("cannot act on another user")
	}

	return c.OK(toSessionResponse(session))
}
