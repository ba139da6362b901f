package auth

import (
	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/auth"
	"go.uber.org/zap"
)

// SignOut handles POST /v1/auth/sign-out/:userId
func SignOut(c web.Context) error {
	ctx := c.Request().Context()

	if err := auth.SignOut(ctx, c.UserID); err != nil {
		c.L.Error("failed to sign out", zap.Error(err))
		return c.InternalError("failed to sign out")
	}

	return c.OK(map[string]string{"message": "signed out"})
}
