package auth

import (
	"errors"
	"net/http"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/auth"
	"github.com/noterepo/noterepo/pkg/links"
	"go.uber.org/zap"
)

// VerifyAccount handles GET /v1/auth/verifyAccount/:token
//
// The link lands here straight from the user's mail client, so both
// outcomes are redirects rather than JSON.
func VerifyAccount(c web.Context) error {
	token := c.Param("token")
	ctx := c.Request().Context()

	user, err := auth.VerifyAccount(ctx, token)
	if errors.Is(err, auth.ErrVerificationExpired) {
		return c.Redirect(http.StatusFound, links.SignIn())
	}
	if err != nil {
		c.L.Error("failed to verify account", zap.Error(err))
		return c.InternalError("failed to verify account")
	}

	c.L.Info("account verified", zap.String("user_id", user.ID))
	return c.Redirect(http.StatusFound, links.Welcome(user.ID))
}
