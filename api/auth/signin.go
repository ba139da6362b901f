package auth

import (
	"errors"
	"fmt"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/auth"
	"github.com/noterepo/noterepo/domains/users"
	"github.com/noterepo/noterepo/pkg/links"
	"go.uber.org/zap"
)

// SignInRequest is the request body for signing in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// WelcomeResponse redirects accounts that never picked a username.
type WelcomeResponse struct {
	User        UserResponse `json:"user"`
	WelcomeLink string       `json:"welcome_link"`
}

// SignIn handles POST /v1/auth/sign-in
func SignIn(c web.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return c.BadRequest("email and password are required")
	}

	ctx := c.Request().Context()

	session, err := auth.SignIn(ctx, req.Email, req.Password, c.L)
	switch {
	case errors.Is(err, users.ErrNotFound):
		return c.NotFound("account not found")
	case errors.Is(err, auth.ErrNotVerified):
		return c.Unauthorized(fmt.Sprintf("Verification link has been sent to %s", links.MaskEmail(req.Email)))
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Unauthorized("invalid credentials")
	case err != nil:
		c.L.Error("failed to sign in", zap.Error(err))
		return c.InternalError("failed to sign in")
	}

	if session.User.Username == nil {
		return c.OK(WelcomeResponse{
			User:        toUserResponse(session.User),
			WelcomeLink: links.Welcome(session.User.ID),
		})
	}

	c.L.Info("signed in", zap.String("user_id", session.User.ID))
	return c.OK(toSessionResponse(session))
}
