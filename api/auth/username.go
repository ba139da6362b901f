package auth

import (
	"errors"
	"regexp"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/auth"
	"github.com/noterepo/noterepo/domains/users"
	"go.uber.org/zap"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

// SetUsernameRequest is the request body for claiming a username
type SetUsernameRequest struct {
	Username string `json:"username"`
}

// SetInitialUsername handles POST /v1/auth/setInitialUsername/:userId
//
// Completes the welcome flow for a verified account; the first session
// opens here, so the route is reached without a bearer token.
func SetInitialUsername(c web.Context) error {
	var req SetUsernameRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if !usernamePattern.MatchString(req.Username) {
		return c.BadRequest("username must be 3-20 characters of letters, digits, - or _")
	}

	ctx := c.Request().Context()

	session, err := auth.SetInitialUsername(ctx, c.Param("userId"), req.Username)
	switch {
	case errors.Is(err, users.ErrNotFound):
		return c.NotFound("account not found")
	case errors.Is(err, auth.ErrUsernameTaken):
		return c.Conflict("username already in use")
	case errors.Is(err, auth.ErrUsernameAlreadySet):
		return c.Conflict("username already set")
	case err != nil:
		c.L.Error("failed to set username", zap.Error(err))
		return c.InternalError("failed to set username")
	}

	c.L.Info("username claimed",
		zap.String("user_id", session.User.ID),
		zap.String("username", req.Username),
	)
	return c.OK(toSessionResponse(session))
}
