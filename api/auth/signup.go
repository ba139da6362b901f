package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/auth"
	"github.com/noterepo/noterepo/pkg/links"
	"go.uber.org/zap"
)

// SignUpRequest is the request body for creating an account
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpResponse is the response for a created account
type SignUpResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// SignUp handles POST /v1/auth/sign-up
func SignUp(c web.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}

	req.Email = strings.TrimSpace(req.Email)
	if !strings.Contains(req.Email, "@") {
		return c.BadRequest("a valid email is required")
	}
	if len(req.Password) < 8 {
		return c.BadRequest("password must be at least 8 characters")
	}

	ctx := c.Request().Context()

	user, err := auth.SignUp(ctx, req.Email, req.Password, c.L)
	if errors.Is(err, auth.ErrEmailTaken) {
		return c.Conflict("email already in use")
	}
	if err != nil {
		c.L.Error("failed to sign up", zap.Error(err))
		return c.InternalError("failed to create account")
	}

	c.L.Info("account created", zap.String("user_id", user.ID))

	return c.Created(SignUpResponse{
		User:    toUserResponse(user),
		Message: fmt.Sprintf("Verification link has been sent to %s", links.MaskEmail(user.Email)),
	})
}
