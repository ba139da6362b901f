package users

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/users"
	"go.uber.org/zap"
)

// ForgetPasswordRequest is the request body for a reset link
type ForgetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the request body for choosing a new password
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ForgetPassword handles POST /v1/users/forget-password
func ForgetPassword(c web.Context) error {
	var req ForgetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if req.Email == "" {
		return c.BadRequest("email is required")
	}

	ctx := c.Request().Context()

	message, err := users.ForgetPassword(ctx, req.Email)
	if errors.Is(err, users.ErrNotFound) {
		return c.NotFound("account not found")
	}
	if err != nil {
		c.L.Error("failed to send reset mail", zap.Error(err))
		return c.InternalError("failed to send reset mail")
	}

	return c.OK(map[string]string{"message": message})
}

// ResetPassword handles POST /v1/users/reset-password/:token
func ResetPassword(c web.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if len(req.Password) < 8 {
		return c.BadRequest("password must be at least 8 characters")
	}

	ctx := c.Request().Context()

	err := users.ResetPassword(ctx, c.Param("token"), req.Password, req.ConfirmPassword)
	switch {
	case errors.Is(err, users.ErrPasswordMismatch):
		return c.BadRequest("password does not match confirm password")
	case errors.Is(err, users.ErrResetLinkExpired):
		return c.NotFound("reset link expired")
	case err != nil:
		c.L.Error("failed to reset password", zap.Error(err))
		return c.InternalError("failed to reset password")
	}

	return c.OK(map[string]string{"message": "password has been reset"})
}
