package users

import (
	"errors"
	"time"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/users"
	"go.uber.org/zap"
)

// UserResponse is the sanitized user returned by profile updates.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Username   *string   `json:"username"`
	Bio        *string   `json:"bio"`
	IsVerified bool      `json:"isVerified"`
	RepoCount  int32     `json:"repoCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpdateRequest is the request body for renaming an account
type UpdateRequest struct {
	Username string `json:"username"`
}

// UpdateBioRequest is the request body for setting the bio
type UpdateBioRequest struct {
	Bio string `json:"bio"`
}

func toUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		Bio:        u.Bio,
		IsVerified: u.IsVerified,
		RepoCount:  u.RepoCount,
		CreatedAt:  u.CreatedAt,
	}
}

// Update handles PATCH /v1/users/:id
func Update(c web.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if len(req.Username) < 3 || len(req.Username) > 20 {
		return c.BadRequest("username must be 3-20 characters")
	}

	ctx := c.Request().Context()

	if _, err := users.GetByUsername(ctx, req.Username); err == nil {
		return c.Conflict("username already in use")
	} else if !errors.Is(err, users.ErrNotFound) {
		c.L.Error("failed to check username", zap.Error(err))
		return c.InternalError("failed to update user")
	}

	user, err := users.SetUsername(ctx, c.UserID, req.Username)
	if errors.Is(err, users.ErrNotFound) {
		return c.NotFound("user not found")
	}
	if err != nil {
		c.L.Error("failed to update username", zap.Error(err))
		return c.InternalError("failed to update user")
	}

	return c.OK(toUserResponse(user))
}

// UpdateBio handles PATCH /v1/users/:id/bio
func UpdateBio(c web.Context) error {
	var req UpdateBioRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if len(req.Bio) > 160 {
		return c.BadRequest("bio must be at most 160 characters")
	}

	ctx := c.Request().Context()

	user, err := users.SetBio(ctx, c.UserID, req.Bio)
	if errors.Is(err, users.ErrNotFound) {
		return c.NotFound("user not found")
	}
	if err != nil {
		c.L.Error("failed to update bio", zap.Error(err))
		return c.InternalError("failed to update user")
	}

	return c.OK(toUserResponse(user))
}
