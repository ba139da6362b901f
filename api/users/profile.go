package users

import (
	"errors"
	"time"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"github.com/noterepo/noterepo/domains/users"
	"go.uber.org/zap"
)

// ProfileRepoResponse is a public repo shown on a profile.
type ProfileRepoResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	FileCount   int64     `json:"fileCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProfileResponse is the public profile of a user.
type ProfileResponse struct {
	Username *string               `json:"username"`
	Bio      *string               `json:"bio"`
	Repos    []ProfileRepoResponse `json:"repos"`
}

// Profile handles GET /v1/users/:id/profile
func Profile(c web.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")

	profile, err := users.GetProfile(ctx, userID)
	if errors.Is(err, users.ErrNotFound) {
		return c.NotFound("user not found")
	}
	if err != nil {
		c.L.Error("failed to get profile", zap.Error(err))
		return c.InternalError("failed to get profile")
	}

	public, err := repos.ListPublicByUser(ctx, userID)
	if err != nil {
		c.L.Error("failed to list public repos", zap.Error(err))
		return c.InternalError("failed to get profile")
	}

	out := make([]ProfileRepoResponse, len(public))
	for i, item := range public {
		out[i] = ProfileRepoResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Tags:        item.Tags,
			FileCount:   item.FileCount,
			CreatedAt:   item.CreatedAt,
		}
	}

	return c.OK(ProfileResponse{
		Username: profile.Username,
		Bio:      profile.Bio,
		Repos:    out,
	})
}
