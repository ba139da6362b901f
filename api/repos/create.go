package repos

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// CreateRequest is the request body for creating a repo
type CreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsPublic    bool     `json:"isPublic"`
	Tags        []string `json:"tags"`
}

// Create handles POST /v1/users/:userId/repo
func Create(c web.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}

	if len(req.Name) < 4 || len(req.Name) > 30 {
		return c.BadRequest("name must be 4-30 characters")
	}
	if len(req.Description) < 4 || len(req.Description) > 50 {
		return c.BadRequest("description must be 4-50 characters")
	}
	if len(req.Tags) == 0 {
		return c.BadRequest("at least one tag is required")
	}

	ctx := c.Request().Context()

	repo, err := repos.Create(ctx, c.UserID, req.Name, req.Description, req.Tags, req.IsPublic)
	if errors.Is(err, repos.ErrRepoLimit) {
		return c.Forbidden("repo limit reached")
	}
	if err != nil {
		c.L.Error("failed to create repo", zap.Error(err))
		return c.InternalError("failed to create repo")
	}

	c.L.Info("repo created",
		zap.String("repo_id", repo.ID),
		zap.String("user_id", repo.UserID),
		zap.Bool("is_public", repo.IsPublic),
	)
	return c.Created(toRepoResponse(*repo))
}
