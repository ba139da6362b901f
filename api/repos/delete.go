package repos

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// Delete handles DELETE /v1/users/:userId/repo/:repoId
func Delete(c web.Context) error {
	ctx := c.Request().Context()
	repoID := c.Param("repoId")

	err := repos.Delete(ctx, c.UserID, repoID, c.L)
	if errors.Is(err, repos.ErrNotFound) {
		return c.NotFound("repo not found")
	}
	if err != nil {
		c.L.Error("failed to delete repo", zap.Error(err))
		return c.InternalError("failed to delete repo")
	}

	c.L.Info("repo deleted", zap.String("repo_id", repoID), zap.String("user_id", c.UserID))
	return c.NoContent()
}
