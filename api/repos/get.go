package repos

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// Get handles GET /v1/users/:userId/repo/:repoId
func Get(c web.Context) error {
	ctx := c.Request().Context()

	detail, err := repos.GetByIDAndUser(ctx, c.UserID, c.Param("repoId"))
	if errors.Is(err, repos.ErrNotFound) {
		return c.NotFound("repo not found")
	}
	if err != nil {
		c.L.Error("failed to get repo", zap.Error(err))
		return c.InternalError("failed to get repo")
	}

	return c.OK(toRepoDetailResponse(detail))
}
