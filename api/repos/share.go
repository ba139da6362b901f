package repos

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// Share handles GET /v1/users/repo/:repoId/share
//
// Public share view; private repos answer exactly like missing ones.
func Share(c web.Context) error {
	ctx := c.Request().Context()

	detail, err := repos.Share(ctx, c.Param("repoId"))
	if errors.Is(err, repos.ErrNotFound) {
		return c.NotFound("repo not found")
	}
	if err != nil {
		c.L.Error("failed to get shared repo", zap.Error(err))
		return c.InternalError("failed to get repo")
	}

	return c.OK(toRepoDetailResponse(detail))
}
