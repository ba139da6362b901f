package bookmarks

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// Delete handles DELETE /v1/users/:userId/repo/:repoId/bookmark
func Delete(c web.Context) error {
	ctx := c.Request().Context()

	err := repos.Unbookmark(ctx, c.UserID, c.Param("repoId"))
	if errors.Is(err, repos.ErrBookmarkNotFound) {
		return c.NotFound("bookmark not found")
	}
	if err != nil {
		c.L.Error("failed to remove bookmark", zap.Error(err))
		return c.InternalError("failed to remove bookmark")
	}

	return c.NoContent()
}
