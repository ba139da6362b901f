package bookmarks

import (
	"errors"
	"time"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// BookmarkResponse is the serialized bookmark row.
type BookmarkResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RepoID    string    `json:"repoId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /v1/users/:userId/repo/:repoId/bookmark
func Create(c web.Context) error {
	ctx := c.Request().Context()
	repoID := c.Param("repoId")

	bookmark, err := repos.Bookmark(ctx, c.UserID, repoID)
	switch {
	case errors.Is(err, repos.ErrNotFound):
		return c.NotFound("repo not found")
	case errors.Is(err, repos.ErrAlreadyBookmarked):
		return c.Conflict("repo already bookmarked")
	case err != nil:
		c.L.Error("failed to bookmark repo", zap.Error(err))
		return c.InternalError("failed to bookmark repo")
	}

	return c.Created(BookmarkResponse{
		ID:        bookmark.ID,
		UserID:    bookmark.UserID,
		RepoID:    bookmark.RepoID,
		CreatedAt: bookmark.CreatedAt,
	})
}
