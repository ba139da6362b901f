package bookmarks

import (
	"time"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// RepoResponse is the serialized bookmarked repo.
type RepoResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	Tags        []string  `json:"tags"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListResponse is the user's bookmarked repos.
type ListResponse struct {
	Repos []RepoResponse `json:"repos"`
}

// RepoIDsResponse is the bare id list used to mark bookmark state.
type RepoIDsResponse struct {
	RepoIDs []string `json:"repoIds"`
}

// List handles GET /v1/users/:userId/bookmarks
func List(c web.Context) error {
	ctx := c.Request().Context()

	bookmarked, err := repos.ListBookmarks(ctx, c.UserID)
	if err != nil {
		c.L.Error("failed to list bookmarks", zap.Error(err))
		return c.InternalError("failed to list bookmarks")
	}

	out := make([]RepoResponse, len(bookmarked))
	for i, r := range bookmarked {
		out[i] = RepoResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			IsPublic:    r.IsPublic,
			Tags:        r.Tags,
			UserID:      r.UserID,
			CreatedAt:   r.CreatedAt,
		}
	}
	return c.OK(ListResponse{Repos: out})
}

// ListRepoIDs handles GET /v1/users/:userId/bookmarks/repoIds
func ListRepoIDs(c web.Context) error {
	ctx := c.Request().Context()

	ids, err := repos.ListBookmarkRepoIDs(ctx, c.UserID)
	if err != nil {
		c.L.Error("failed to list bookmark ids", zap.Error(err))
		return c.InternalError("failed to list bookmarks")
	}

	return c.OK(RepoIDsResponse{RepoIDs: ids})
}
