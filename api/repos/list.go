package repos

import (
	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// ListResponse is the caller's repos with their file counts.
type ListResponse struct {
	Repos []RepoListItemResponse `json:"repos"`
}

// List handles GET /v1/users/:userId/repo
func List(c web.Context) error {
	ctx := c.Request().Context()

	items, err := repos.ListByUser(ctx, c.UserID)
	if err != nil {
		c.L.Error("failed to list repos", zap.Error(err))
		return c.InternalError("failed to list repos")
	}

	out := make([]RepoListItemResponse, len(items))
	for i, item := range items {
		out[i] = RepoListItemResponse{
			RepoResponse: toRepoResponse(item.Repo),
			FileCount:    item.FileCount,
		}
	}
	return c.OK(ListResponse{Repos: out})
}
