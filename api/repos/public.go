package repos

import (
	"errors"
	"strconv"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/repos"
	"go.uber.org/zap"
)

// Pagination carries the cursors for the public listing.
type Pagination struct {
	NextCursor     string `json:"next_cursor"`
	PreviousCursor string `json:"previous_cursor"`
	PerPage        int    `json:"perPage"`
}

// ListPublicResponse is one page of the public listing.
type ListPublicResponse struct {
	Results    int            `json:"results"`
	Data       []RepoResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// ListPublic handles GET /v1/users/repo
func ListPublic(c web.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.BadRequest("limit must be a positive integer")
		}
		limit = parsed
	}

	ctx := c.Request().Context()

	page, err := repos.ListPublic(ctx, c.QueryParam("next_cursor"), c.QueryParam("previous_cursor"), limit)
	if errors.Is(err, repos.ErrInvalidCursor) || errors.Is(err, repos.ErrCursorConflict) {
		return c.BadRequest(err.Error())
	}
	if err != nil {
		c.L.Error("failed to list public repos", zap.Error(err))
		return c.InternalError("failed to list repos")
	}

	data := make([]RepoResponse, len(page.Data))
	for i, r := range page.Data {
		data[i] = toRepoResponse(r)
	}

	return c.OK(ListPublicResponse{
		Results: page.Results,
		Data:    data,
		Pagination: Pagination{
			NextCursor:     page.NextCursor,
			PreviousCursor: page.PreviousCursor,
			PerPage:        page.PerPage,
		},
	})
}
