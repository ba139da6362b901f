package files

import (
	"errors"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/files"
	"go.uber.org/zap"
)

// DeleteManyRequest is the request body for bulk file deletion
type DeleteManyRequest struct {
	FileIDs []string `json:"fileIds"`
}

// Delete handles DELETE /v1/users/:userId/repo/:repoId/file/:fileId
func Delete(c web.Context) error {
	ctx := c.Request().Context()

	err := files.DeleteOne(ctx, c.UserID, c.Param("repoId"), c.Param("fileId"), c.L)
	if errors.Is(err, files.ErrNotFound) {
		return c.NotFound("file not found")
	}
	if err != nil {
		c.L.Error("failed to delete file", zap.Error(err))
		return c.InternalError("failed to delete file")
	}

	return c.NoContent()
}

// DeleteMany handles DELETE /v1/users/:userId/repo/:repoId/files
func DeleteMany(c web.Context) error {
	var req DeleteManyRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if len(req.FileIDs) == 0 {
		return c.BadRequest("fileIds is required")
	}

	ctx := c.Request().Context()

	err := files.DeleteMany(ctx, c.UserID, c.Param("repoId"), req.FileIDs, c.L)
	if errors.Is(err, files.ErrNotFound) {
		return c.NotFound("no matching files")
	}
	if err != nil {
		c.L.Error("failed to delete files", zap.Error(err))
		return c.InternalError("failed to delete files")
	}

	return c.NoContent()
}
