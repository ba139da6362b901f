package files

import (
	"errors"
	"time"

	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/files"
	"go.uber.org/zap"
)

// FileResponse is the serialized uploaded file.
type FileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PublicName   string    `json:"publicName"`
	ResourceType string    `json:"resourceType"`
	UrlLink      string    `json:"urlLink"`
	RepoID       string    `json:"repoId"`
	UserID       string    `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Upload handles POST /v1/users/:userId/repo/:repoId/file
func Upload(c web.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.BadRequest("multipart field 'file' is required")
	}

	ctx := c.Request().Context()
	repoID := c.Param("repoId")

	file, err := files.Upload(ctx, c.UserID, repoID, fh)
	switch {
	case errors.Is(err, files.ErrUnsupportedType):
		return c.UnsupportedMediaType("unsupported file type")
	case errors.Is(err, files.ErrRepoNotFound):
		return c.NotFound("repo not found")
	case errors.Is(err, files.ErrDuplicateName):
		return c.Conflict("a file with that name already exists in this repo")
	case err != nil:
		c.L.Error("failed to upload file", zap.Error(err))
		return c.InternalError("failed to upload file")
	}

	c.L.Info("file uploaded",
		zap.String("file_id", file.ID),
		zap.String("repo_id", repoID),
		zap.String("user_id", c.UserID),
	)

	return c.Created(FileResponse{
		ID:           file.ID,
		Name:         file.Name,
		PublicName:   file.PublicName,
		ResourceType: file.ResourceType,
		UrlLink:      file.UrlLink,
		RepoID:       file.RepoID,
		UserID:       file.UserID,
		CreatedAt:    file.CreatedAt,
	})
}
