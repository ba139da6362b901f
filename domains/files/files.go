// Package files handles uploads into a repo. The storage provider holds
// the bytes; the database row and the search index hold the metadata.
package files

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/noterepo/noterepo/config"
	"github.com/noterepo/noterepo/db"
	"github.com/noterepo/noterepo/domains/search"
	"github.com/noterepo/noterepo/domains/users"
	"github.com/noterepo/noterepo/libs/storage"
	"go.uber.org/zap"
)

var (
	ErrRepoNotFound    = errors.New("repo not found")
	ErrNotFound        = errors.New("file not found")
	ErrDuplicateName   = errors.New("a file with that name already exists in this repo")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// allowedMimeTypes is the upload allowlist. Everything else is rejected
// before any bytes reach the storage provider.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
	"application/msword":            true,
	"application/vnd.ms-powerpoint": true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
}

// ListByRepoID returns a repo's files in upload order.
func ListByRepoID(ctx context.Context, repoID string) ([]File, error) {
	dbFiles, err := db.Query1(ctx, func(q *db.Queries) ([]db.File, error) {
		return q.ListFilesByRepoID(ctx, repoID)
	})
	if err != nil {
		return nil, err
	}

	out := make([]File, 0, len(dbFiles))
	for _, f := range dbFiles {
		out = append(out, toFile(f))
	}
	return out, nil
}

// Upload stores one file in the caller's repo. The original filename
// must be unique within the repo; the stored public id gets a timestamp
// suffix so storage never collides on re-uploads of the same name.
func Upload(ctx context.Context, userID, repoID string, fh *multipart.FileHeader) (*File, error) {
	if !allowedMimeTypes[fh.Header.Get("Content-Type")] {
		return nil, ErrUnsupportedType
	}

	if _, err := db.Query1(ctx, func(q *db.Queries) (db.Repo, error) {
		return q.GetRepoByIDAndUserID(ctx, db.GetRepoByIDAndUserIDParams{ID: repoID, UserID: userID})
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRepoNotFound
		}
		return nil, err
	}

	_, err := db.Query1(ctx, func(q *db.Queries) (db.File, error) {
		return q.GetFileByNameAndRepoID(ctx, db.GetFileByNameAndRepoIDParams{Name: fh.Filename, RepoID: repoID})
	})
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	folder := userID
	if user.Username != nil {
		folder = *user.Username
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	res, err := storage.Upload(ctx, src, publicID(fh.Filename), folder)
	if err != nil {
		return nil, err
	}

	dbFile, err := db.Query1(ctx, func(q *db.Queries) (db.File, error) {
		return q.CreateFile(ctx, db.CreateFileParams{
			ID:           uuid.NewString(),
			Name:         fh.Filename,
			PublicName:   res.PublicID,
			ResourceType: res.ResourceType,
			UrlLink:      fileURL(res),
			RepoID:       repoID,
			UserID:       userID,
		})
	})
	if err != nil {
		return nil, err
	}

	file := toFile(dbFile)
	search.FileCreated(search.FileDocument{
		ID:         file.ID,
		Name:       file.Name,
		PublicName: file.PublicName,
		UrlLink:    file.UrlLink,
		RepoID:     file.RepoID,
		UserID:     file.UserID,
		CreatedAt:  file.CreatedAt,
	})

	return &file, nil
}

// DeleteOne removes a single file. The storage delete is best-effort;
// the row and the index entry go regardless.
func DeleteOne(ctx context.Context, userID, repoID, fileID string, l *zap.Logger) error {
	dbFile, err := db.Query1(ctx, func(q *db.Queries) (db.File, error) {
		return q.GetFileByIDAndRepoID(ctx, db.GetFileByIDAndRepoIDParams{ID: fileID, RepoID: repoID})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if dbFile.UserID != userID {
		return ErrNotFound
	}

	if err := db.Query(ctx, func(q *db.Queries) error {
		return q.DeleteFile(ctx, fileID)
	}); err != nil {
		return err
	}

	search.FilesDeleted(fileID)

	if err := storage.Destroy(ctx, dbFile.PublicName, dbFile.ResourceType); err != nil {
		l.Warn("failed to delete stored file", zap.String("publicId", dbFile.PublicName), zap.Error(err))
	}
	return nil
}

// DeleteMany removes a batch of files from one repo. Ids not owned by
// the caller or not in the repo are ignored.
func DeleteMany(ctx context.Context, userID, repoID string, ids []string, l *zap.Logger) error {
	dbFiles, err := db.Query1(ctx, func(q *db.Queries) ([]db.File, error) {
		return q.ListFilesByIDsAndRepoID(ctx, db.ListFilesByIDsAndRepoIDParams{Ids: ids, RepoID: repoID})
	})
	if err != nil {
		return err
	}

	owned := make([]db.File, 0, len(dbFiles))
	for _, f := range dbFiles {
		if f.UserID == userID {
			owned = append(owned, f)
		}
	}
	if len(owned) == 0 {
		return ErrNotFound
	}

	ownedIDs := make([]string, 0, len(owned))
	for _, f := range owned {
		ownedIDs = append(ownedIDs, f.ID)
	}

	if err := db.Tx(ctx, func(q *db.Queries) error {
		return q.DeleteFilesByIDs(ctx, db.DeleteFilesByIDsParams{Ids: ownedIDs, RepoID: repoID})
	}); err != nil {
		return err
	}

	search.FilesDeleted(ownedIDs...)
	destroyAssets(ctx, owned, l)
	return nil
}

// destroyAssets batch-deletes stored bytes, split by resource type.
func destroyAssets(ctx context.Context, dbFiles []db.File, l *zap.Logger) {
	var raw, images []string
	for _, f := range dbFiles {
		if f.ResourceType == storage.ResourceTypeImage {
			images = append(images, f.PublicName)
		} else {
			raw = append(raw, f.PublicName)
		}
	}
	if err := storage.DeleteAll(ctx, raw, storage.ResourceTypeRaw); err != nil {
		l.Warn("failed to delete raw assets", zap.Error(err))
	}
	if err := storage.DeleteAll(ctx, images, storage.ResourceTypeImage); err != nil {
		l.Warn("failed to delete image assets", zap.Error(err))
	}
}

// publicID derives the storage public id from the original filename,
// suffixed with upload time in unix millis.
func publicID(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return fmt.Sprintf("%s_%d", base, time.Now().UnixMilli())
}

// fileURL prefers the https link outside development.
func fileURL(res *storage.UploadResult) string {
	if config.IsDev() {
		return res.URL
	}
	return res.SecureURL
}
