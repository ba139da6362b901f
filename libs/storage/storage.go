// Package storage wraps the Cloudinary client. Uploaded files live
// under a per-user folder (Users/<username>); deletions are best-effort
// and the database row is the source of truth.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/noterepo/noterepo/config"
	"go.uber.org/zap"
)

const (
	// ResourceTypeRaw tags documents (pdf, doc, ppt)
	ResourceTypeRaw = "raw"
	// ResourceTypeImage tags images
	ResourceTypeImage = "image"
)

var defaultClient *cloudinary.Cloudinary

// Init connects the storage client.
func Init(l *zap.Logger) error {
	cld, err := cloudinary.NewFromURL(config.Storage.URL())
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	defaultClient = cld
	l.Info("storage client initialized", zap.String("cloud", cld.Config.Cloud.CloudName))
	return nil
}

// GetClient returns the default client
func GetClient() *cloudinary.Cloudinary {
	return defaultClient
}

// UploadResult is the subset of the provider response the service keeps.
type UploadResult struct {
	PublicID     string
	URL          string
	SecureURL    string
	ResourceType string
}

// Upload streams a file into the user's folder under the given public id.
// The provider detects the resource type (raw vs image).
func Upload(ctx context.Context, r io.Reader, publicID, username string) (*UploadResult, error) {
	resp, err := defaultClient.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       userFolder(username),
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &UploadResult{
		PublicID:     resp.PublicID,
		URL:          resp.URL,
		SecureURL:    resp.SecureURL,
		ResourceType: resp.ResourceType,
	}, nil
}

// Destroy removes a single stored file.
func Destroy(ctx context.Context, publicID, resourceType string) error {
	_, err := defaultClient.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to destroy %s: %w", publicID, err)
	}
	return nil
}

// DeleteAll removes a batch of stored files of one resource type.
func DeleteAll(ctx context.Context, publicIDs []string, resourceType string) error {
	if len(publicIDs) == 0 {
		return nil
	}

	_, err := defaultClient.Admin.DeleteAssets(ctx, admin.DeleteAssetsParams{
		PublicIDs: api.CldAPIArray(publicIDs),
		AssetType: api.AssetType(resourceType),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %d assets: %w", len(publicIDs), err)
	}
	return nil
}

// DeleteUserFolder removes a user's (empty) storage folder.
func DeleteUserFolder(ctx context.Context, username string) error {
	_, err := defaultClient.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{
		Folder: userFolder(username),
	})
	if err != nil {
		return fmt.Errorf("failed to delete user folder: %w", err)
	}
	return nil
}

func userFolder(username string) string {
	return "Users/" + username
}
