package files

import (
	"time"

	"github.com/noterepo/noterepo/db"
)

// File is the domain view of an uploaded file.
type File struct {
	ID           string
	Name         string
	PublicName   string
	ResourceType string
	UrlLink      string
	RepoID       string
	UserID       string
	CreatedAt    time.Time
}

func toFile(f db.File) File {
	return File{
		ID:           f.ID,
		Name:         f.Name,
		PublicName:   f.PublicName,
		ResourceType: f.ResourceType,
		UrlLink:      f.UrlLink,
		RepoID:       f.RepoID,
		UserID:       f.UserID,
		CreatedAt:    f.CreatedAt.Time,
	}
}
