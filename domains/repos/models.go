package repos

import (
	"time"

	"github.com/noterepo/noterepo/db"
	"github.com/noterepo/noterepo/domains/files"
)

// Repo is the domain view of a repository.
type Repo struct {
	ID          string
	Name        string
	Description string
	IsPublic    bool
	Tags        []string
	UserID      string
	CreatedAt   time.Time
}

// ListItem is a repo with its file count, as shown in a user's listing.
type ListItem struct {
	Repo
	FileCount int64
}

// Detail is a repo together with its files.
type Detail struct {
	Repo
	Files []files.File
}

// BookmarkEntry records one user-repo bookmark pairing.
type BookmarkEntry struct {
	ID        string
	UserID    string
	RepoID    string
	CreatedAt time.Time
}

func toRepo(r db.Repo) Repo {
	return Repo{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		Tags:        r.Tags,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt.Time,
	}
}

func toRepos(rows []db.Repo) []Repo {
	out := make([]Repo, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRepo(r))
	}
	return out
}
