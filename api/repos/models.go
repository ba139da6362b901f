package repos

import (
	"time"

	"github.com/noterepo/noterepo/domains/files"
	"github.com/noterepo/noterepo/domains/repos"
)

// RepoResponse is the serialized repo.
type RepoResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	Tags        []string  `json:"tags"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RepoListItemResponse adds the file count shown in listings.
type RepoListItemResponse struct {
	RepoResponse
	FileCount int64 `json:"fileCount"`
}

// FileResponse is the serialized file inside a repo detail.
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

// RepoDetailResponse is a repo together with its files.
type RepoDetailResponse struct {
	RepoResponse
	Files []FileResponse `json:"files"`
}

func toRepoResponse(r repos.Repo) RepoResponse {
	return RepoResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		Tags:        r.Tags,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
	}
}

func toFileResponses(fs []files.File) []FileResponse {
	out := make([]FileResponse, len(fs))
	for i, f := range fs {
		out[i] = FileResponse{
			ID:           f.ID,
			Name:         f.Name,
			PublicName:   f.PublicName,
			ResourceType: f.ResourceType,
			UrlLink:      f.UrlLink,
			RepoID:       f.RepoID,
			UserID:       f.UserID,
			CreatedAt:    f.CreatedAt,
		}
	}
	return out
}

func toRepoDetailResponse(d *repos.Detail) RepoDetailResponse {
	return RepoDetailResponse{
		RepoResponse: toRepoResponse(d.Repo),
		Files:        toFileResponses(d.Files),
	}
}
