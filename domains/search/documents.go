// Package search keeps the external search index approximately
// consistent with database mutations and defines the denormalized
// document projections pushed to it.
package search

import "time"

// RepoDocument is the repo projection stored in the search index.
type RepoDocument struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	IsPublic    bool      `json:"isPublic"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FileDocument is the file projection stored in the search index.
type FileDocument struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PublicName string    `json:"publicName"`
	UrlLink    string    `json:"urlLink"`
	RepoID     string    `json:"repoId"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Indexer is the search-provider surface the syncer writes through.
type Indexer interface {
	AddRepoDocuments(docs []RepoDocument) error
	UpdateRepoDocuments(docs []RepoDocument) error
	DeleteRepoDocuments(ids []string) error
	AddFileDocuments(docs []FileDocument) error
	DeleteFileDocuments(ids []string) error
}
