package meili

import (
	"fmt"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"github.com/noterepo/noterepo/config"
	"github.com/noterepo/noterepo/domains/search"
	"go.uber.org/zap"
)

const (
	// IndexRepos holds public repo documents
	IndexRepos = "repos"
	// IndexFiles holds file documents
	IndexFiles = "files"

	// FieldUserID is the owner field tenant tokens filter on
	FieldUserID = "userId"
)

// tenantTokenTTL bounds how long a minted search credential stays valid.
const tenantTokenTTL = 120 * time.Hour // 5 days

// ensureIndexes creates the repo and file indexes if missing and applies
// their searchable/filterable settings.
func ensureIndexes(l *zap.Logger) error {
	indexes := []struct {
		uid      string
		settings *meilisearch.Settings
	}{
		{
			uid: IndexRepos,
			settings: &meilisearch.Settings{
				SearchableAttributes: []string{"name", "description", "tags"},
				FilterableAttributes: []string{FieldUserID},
			},
		},
		{
			uid: IndexFiles,
			settings: &meilisearch.Settings{
				SearchableAttributes: []string{"name"},
				FilterableAttributes: []string{FieldUserID},
			},
		},
	}

	for _, idx := range indexes {
		if _, err := defaultClient.GetIndex(idx.uid); err != nil {
			if _, err := defaultClient.CreateIndex(&meilisearch.IndexConfig{
				Uid:        idx.uid,
				PrimaryKey: "id",
			}); err != nil {
				return fmt.Errorf("failed to create index %s: %w", idx.uid, err)
			}
			l.Info("search index created", zap.String("index", idx.uid))
		}

		if _, err := defaultClient.Index(idx.uid).UpdateSettings(idx.settings); err != nil {
			return fmt.Errorf("failed to update settings for index %s: %w", idx.uid, err)
		}
	}

	return nil
}

// GenerateTenantToken mints a scoped, expiring search credential that
// restricts direct queries to documents owned by the given user.
func GenerateTenantToken(userID string) (string, error) {
	searchRules := map[string]interface{}{
		IndexRepos: map[string]interface{}{
			"filter": fmt.Sprintf("%s = %s", FieldUserID, userID),
		},
		IndexFiles: map[string]interface{}{
			"filter": fmt.Sprintf("%s = %s", FieldUserID, userID),
		},
	}

	return defaultClient.GenerateTenantToken(
		config.Meili.SearchKeyUID(),
		searchRules,
		&meilisearch.TenantTokenOptions{
			APIKey:    config.Meili.SearchKey(),
			ExpiresAt: time.Now().Add(tenantTokenTTL),
		},
	)
}

// Indexer adapts the package client to the search domain's Indexer
// interface. The underlying SDK manages its own request timeouts.
type Indexer struct{}

var _ search.Indexer = Indexer{}

func (Indexer) AddRepoDocuments(docs []search.RepoDocument) error {
	_, err := defaultClient.Index(IndexRepos).AddDocuments(docs)
	return err
}

func (Indexer) UpdateRepoDocuments(docs []search.RepoDocument) error {
	_, err := defaultClient.Index(IndexRepos).UpdateDocuments(docs)
	return err
}

func (Indexer) DeleteRepoDocuments(ids []string) error {
	_, err := defaultClient.Index(IndexRepos).DeleteDocuments(ids)
	return err
}

func (Indexer) AddFileDocuments(docs []search.FileDocument) error {
	_, err := defaultClient.Index(IndexFiles).AddDocuments(docs)
	return err
}

func (Indexer) DeleteFileDocuments(ids []string) error {
	_, err := defaultClient.Index(IndexFiles).DeleteDocuments(ids)
	return err
}
