package meili

import (
	"fmt"

	"github.com/meilisearch/meilisearch-go"
	"github.com/noterepo/noterepo/config"
	"go.uber.org/zap"
)

var defaultClient *meilisearch.Client

// Init connects the Meilisearch client and ensures the search indexes
// exist with the expected settings.
func Init(l *zap.Logger) error {
	defaultClient = meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   config.Meili.Host(),
		APIKey: config.Meili.AdminKey(),
	})

	l.Info("meilisearch client initialized", zap.String("host", config.Meili.Host()))

	if err := ensureIndexes(l); err != nil {
		return fmt.Errorf("failed to ensure search indexes: %w", err)
	}

	return nil
}

// GetClient returns the default client
func GetClient() *meilisearch.Client {
	return defaultClient
}
