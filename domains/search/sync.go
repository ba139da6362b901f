package search

import (
	"context"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Syncer forwards mutations to the search index without ever blocking
// the caller. Every method returns immediately; the actual index write
// runs in its own goroutine and failures are logged and swallowed.
// The index is not the system of record, so a stale document is
// acceptable and never fails the triggering operation.
//
// No ordering is guaranteed between writes for the same entity; a rapid
// create-then-delete can reach the provider out of order.
type Syncer struct {
	l       *zap.Logger
	indexer Indexer
	wg      sync.WaitGroup
}

// NewSyncer creates a syncer writing through the given indexer.
func NewSyncer(indexer Indexer, l *zap.Logger) *Syncer {
	return &Syncer{
		l:       l,
		indexer: indexer,
	}
}

// RepoCreated indexes a freshly created public repo.
func (s *Syncer) RepoCreated(doc RepoDocument) {
	s.dispatch("repo.created", func() error {
		return s.indexer.AddRepoDocuments([]RepoDocument{doc})
	})
}

// RepoUpdated refreshes an existing repo document.
func (s *Syncer) RepoUpdated(doc RepoDocument) {
	s.dispatch("repo.updated", func() error {
		return s.indexer.UpdateRepoDocuments([]RepoDocument{doc})
	})
}

// RepoDeleted removes repo documents by id.
func (s *Syncer) RepoDeleted(ids ...string) {
	if len(ids) == 0 {
		return
	}
	s.dispatch("repo.deleted", func() error {
		return s.indexer.DeleteRepoDocuments(ids)
	})
}

// FileCreated indexes a freshly uploaded file.
func (s *Syncer) FileCreated(doc FileDocument) {
	s.dispatch("file.created", func() error {
		return s.indexer.AddFileDocuments([]FileDocument{doc})
	})
}

// FilesDeleted removes file documents by id.
func (s *Syncer) FilesDeleted(ids ...string) {
	if len(ids) == 0 {
		return
	}
	s.dispatch("file.deleted", func() error {
		return s.indexer.DeleteFileDocuments(ids)
	})
}

// Wait blocks until all dispatched index writes have finished. Used to
// drain in-flight syncs on shutdown and in tests.
func (s *Syncer) Wait() {
	s.wg.Wait()
}

func (s *Syncer) dispatch(op string, fn func() error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.l.Error("search sync panicked", zap.String("op", op), zap.Any("panic", r))
			}
		}()

		if err := fn(); err != nil {
			s.l.Warn("search index sync failed", zap.String("op", op), zap.Error(err))
		}
	}()
}

var defaultSyncer *Syncer

// Configure installs the default syncer and registers a shutdown drain.
func Configure(lc fx.Lifecycle, indexer Indexer, l *zap.Logger) {
	defaultSyncer = NewSyncer(indexer, l)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Info("draining search index syncs")
			defaultSyncer.Wait()
			return nil
		},
	})
}

// SetDefault swaps the default syncer. Intended for tests.
func SetDefault(s *Syncer) {
	defaultSyncer = s
}

// Default returns the default syncer.
func Default() *Syncer {
	return defaultSyncer
}

// RepoCreated forwards to the default syncer when one is configured.
func RepoCreated(doc RepoDocument) {
	if defaultSyncer != nil {
		defaultSyncer.RepoCreated(doc)
	}
}

// RepoUpdated forwards to the default syncer when one is configured.
func RepoUpdated(doc RepoDocument) {
	if defaultSyncer != nil {
		defaultSyncer.RepoUpdated(doc)
	}
}

// RepoDeleted forwards to the default syncer when one is configured.
func RepoDeleted(ids ...string) {
	if defaultSyncer != nil {
		defaultSyncer.RepoDeleted(ids...)
	}
}

// FileCreated forwards to the default syncer when one is configured.
func FileCreated(doc FileDocument) {
	if defaultSyncer != nil {
		defaultSyncer.FileCreated(doc)
	}
}

// FilesDeleted forwards to the default syncer when one is configured.
func FilesDeleted(ids ...string) {
	if defaultSyncer != nil {
		defaultSyncer.FilesDeleted(ids...)
	}
}
