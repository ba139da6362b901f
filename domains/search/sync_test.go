package search

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// recordingIndexer counts calls and can be told to fail everything.
type recordingIndexer struct {
	mu      sync.Mutex
	adds    int
	updates int
	deletes int
	err     error
}

func (r *recordingIndexer) AddRepoDocuments(docs []RepoDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adds++
	return r.err
}

func (r *recordingIndexer) UpdateRepoDocuments(docs []RepoDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	return r.err
}

func (r *recordingIndexer) DeleteRepoDocuments(ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	return r.err
}

func (r *recordingIndexer) AddFileDocuments(docs []FileDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adds++
	return r.err
}

func (r *recordingIndexer) DeleteFileDocuments(ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	return r.err
}

func TestSyncerDispatchesAllOps(t *testing.T) {
	idx := &recordingIndexer{}
	s := NewSyncer(idx, zap.NewNop())

	s.RepoCreated(RepoDocument{ID: "r1", Name: "Test", Tags: []string{"a"}})
	s.RepoUpdated(RepoDocument{ID: "r1"})
	s.RepoDeleted("r1")
	s.FileCreated(FileDocument{ID: "f1"})
	s.FilesDeleted("f1", "f2")
	s.Wait()

	idx.mu.Lock()
	defer idx.mu.Unlock()
	assert.Equal(t, 2, idx.adds)
	assert.Equal(t, 1, idx.updates)
	assert.Equal(t, 2, idx.deletes)
}

func TestSyncerSwallowsIndexerFailures(t *testing.T) {
	idx := &recordingIndexer{err: errors.New("index unreachable")}
	s := NewSyncer(idx, zap.NewNop())

	// Must neither panic nor block; the caller never sees the error.
	s.RepoCreated(RepoDocument{ID: "r1", Name: "Test", Tags: []string{"a"}})
	s.FilesDeleted("f1")
	s.Wait()

	idx.mu.Lock()
	defer idx.mu.Unlock()
	assert.Equal(t, 1, idx.adds)
	assert.Equal(t, 1, idx.deletes)
}

func TestSyncerSkipsEmptyDeletes(t *testing.T) {
	idx := &recordingIndexer{}
	s := NewSyncer(idx, zap.NewNop())

	s.RepoDeleted()
	s.FilesDeleted()
	s.Wait()

	idx.mu.Lock()
	defer idx.mu.Unlock()
	assert.Equal(t, 0, idx.deletes)
}

func TestForwardersWithoutDefaultAreNoOps(t *testing.T) {
	SetDefault(nil)

	assert.NotPanics(t, func() {
		RepoCreated(RepoDocument{ID: "r1"})
		RepoUpdated(RepoDocument{ID: "r1"})
		RepoDeleted("r1")
		FileCreated(FileDocument{ID: "f1"})
		FilesDeleted("f1")
	})
}
