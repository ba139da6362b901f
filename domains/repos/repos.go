// Package repos implements repository CRUD, the public keyset-paginated
// listing and bookmarks. Creation enforces the per-user repo ceiling
// with an atomic conditional increment so concurrent creates cannot
// slip past the limit.
package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/noterepo/noterepo/db"
	"github.com/noterepo/noterepo/domains/files"
	"github.com/noterepo/noterepo/domains/search"
	"github.com/noterepo/noterepo/libs/storage"
	"go.uber.org/zap"
)

// maxReposPerUser is the creation ceiling per account.
const maxReposPerUser = 5

const (
	defaultPageSize = 10
	maxPageSize     = 15
)

var (
	ErrNotFound  = errors.New("repo not found")
	ErrRepoLimit = errors.New("repo limit reached")
)

// Page is one slice of the public listing.
type Page struct {
	Results        int
	Data           []Repo
	NextCursor     string
	PreviousCursor string
	PerPage        int
}

// Create inserts a repo for the user. The owner's repo_count is bumped
// in the same transaction, and only when still below the ceiling.
func Create(ctx context.Context, userID, name, description string, tags []string, isPublic bool) (*Repo, error) {
	dbRepo, err := db.Tx1(ctx, func(q *db.Queries) (db.Repo, error) {
		affected, err := q.IncrementRepoCountBelowLimit(ctx, db.IncrementRepoCountBelowLimitParams{
			ID:        userID,
			RepoCount: maxReposPerUser,
		})
		if err != nil {
			return db.Repo{}, err
		}
		if affected == 0 {
			return db.Repo{}, ErrRepoLimit
		}

		return q.CreateRepo(ctx, db.CreateRepoParams{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
			IsPublic:    isPublic,
			Tags:        tags,
			UserID:      userID,
		})
	})
	if err != nil {
		return nil, err
	}

	repo := toRepo(dbRepo)
	if repo.IsPublic {
		search.RepoCreated(repoDocument(repo))
	}
	return &repo, nil
}

// GetByIDAndUser returns the caller's repo with its files.
func GetByIDAndUser(ctx context.Context, userID, repoID string) (*Detail, error) {
	dbRepo, err := db.Query1(ctx, func(q *db.Queries) (db.Repo, error) {
		return q.GetRepoByIDAndUserID(ctx, db.GetRepoByIDAndUserIDParams{ID: repoID, UserID: userID})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return withFiles(ctx, toRepo(dbRepo))
}

// Share returns the public view of a repo with its files. Private repos
// are indistinguishable from missing ones.
func Share(ctx context.Context, repoID string) (*Detail, error) {
	dbRepo, err := db.Query1(ctx, func(q *db.Queries) (db.Repo, error) {
		return q.GetPublicRepoByID(ctx, repoID)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return withFiles(ctx, toRepo(dbRepo))
}

// ListByUser returns all of a user's repos with their file counts.
func ListByUser(ctx context.Context, userID string) ([]ListItem, error) {
	rows, err := db.Query1(ctx, func(q *db.Queries) ([]db.ListReposByUserIDRow, error) {
		return q.ListReposByUserID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ListItem{Repo: toRepo(row.Repo), FileCount: row.FileCount})
	}
	return items, nil
}

// ListPublicByUser returns only the user's public repos, for profiles.
func ListPublicByUser(ctx context.Context, userID string) ([]ListItem, error) {
	items, err := ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	public := items[:0]
	for _, item := range items {
		if item.IsPublic {
			public = append(public, item)
		}
	}
	return public, nil
}

// ListPublic pages over every public repo ordered by creation time
// ascending. One extra row is fetched past the page to seed the next
// cursor; when it is absent the next cursor is the empty sentinel.
func ListPublic(ctx context.Context, nextCursor, previousCursor string, limit int) (*Page, error) {
	if nextCursor != "" && previousCursor != "" {
		return nil, ErrCursorConflict
	}

	perPage := pageSize(limit)
	fetch := int32(perPage + 1)

	backward := previousCursor != ""
	cursor := nextCursor
	if backward {
		cursor = previousCursor
	}

	boundary, hasBoundary, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}

	var dbRows []db.Repo
	switch {
	case !hasBoundary:
		dbRows, err = db.Query1(ctx, func(q *db.Queries) ([]db.Repo, error) {
			return q.ListPublicReposFirst(ctx, fetch)
		})
	case backward:
		dbRows, err = db.Query1(ctx, func(q *db.Queries) ([]db.Repo, error) {
			return q.ListPublicReposBefore(ctx, db.ListPublicReposBeforeParams{
				CreatedAt: pgtype.Timestamptz{Time: boundary, Valid: true},
				Limit:     fetch,
			})
		})
	default:
		dbRows, err = db.Query1(ctx, func(q *db.Queries) ([]db.Repo, error) {
			return q.ListPublicReposAfter(ctx, db.ListPublicReposAfterParams{
				CreatedAt: pgtype.Timestamptz{Time: boundary, Valid: true},
				Limit:     fetch,
			})
		})
	}
	if err != nil {
		return nil, err
	}

	return assemblePage(toRepos(dbRows), perPage, nextCursor, backward), nil
}

// pageSize clamps the requested limit to [1, maxPageSize], defaulting
// when the client sent none.
func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

// assemblePage turns fetched rows (page size + 1 lookahead, in fetch
// order) into a page. The lookahead row seeds the next cursor and is
// dropped; backward fetches are flipped back to ascending order. The
// previous cursor echoed back is the next cursor the client sent in.
func assemblePage(rows []Repo, perPage int, inputNextCursor string, backward bool) *Page {
	next := ""
	if len(rows) > perPage {
		next = encodeCursor(rows[perPage].CreatedAt)
		rows = rows[:perPage]
	}

	if backward {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	return &Page{
		Results:        len(rows),
		Data:           rows,
		NextCursor:     next,
		PreviousCursor: inputNextCursor,
		PerPage:        perPage,
	}
}

// Delete removes the caller's repo, its file rows and the owner's count
// in one transaction, then clears the index and storage best-effort.
func Delete(ctx context.Context, userID, repoID string, l *zap.Logger) error {
	_, err := db.Query1(ctx, func(q *db.Queries) (db.Repo, error) {
		return q.GetRepoByIDAndUserID(ctx, db.GetRepoByIDAndUserIDParams{ID: repoID, UserID: userID})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	repoFiles, err := db.Query1(ctx, func(q *db.Queries) ([]db.File, error) {
		return q.ListFilesByRepoID(ctx, repoID)
	})
	if err != nil {
		return err
	}

	if err := db.Tx(ctx, func(q *db.Queries) error {
		if err := q.DeleteFilesByRepoID(ctx, repoID); err != nil {
			return err
		}
		if err := q.DeleteRepo(ctx, repoID); err != nil {
			return err
		}
		return q.DecrementRepoCount(ctx, userID)
	}); err != nil {
		return err
	}

	search.RepoDeleted(repoID)
	if len(repoFiles) > 0 {
		fileIDs := make([]string, 0, len(repoFiles))
		var raw, images []string
		for _, f := range repoFiles {
			fileIDs = append(fileIDs, f.ID)
			if f.ResourceType == storage.ResourceTypeImage {
				images = append(images, f.PublicName)
			} else {
				raw = append(raw, f.PublicName)
			}
		}
		search.FilesDeleted(fileIDs...)

		if err := storage.DeleteAll(ctx, raw, storage.ResourceTypeRaw); err != nil {
			l.Warn("failed to delete raw assets", zap.Error(err))
		}
		if err := storage.DeleteAll(ctx, images, storage.ResourceTypeImage); err != nil {
			l.Warn("failed to delete image assets", zap.Error(err))
		}
	}

	return nil
}

func withFiles(ctx context.Context, repo Repo) (*Detail, error) {
	fs, err := files.ListByRepoID(ctx, repo.ID)
	if err != nil {
		return nil, err
	}
	return &Detail{Repo: repo, Files: fs}, nil
}

func repoDocument(r Repo) search.RepoDocument {
	return search.RepoDocument{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Tags:        r.Tags,
		IsPublic:    r.IsPublic,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
	}
}
