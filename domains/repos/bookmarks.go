package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/noterepo/noterepo/db"
)

var (
	ErrAlreadyBookmarked = errors.New("repo already bookmarked")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
)

// Bookmark saves a public repo to the user's bookmark list.
func Bookmark(ctx context.Context, userID, repoID string) (*BookmarkEntry, error) {
	if _, err := db.Query1(ctx, func(q *db.Queries) (db.Repo, error) {
		return q.GetPublicRepoByID(ctx, repoID)
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dbBookmark, err := db.Query1(ctx, func(q *db.Queries) (db.Bookmark, error) {
		return q.CreateBookmark(ctx, db.CreateBookmarkParams{
			ID:     uuid.NewString(),
			UserID: userID,
			RepoID: repoID,
		})
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyBookmarked
		}
		return nil, err
	}

	return &BookmarkEntry{
		ID:        dbBookmark.ID,
		UserID:    dbBookmark.UserID,
		RepoID:    dbBookmark.RepoID,
		CreatedAt: dbBookmark.CreatedAt.Time,
	}, nil
}

// ListBookmarkRepoIDs returns just the repo ids a user has bookmarked.
func ListBookmarkRepoIDs(ctx context.Context, userID string) ([]string, error) {
	bookmarks, err := db.Query1(ctx, func(q *db.Queries) ([]db.Bookmark, error) {
		return q.ListBookmarksByUserID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.RepoID)
	}
	return ids, nil
}

// Unbookmark drops a repo from the user's bookmark list.
func Unbookmark(ctx context.Context, userID, repoID string) error {
	bookmark, err := db.Query1(ctx, func(q *db.Queries) (db.Bookmark, error) {
		return q.GetBookmarkByUserAndRepo(ctx, db.GetBookmarkByUserAndRepoParams{
			UserID: userID,
			RepoID: repoID,
		})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrBookmarkNotFound
		}
		return err
	}

	return db.Query(ctx, func(q *db.Queries) error {
		return q.DeleteBookmark(ctx, bookmark.ID)
	})
}

// ListBookmarks returns the still-existing repos a user has bookmarked.
// Repos made private after bookmarking stay listed; the share endpoint
// is what refuses them.
func ListBookmarks(ctx context.Context, userID string) ([]Repo, error) {
	bookmarks, err := db.Query1(ctx, func(q *db.Queries) ([]db.Bookmark, error) {
		return q.ListBookmarksByUserID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return []Repo{}, nil
	}

	ids := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.RepoID)
	}

	dbRepos, err := db.Query1(ctx, func(q *db.Queries) ([]db.Repo, error) {
		return q.ListReposByIDs(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	return toRepos(dbRepos), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
