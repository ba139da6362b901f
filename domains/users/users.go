package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/noterepo/noterepo/db"
	"github.com/noterepo/noterepo/domains/search"
	"github.com/noterepo/noterepo/libs/email"
	"github.com/noterepo/noterepo/libs/storage"
	"github.com/noterepo/noterepo/pkg/links"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrResetLinkExpired = errors.New("reset password link expired")
	ErrPasswordMismatch = errors.New("password does not match confirm password")
)

// Create stores a new account with an already-hashed password.
func Create(ctx context.Context, emailAddr, passwordHash string) (*User, error) {
	dbUser, err := db.Query1(ctx, func(q *db.Queries) (db.User, error) {
		return q.CreateUser(ctx, db.CreateUserParams{
			ID:       uuid.NewString(),
			Email:    strings.ToLower(emailAddr),
			Password: passwordHash,
		})
	})
	if err != nil {
		return nil, err
	}
	return toUser(dbUser), nil
}

// GetByID retrieves a user by id
func GetByID(ctx context.Context, id string) (*User, error) {
	dbUser, err := db.Query1(ctx, func(q *db.Queries) (db.User, error) {
		return q.GetUserByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUser(dbUser), nil
}

// GetByEmail retrieves a user by (lowercased) email
func GetByEmail(ctx context.Context, emailAddr string) (*User, error) {
	dbUser, err := db.Query1(ctx, func(q *db.Queries) (db.User, error) {
		return q.GetUserByEmail(ctx, strings.ToLower(emailAddr))
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUser(dbUser), nil
}

// GetByUsername retrieves a user by username
func GetByUsername(ctx context.Context, username string) (*User, error) {
	dbUser, err := db.Query1(ctx, func(q *db.Queries) (db.User, error) {
		return q.GetUserByUsername(ctx, pgtype.Text{String: username, Valid: true})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUser(dbUser), nil
}

// GetProfile returns the public profile fields for a user.
func GetProfile(ctx context.Context, id string) (*Profile, error) {
	user, err := GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Username: user.Username,
		Bio:      user.Bio,
	}, nil
}

// SetUsername sets the user's username.
func SetUsername(ctx context.Context, id, username string) (*User, error) {
	dbUser, err := db.Query1(ctx, func(q *db.Queries) (db.User, error) {
		return q.SetUserUsername(ctx, db.SetUserUsernameParams{
			ID:       id,
			Username: pgtype.Text{String: username, Valid: true},
		})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUser(dbUser), nil
}

// SetBio updates the user's bio.
func SetBio(ctx context.Context, id, bio string) (*User, error) {
	dbUser, err := db.Query1(ctx, func(q *db.Queries) (db.User, error) {
		return q.SetUserBio(ctx, db.SetUserBioParams{
			ID:  id,
			Bio: pgtype.Text{String: bio, Valid: true},
		})
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUser(dbUser), nil
}

// SetVerified marks the user's account verified.
func SetVerified(ctx context.Context, id string) (*User, error) {
	dbUser, err := db.Query1(ctx, func(q *db.Queries) (db.User, error) {
		return q.SetUserVerified(ctx, id)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUser(dbUser), nil
}

// SetRefreshToken stores or clears the user's refresh token.
func SetRefreshToken(ctx context.Context, id string, token *string) error {
	var t pgtype.Text
	if token != nil {
		t = pgtype.Text{String: *token, Valid: true}
	}
	return db.Query(ctx, func(q *db.Queries) error {
		return q.SetUserRefreshToken(ctx, db.SetUserRefreshTokenParams{
			ID:           id,
			RefreshToken: t,
		})
	})
}

// ForgetPassword mints (or reuses) a reset token, mails the reset link
// and returns a user-facing confirmation with the address masked.
func ForgetPassword(ctx context.Context, emailAddr string) (string, error) {
	user, err := GetByEmail(ctx, emailAddr)
	if err != nil {
		return "", err
	}

	var token string
	existing, err := db.Query1(ctx, func(q *db.Queries) (db.ResetPassword, error) {
		return q.GetResetPasswordByUserID(ctx, user.ID)
	})
	switch {
	case err == nil:
		token = existing.Token
	case errors.Is(err, pgx.ErrNoRows):
		created, err := db.Query1(ctx, func(q *db.Queries) (db.ResetPassword, error) {
			return q.CreateResetPassword(ctx, db.CreateResetPasswordParams{
				ID:     uuid.NewString(),
				Token:  uuid.NewString(),
				UserID: user.ID,
			})
		})
		if err != nil {
			return "", err
		}
		token = created.Token
	default:
		return "", err
	}

	if err := email.SendResetPasswordMail(user.Email, links.ResetPassword(token)); err != nil {
		return "", fmt.Errorf("failed to send reset mail: %w", err)
	}

	return fmt.Sprintf("Reset password mail has been sent to %s", links.MaskEmail(user.Email)), nil
}

// ResetPassword consumes a reset token and stores the new password.
func ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	reset, err := db.Query1(ctx, func(q *db.Queries) (db.ResetPassword, error) {
		return q.GetResetPasswordByToken(ctx, token)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrResetLinkExpired
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Tx(ctx, func(q *db.Queries) error {
		if err := q.SetUserPassword(ctx, db.SetUserPasswordParams{
			ID:       reset.UserID,
			Password: string(hash),
		}); err != nil {
			return err
		}
		return q.DeleteResetPassword(ctx, reset.ID)
	})
}

// Remove deletes the account, its repos, files and bookmarks. Storage
// cleanup is best-effort; the search index is told about every removed
// repo and file after the database commit.
func Remove(ctx context.Context, id string, l *zap.Logger) error {
	user, err := GetByID(ctx, id)
	if err != nil {
		return err
	}

	repos, err := db.Query1(ctx, func(q *db.Queries) ([]db.ListReposByUserIDRow, error) {
		return q.ListReposByUserID(ctx, id)
	})
	if err != nil {
		return err
	}

	files, err := db.Query1(ctx, func(q *db.Queries) ([]db.File, error) {
		return q.ListFilesByUserID(ctx, id)
	})
	if err != nil {
		return err
	}

	if len(files) > 0 {
		var rawIDs, imageIDs []string
		for _, f := range files {
			if f.ResourceType == storage.ResourceTypeImage {
				imageIDs = append(imageIDs, f.PublicName)
			} else {
				rawIDs = append(rawIDs, f.PublicName)
			}
		}
		if err := storage.DeleteAll(ctx, rawIDs, storage.ResourceTypeRaw); err != nil {
			l.Warn("failed to delete raw assets", zap.Error(err))
		}
		if err := storage.DeleteAll(ctx, imageIDs, storage.ResourceTypeImage); err != nil {
			l.Warn("failed to delete image assets", zap.Error(err))
		}
		if user.Username != nil {
			if err := storage.DeleteUserFolder(ctx, *user.Username); err != nil {
				l.Warn("failed to delete user folder", zap.Error(err))
			}
		}
	}

	// Repos, files, bookmarks and tokens cascade with the user row.
	if err := db.Query(ctx, func(q *db.Queries) error {
		return q.DeleteUser(ctx, id)
	}); err != nil {
		return err
	}

	repoIDs := make([]string, 0, len(repos))
	for _, r := range repos {
		repoIDs = append(repoIDs, r.Repo.ID)
	}
	fileIDs := make([]string, 0, len(files))
	for _, f := range files {
		fileIDs = append(fileIDs, f.ID)
	}
	search.RepoDeleted(repoIDs...)
	search.FilesDeleted(fileIDs...)

	return nil
}
