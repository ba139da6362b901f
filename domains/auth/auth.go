// Package auth implements account sign-up, verification and the token
// based session flow. Sessions pair a JWT access/refresh token set with
// a scoped search credential for the hosted search engine.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/noterepo/noterepo/db"
	"github.com/noterepo/noterepo/domains/users"
	"github.com/noterepo/noterepo/libs/email"
	"github.com/noterepo/noterepo/libs/meili"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken          = errors.New("email already in use")
	ErrUsernameTaken       = errors.New("username already in use")
	ErrUsernameAlreadySet  = errors.New("username already set")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotVerified         = errors.New("account not verified")
	ErrVerificationExpired = errors.New("verification link expired")
	ErrInvalidRefresh      = errors.New("invalid refresh token")
)

// Session is the result of a successful sign-in or token refresh.
type Session struct {
	User         *users.User
	AccessToken  string
	RefreshToken string
	SearchToken  string
}

// SignUp registers a new account and mails the verification link. A
// failed send is logged, not fatal; sign-in re-sends the link.
func SignUp(ctx context.Context, emailAddr, password string, l *zap.Logger) (*users.User, error) {
	if _, err := users.GetByEmail(ctx, emailAddr); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := users.Create(ctx, emailAddr, string(hash))
	if err != nil {
		return nil, err
	}

	token, err := mintVerification(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if err := email.SendVerificationMail(user.Email, token); err != nil {
		l.Warn("failed to send verification mail", zap.Error(err))
	}

	return user, nil
}

// SignIn checks the credentials and opens a session. Unverified
// accounts get their verification link re-sent and ErrNotVerified.
func SignIn(ctx context.Context, emailAddr, password string, l *zap.Logger) (*Session, error) {
	user, err := users.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}

	if !user.IsVerified {
		token, err := mintVerification(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if err := email.SendVerificationMail(user.Email, token); err != nil {
			l.Warn("failed to resend verification mail", zap.Error(err))
		}
		return nil, ErrNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// No username yet means the welcome flow was never finished; the
	// client gets sent there instead of receiving tokens.
	if user.Username == nil {
		return &Session{User: user}, nil
	}

	return openSession(ctx, user)
}

// VerifyAccount consumes a verification token and activates the account.
func VerifyAccount(ctx context.Context, token string) (*users.User, error) {
	verification, err := db.Query1(ctx, func(q *db.Queries) (db.Verification, error) {
		return q.GetVerificationByToken(ctx, token)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVerificationExpired
		}
		return nil, err
	}

	user, err := users.SetVerified(ctx, verification.UserID)
	if err != nil {
		return nil, err
	}

	if err := db.Query(ctx, func(q *db.Queries) error {
		return q.DeleteVerification(ctx, verification.ID)
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// SetInitialUsername claims a username for a freshly verified account
// and opens the first session.
func SetInitialUsername(ctx context.Context, userID, username string) (*Session, error) {
	current, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.Username != nil {
		return nil, ErrUsernameAlreadySet
	}

	if _, err := users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, err
	}

	user, err := users.SetUsername(ctx, userID, username)
	if err != nil {
		return nil, err
	}

	return openSession(ctx, user)
}

// RefreshTokens rotates the token pair for a valid refresh token.
func RefreshTokens(ctx context.Context, refreshToken string) (*Session, error) {
	userID, err := ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	stored := user.RefreshToken()
	if stored == nil || *stored != refreshToken {
		return nil, ErrInvalidRefresh
	}

	return openSession(ctx, user)
}

// SignOut clears the stored refresh token so it can no longer rotate.
func SignOut(ctx context.Context, userID string) error {
	return users.SetRefreshToken(ctx, userID, nil)
}

func openSession(ctx context.Context, user *users.User) (*Session, error) {
	access, err := SignAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := SignRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	if err := users.SetRefreshToken(ctx, user.ID, &refresh); err != nil {
		return nil, err
	}

	searchToken, err := meili.GenerateTenantToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate search token: %w", err)
	}

	return &Session{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		SearchToken:  searchToken,
	}, nil
}

// mintVerification returns the user's pending verification token,
// creating one if none exists.
func mintVerification(ctx context.Context, userID string) (string, error) {
	existing, err := db.Query1(ctx, func(q *db.Queries) (db.Verification, error) {
		return q.GetVerificationByUserID(ctx, userID)
	})
	if err == nil {
		return existing.Token, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	created, err := db.Query1(ctx, func(q *db.Queries) (db.Verification, error) {
		return q.CreateVerification(ctx, db.CreateVerificationParams{
			ID:     uuid.NewString(),
			Token:  uuid.NewString(),
			UserID: userID,
		})
	})
	if err != nil {
		return "", err
	}
	return created.Token, nil
}
