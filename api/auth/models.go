package auth

import (
	"time"

	"github.com/noterepo/noterepo/domains/auth"
	"github.com/noterepo/noterepo/domains/users"
)

// UserResponse is the sanitized user returned by auth endpoints.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Username   *string   `json:"username"`
	Bio        *string   `json:"bio"`
	IsVerified bool      `json:"isVerified"`
	RepoCount  int32     `json:"repoCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SessionResponse carries the token set handed out on sign-in, initial
// username set and token refresh.
type SessionResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	SearchToken  string       `json:"search_token"`
}

func toUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		Bio:        u.Bio,
		IsVerified: u.IsVerified,
		RepoCount:  u.RepoCount,
		CreatedAt:  u.CreatedAt,
	}
}

func toSessionResponse(s *auth.Session) SessionResponse {
	return SessionResponse{
		User:         toUserResponse(s.User),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		SearchToken:  s.SearchToken,
	}
}
