package users

import (
	"time"

	"github.com/noterepo/noterepo/db"
)

// User is the domain view of an account. Password and refresh token
// never leave the package.
type User struct {
	ID         string
	Email      string
	Username   *string
	Bio        *string
	IsVerified bool
	RepoCount  int32
	CreatedAt  time.Time

	password     string
	refreshToken *string
}

// Profile is the public view of a user.
type Profile struct {
	Username *string
	Bio      *string
}

func toUser(u db.User) *User {
	user := &User{
		ID:         u.ID,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		RepoCount:  u.RepoCount,
		CreatedAt:  u.CreatedAt.Time,
		password:   u.Password,
	}
	if u.Username.Valid {
		user.Username = &u.Username.String
	}
	if u.Bio.Valid {
		user.Bio = &u.Bio.String
	}
	if u.RefreshToken.Valid {
		user.refreshToken = &u.RefreshToken.String
	}
	return user
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.password
}

// RefreshToken returns the stored refresh token, if any.
func (u *User) RefreshToken() *string {
	return u.refreshToken
}
