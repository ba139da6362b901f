package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/noterepo/noterepo/config"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated user id in both token kinds.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// SignAccessToken mints a short-lived access token for a user.
func SignAccessToken(userID string) (string, error) {
	return signToken(userID, accessTokenTTL, config.Auth.AccessSecret())
}

// SignRefreshToken mints the long-lived refresh token for a user.
func SignRefreshToken(userID string) (string, error) {
	return signToken(userID, refreshTokenTTL, config.Auth.RefreshSecret())
}

// ParseAccessToken validates an access token and returns the user id.
func ParseAccessToken(token string) (string, error) {
	return parseToken(token, config.Auth.AccessSecret())
}

// ParseRefreshToken validates a refresh token and returns the user id.
func ParseRefreshToken(token string) (string, error) {
	return parseToken(token, config.Auth.RefreshSecret())
}

func signToken(userID string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func parseToken(token, secret string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
