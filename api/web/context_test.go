package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/domains/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthedServer(t *testing.T) *echo.Echo {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret-for-tests")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret-for-tests")

	e := echo.New()
	e.GET("/v1/users/:userId/ping", Authed(func(c Context) error {
		return c.OK(map[string]string{"userId": c.UserID})
	}, zap.NewNop()))
	return e
}

func TestAuthedRejectsMissingToken(t *testing.T) {
	e := newAuthedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthedRejectsGarbageToken(t *testing.T) {
	e := newAuthedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthedForbidsActingOnAnotherUser(t *testing.T) {
	e := newAuthedServer(t)

	token, err := auth.SignAccessToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u2/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthedPassesMatchingUser(t *testing.T) {
	e := newAuthedServer(t)

	token, err := auth.SignAccessToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "u1")
}

func TestAuthedRejectsRefreshTokenAsAccess(t *testing.T) {
	e := newAuthedServer(t)

	token, err := auth.SignRefreshToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/ping", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
