package repos

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"github.com/noterepo/noterepo/domains/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret-for-tests")

	e := echo.New()
	e.POST("/v1/users/:userId/repo", web.Authed(Create, zap.NewNop()))

	token, err := auth.SignAccessToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/users/u1/repo", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateRejectsShortName(t *testing.T) {
	rec := createRequest(t, `{"name":"ab","description":"some notes","tags":["go"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsLongDescription(t *testing.T) {
	long := strings.Repeat("x", 51)
	rec := createRequest(t, `{"name":"notes","description":"`+long+`","tags":["go"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRequiresTags(t *testing.T) {
	rec := createRequest(t, `{"name":"notes","description":"some notes","tags":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	rec := createRequest(t, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
