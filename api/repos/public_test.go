package repos

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func listPublicRequest(t *testing.T, query string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/v1/users/repo", web.Wrap(ListPublic, zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/v1/users/repo"+query, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListPublicRejectsUndecodableCursor(t *testing.T) {
	rec := listPublicRequest(t, "?next_cursor=!!!not-base64")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPublicRejectsNonTimestampCursor(t *testing.T) {
	cursor := base64.StdEncoding.EncodeToString([]byte("not a timestamp"))
	rec := listPublicRequest(t, "?next_cursor="+cursor)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPublicRejectsBothCursors(t *testing.T) {
	rec := listPublicRequest(t, "?next_cursor=aaaa&previous_cursor=bbbb")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPublicRejectsBadLimit(t *testing.T) {
	for _, q := range []string{"?limit=abc", "?limit=0", "?limit=-5"} {
		rec := listPublicRequest(t, q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %s", q)
	}
}
