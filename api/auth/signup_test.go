package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func signUpRequest(body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/v1/auth/sign-up", web.Wrap(SignUp, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-up", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignUpRejectsInvalidEmail(t *testing.T) {
	rec := signUpRequest(`{"email":"not-an-email","password":"longenough"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	rec := signUpRequest(`{"email":"a@b.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpRejectsMalformedBody(t *testing.T) {
	rec := signUpRequest(`{"email"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
