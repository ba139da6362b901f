package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger) {
	e.POST("/v1/auth/sign-up", web.Wrap(SignUp, l))
	e.POST("/v1/auth/sign-in", web.Wrap(SignIn, l))
	e.GET("/v1/auth/verifyAccount/:token", web.Wrap(VerifyAccount, l))
	e.POST("/v1/auth/setInitialUsername/:userId", web.Wrap(SetInitialUsername, l))
	e.GET("/v1/auth/refreshToken/:userId", web.Wrap(RefreshTokens, l))
	e.POST("/v1/auth/sign-out/:userId", web.Authed(SignOut, l))
}
