package users

import (
	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger) {
	e.GET("/v1/users/:id/profile", web.Wrap(Profile, l))
	e.POST("/v1/users/forget-password", web.Wrap(ForgetPassword, l))
	e.POST("/v1/users/reset-password/:token", web.Wrap(ResetPassword, l))

	e.PATCH("/v1/users/:id", web.Authed(Update, l))
	e.PATCH("/v1/users/:id/bio", web.Authed(UpdateBio, l))
	e.DELETE("/v1/users/:id", web.Authed(Delete, l))
}
