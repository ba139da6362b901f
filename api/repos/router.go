package repos

import (
	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger) {
	e.GET("/v1/users/repo", web.Wrap(ListPublic, l))
	e.GET("/v1/users/repo/:repoId/share", web.Wrap(Share, l))

	e.POST("/v1/users/:userId/repo", web.Authed(Create, l))
	e.GET("/v1/users/:userId/repo", web.Authed(List, l))
	e.GET("/v1/users/:userId/repo/:repoId", web.Authed(Get, l))
	e.DELETE("/v1/users/:userId/repo/:repoId", web.Authed(Delete, l))
}
