package bookmarks

import (
	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger) {
	e.POST("/v1/users/:userId/repo/:repoId/bookmark", web.Authed(Create, l))
	e.DELETE("/v1/users/:userId/repo/:repoId/bookmark", web.Authed(Delete, l))
	e.GET("/v1/users/:userId/bookmarks", web.Authed(List, l))
	e.GET("/v1/users/:userId/bookmarks/repoIds", web.Authed(ListRepoIDs, l))
}
