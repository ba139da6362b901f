package files

import (
	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger) {
	e.POST("/v1/users/:userId/repo/:repoId/file", web.Authed(Upload, l))
	e.DELETE("/v1/users/:userId/repo/:repoId/file/:fileId", web.Authed(Delete, l))
	e.DELETE("/v1/users/:userId/repo/:repoId/files", web.Authed(DeleteMany, l))
}
