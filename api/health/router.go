package health

import (
	"github.com/labstack/echo/v4"
	"github.com/noterepo/noterepo/api/web"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger) {
	e.GET("/v1/health", web.Wrap(Get, l))
}
