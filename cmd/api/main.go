package main

import (
	"github.com/noterepo/noterepo/api"
	"github.com/noterepo/noterepo/db"
	"github.com/noterepo/noterepo/domains/search"
	"github.com/noterepo/noterepo/libs/email"
	"github.com/noterepo/noterepo/libs/meili"
	"github.com/noterepo/noterepo/libs/storage"
	"github.com/noterepo/noterepo/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			logger.New,
		),
		fx.Decorate(func(l *zap.Logger) *zap.Logger {
			return l.With(zap.String("service", "noterepo"))
		}),
		fx.Invoke(
			db.Init,
			meili.Init,
			storage.Init,
			email.Init,
			func(lc fx.Lifecycle, l *zap.Logger) {
				search.Configure(lc, meili.Indexer{}, l)
			},
			api.Run,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{
				Logger: l,
			}
		}),
	).Run()
}
