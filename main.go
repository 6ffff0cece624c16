package main

import (
	"net/http"

	"github.com/madflojo/tasks"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/2HgO/erino-go/config"
	"github.com/2HgO/erino-go/db"
	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/handlers"
	"github.com/2HgO/erino-go/services"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			NewHttpServer,
			NewRootHandler,
			fx.Annotate(
				NewServeMux,
				fx.ParamTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewAuthHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewLeadHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewHealthHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			handlers.NewMiddlewareHandler,
			services.NewTokenService,
			services.NewAccountService,
			services.NewLeadService,
			services.NewHealthService,
			db.GetDataDBConnection,
			tasks.New,
			zap.NewProduction,
		),
		fx.Invoke(func(cfg *config.Config) {
			errors.SetVerbose(!cfg.Production())
		}),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}
