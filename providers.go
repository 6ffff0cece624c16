package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MadAppGang/httplog"
	lzap "github.com/MadAppGang/httplog/zap"
	ghandlers "github.com/gorilla/handlers"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/2HgO/erino-go/config"
	"github.com/2HgO/erino-go/errors"
	"github.com/2HgO/erino-go/handlers"
	"github.com/2HgO/erino-go/utils"
)

func NewHttpServer(lc fx.Lifecycle, cfg *config.Config, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			fmt.Println("Starting HTTP server at", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

func NewServeMux(routers []handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	for _, router := range routers {
		router.ServeHttp(mux)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, 404, map[string]string{"error": "Not Found"})
	})
	return mux
}

// NewRootHandler wraps the mux with the cross-cutting middleware: panic
// recovery, metrics, access logging and CORS for the configured frontend
// origin.
func NewRootHandler(cfg *config.Config, mux *http.ServeMux, log *zap.Logger) http.Handler {
	requestLogger := httplog.LoggerWithFormatter(lzap.DefaultZapLogger(log, zap.InfoLevel, ""))

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{cfg.FrontendURL}),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		ghandlers.AllowedHeaders([]string{"Content-Type"}),
		ghandlers.AllowCredentials(),
	)

	return cors(requestLogger(handlers.MetricsMiddleware(recoverPanics(log, mux))))
}

func recoverPanics(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("handler panic", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				errors.NewUnknownError(rec).Serialize(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
