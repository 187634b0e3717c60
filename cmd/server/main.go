package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pgagi/devops-assignment-backend/internal/http/api"
	"github.com/pgagi/devops-assignment-backend/internal/http/routes"
	"github.com/pgagi/devops-assignment-backend/internal/platform/config"
	applog "github.com/pgagi/devops-assignment-backend/internal/platform/logging"
	appmiddleware "github.com/pgagi/devops-assignment-backend/internal/platform/middleware"
	"github.com/pgagi/devops-assignment-backend/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "1.0.0"

const shutdownTimeout = 10 * time.Second

func main() {
	defer func() {
		// Sync on stdout returns EINVAL on some platforms; nothing to act on.
		_ = applog.Sync()
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "invalid configuration", err)
	}
	applog.SetLevel(cfg.LogLevel)

	srv := newServer(cfg, newHandler(cfg))

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.Strings("allowedOrigins", cfg.AllowedOrigins),
			zap.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogFatal(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// newHandler assembles the router, middleware stack and API operations.
func newHandler(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(api.DocsPath, api.OpenAPIPath, api.SchemasPath),
		appmiddleware.Vary(),
		// Before routing so preflight requests never hit MethodNotAllowed.
		appmiddleware.CORS(appmiddleware.CORSOptions{
			AllowedOrigins: cfg.AllowedOrigins,
			MaxAge:         cfg.CORSMaxAge,
		}),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	a := humachi.New(router, api.NewConfig(Version))
	api.AdvertiseCBOR(a)
	routes.Register(a)

	return router
}

func newServer(cfg config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}
