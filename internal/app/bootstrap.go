package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/userhub/internal/config"
	"github.com/ferdiebergado/userhub/internal/middleware"
	"github.com/ferdiebergado/userhub/internal/pkg/logging"
	"golang.org/x/sync/errgroup"
)

const (
	envFile = ".env"
	cfgFile = "config.json"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" && fileExists(envFile) {
		if err := env.Load(envFile); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	store, err := OpenStore(signalCtx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close store", "reason", err)
		}
	}()

	api := New(cfg, newProvider(store), Middlewares(cfg))

	g, gCtx := errgroup.WithContext(signalCtx)
	g.Go(func() error {
		return api.Start(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return api.Shutdown()
	})

	return g.Wait()
}

// Middlewares returns the global middleware chain, outermost first.
func Middlewares(cfg *config.Config) []func(http.Handler) http.Handler {
	srv := cfg.Server
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.SecureHeaders(cfg.IsProduction()),
		middleware.RateLimit(srv.RateLimit, srv.RateWindow.Duration),
		middleware.CORS(srv.AllowedOrigin),
		middleware.ContextGuard,
	}
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
