package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/userhub/internal/config"
	"github.com/ferdiebergado/userhub/internal/platform/router"
	"github.com/ferdiebergado/userhub/internal/platform/validation"
	"github.com/ferdiebergado/userhub/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	store           *Store
	validator       validation.Validator
	router          router.Router
	ready           chan struct{}
	addr            string
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	userModule := user.NewModule(a.store.Repo)
	mountUserRoutes(a.router, userModule.Handler(), a.validator, a.config.Server.MaxBodyBytes)
	mountHealthRoutes(a.router, handleHealth(a.store.Ping))
}

// Handler returns the fully wired HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start serves HTTP until ctx is done or the listener fails.
func (a *App) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		close(a.ready)
		return fmt.Errorf("listen: %w", err)
	}
	a.addr = ln.Addr().String()
	close(a.ready)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.addr)
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

// Addr blocks until Start has tried to listen and returns the bound address,
// or an empty string when listening failed.
func (a *App) Addr() string {
	<-a.ready
	return a.addr
}

// Shutdown waits up to the configured timeout for in-flight requests to finish,
// then cancels the ones still running.
func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	defer a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		config:          cfg,
		store:           provider.Store,
		validator:       provider.Validator,
		router:          provider.Router,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
		ready:           make(chan struct{}),
	}

	a.registerMiddlewares()
	a.setupRoutes()

	return a
}
