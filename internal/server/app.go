package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/bcp-audit/internal/config"
	"github.com/iudanet/bcp-audit/internal/server/handlers"
	"github.com/iudanet/bcp-audit/internal/server/jwt"
	"github.com/iudanet/bcp-audit/internal/server/middleware"
	"github.com/iudanet/bcp-audit/internal/server/storage/sqlite"
)

// App представляет собранный stub-сервер
type App struct {
	server          *http.Server
	store           *sqlite.Storage
	limiter         *middleware.RateLimiter
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New открывает БД, применяет миграции, создает пользователей и собирает роутер
func New(ctx context.Context, cfg *config.ServerConfig, logger *slog.Logger) (*App, error) {
	logger.InfoContext(ctx, "opening database", slog.String("path", cfg.DBPath))
	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	users := handlers.DefaultUsers(cfg.AdminPassword, cfg.UserPassword)
	if err := handlers.SeedUsers(ctx, store, users, bcrypt.DefaultCost); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	logger.InfoContext(ctx, "users seeded", slog.Int("count", len(users)))

	tokens := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPM, time.Minute, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := NewRouter(Handlers{
		Health:    handlers.NewHealthHandler(logger, store, cfg.ServerPort),
		Auth:      handlers.NewAuthHandler(logger, store, tokens),
		Dashboard: handlers.NewDashboardHandler(logger, store),
	}, RouterOptions{
		Logger:      logger,
		Tokens:      tokens,
		RateLimiter: limiter,
		Registry:    registry,
		CORSOrigins: cfg.CORSOrigins,
	})

	return &App{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: cfg.ServerReadTimeout,
			ReadTimeout:       cfg.ServerReadTimeout,
			WriteTimeout:      cfg.ServerWriteTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		store:           store,
		limiter:         limiter,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Handler возвращает корневой http.Handler
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run слушает адрес из конфигурации до отмены ctx
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		a.Close()
		return fmt.Errorf("failed to listen on %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve обслуживает ln до отмены ctx, затем корректно останавливает сервер
// и закрывает хранилище
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer a.Close()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	a.logger.Info("server stopped")
	return nil
}

// Close освобождает ресурсы без остановки HTTP сервера
func (a *App) Close() {
	a.limiter.Stop()
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close storage", slog.Any("error", err))
	}
}
