package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/personal-assistant/internal/cache"
	"github.com/magabrotheeeer/personal-assistant/internal/clock"
	"github.com/magabrotheeeer/personal-assistant/internal/config"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/metrics"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/ticket"
	"github.com/magabrotheeeer/personal-assistant/internal/migrations"
	"github.com/magabrotheeeer/personal-assistant/internal/services/contacts"
	"github.com/magabrotheeeer/personal-assistant/internal/services/toolkit"
	"github.com/magabrotheeeer/personal-assistant/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// App — HTTP-приложение ассистента.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New подключает хранилище и кеш, применяет миграции и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.assistant.New"

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	clk := clock.NewSystem(loc)
	toolkitService := toolkit.New(clk, ticket.NewDrawer(nil), m, logger)
	contactService := contacts.NewService(db, cacheRedis, clk, cfg.CacheTTL, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, Deps{
		Logger:   logger,
		Metrics:  m,
		Gatherer: reg,
		Limits:   cfg.RateLimit,
		Toolkit:  toolkitService,
		Contacts: contactService,
		DB:       db.DB,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close cache", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
