// Package scheduler собирает процесс планировщика: раз в интервал ищет
// ближайшие дни рождения и публикует напоминания в RabbitMQ.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/personal-assistant/internal/clock"
	"github.com/magabrotheeeer/personal-assistant/internal/config"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/metrics"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/services/contacts"
	schedulerservice "github.com/magabrotheeeer/personal-assistant/internal/services/scheduler"
	"github.com/magabrotheeeer/personal-assistant/internal/storage/repository"
)

const (
	dbReadyRetries = 10
	dbReadyDelay   = 3 * time.Second
)

// App — процесс планировщика напоминаний.
type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	db      *repository.Storage
	service *schedulerservice.Service
	metrics *http.Server
	logger  *slog.Logger
}

// New подключается к RabbitMQ и базе данных и собирает сервис планировщика.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.scheduler.New"

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("connected to RabbitMQ")

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = waitForDB(ctx, db, logger); err != nil {
		_ = db.Close()
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	contactService := contacts.NewService(db, noopCache{}, clock.NewSystem(loc), cfg.CacheTTL, logger)
	service := schedulerservice.New(contactService, rabbitmq.NewPublisher(ch), m, cfg.Interval, logger)

	return &App{
		conn:    conn,
		ch:      ch,
		db:      db,
		service: service,
		metrics: metrics.NewServer(cfg.MetricsAddress, reg),
		logger:  logger,
	}, nil
}

// Run запускает планировщик и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	go func() {
		a.logger.Info("metrics server starting on", slog.String("address", a.metrics.Addr))
		if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", sl.Err(err))
		}
	}()

	a.service.Run(ctx)
	a.logger.Info("scheduler shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.metrics.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("failed to stop metrics server", sl.Err(err))
	}
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
	return nil
}

func waitForDB(ctx context.Context, db *repository.Storage, logger *slog.Logger) error {
	var err error
	for range dbReadyRetries {
		if err = repository.CheckDatabaseReady(ctx, db); err == nil {
			return nil
		}
		logger.Warn("database is not ready yet", sl.Err(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dbReadyDelay):
		}
	}
	return fmt.Errorf("database not ready after retries: %w", err)
}

// noopCache используется там, где кеш не нужен: планировщик читает контакты
// только из базы.
type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Invalidate(context.Context, ...string) error { return nil }
func (noopCache) InvalidatePrefix(context.Context, string) error { return nil }
