// Package sender собирает процесс отправки писем: читает напоминания
// из очереди RabbitMQ и отправляет их по SMTP.
package sender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/personal-assistant/internal/config"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/metrics"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/personal-assistant/internal/services/sender"
)

// App — процесс отправки напоминаний.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.Service
	metrics       *http.Server
	logger        *slog.Logger
}

// New подключается к RabbitMQ и готовит SMTP-транспорт.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.sender.New"

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	transport := smtp.NewTransport(cfg.SMTP, logger)
	senderService := senderservice.New(transport, cfg.Recipient, m, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		metrics:       metrics.NewServer(cfg.MetricsAddress, reg),
		logger:        logger,
	}, nil
}

// Run запускает потребителя очереди напоминаний и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.BirthdayQueue, a.logger, a.senderService.SendBirthdayReminder)
	if err != nil {
		a.logger.Error("failed to start birthday reminder consumer", sl.Err(err))
		a.close()
		return err
	}

	go func() {
		a.logger.Info("metrics server starting on", slog.String("address", a.metrics.Addr))
		if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", sl.Err(err))
		}
	}()

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.metrics.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("failed to stop metrics server", sl.Err(err))
	}
	a.close()
	return nil
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
}
