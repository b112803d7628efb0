// Package scheduler периодически ищет контакты с ближайшими днями рождения
// и публикует напоминания в брокер.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/personal-assistant/internal/lib/metrics"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// ReminderSource возвращает напоминания на текущую дату.
type ReminderSource interface {
	Reminders(ctx context.Context) ([]models.Reminder, error)
}

// Publisher публикует сообщение в брокер по ключу маршрутизации.
type Publisher interface {
	Publish(routingKey string, message any) error
}

// Service запускает поиск напоминаний по расписанию.
type Service struct {
	source    ReminderSource
	publisher Publisher
	metrics   *metrics.Metrics
	interval  time.Duration
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(source ReminderSource, publisher Publisher, m *metrics.Metrics, interval time.Duration, log *slog.Logger) *Service {
	return &Service{
		source:    source,
		publisher: publisher,
		metrics:   m,
		interval:  interval,
		log:       log,
	}
}

// Run выполняет проход сразу после запуска, затем раз в interval, пока ctx не отменён.
func (s *Service) Run(ctx context.Context) {
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	if _, err := s.PublishReminders(ctx); err != nil {
		s.log.Error("failed to publish reminders", sl.Err(err))
	}
}

// PublishReminders публикует все напоминания на сегодня и возвращает число опубликованных.
// Ошибка публикации одного напоминания не прерывает остальные.
func (s *Service) PublishReminders(ctx context.Context) (int, error) {
	const op = "scheduler.PublishReminders"

	s.log.Info("searching for upcoming birthdays")
	reminders, err := s.source.Reminders(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(reminders) == 0 {
		s.log.Info("no upcoming birthdays found")
		return 0, nil
	}
	s.log.Info("found upcoming birthdays", slog.Int("count", len(reminders)))

	published := 0
	for _, r := range reminders {
		if err := s.publisher.Publish(rabbitmq.BirthdayRoutingKey, r); err != nil {
			s.metrics.RemindersPublished.WithLabelValues(metrics.ResultError).Inc()
			s.log.Error("failed to publish reminder", slog.String("contact_id", r.ContactID), sl.Err(err))
			continue
		}
		s.metrics.RemindersPublished.WithLabelValues(metrics.ResultOK).Inc()
		published++
	}
	return published, nil
}
