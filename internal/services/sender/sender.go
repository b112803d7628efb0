// Package sender превращает напоминания из брокера в письма.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"unicode"

	"github.com/magabrotheeeer/personal-assistant/internal/lib/metrics"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/smtp"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Service отправляет письма с напоминаниями о днях рождения.
type Service struct {
	transport smtp.Dialer
	recipient string
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// New создает новый экземпляр Service. recipient — адрес, на который уходят все напоминания.
func New(transport smtp.Dialer, recipient string, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		recipient: recipient,
		metrics:   m,
		log:       log,
	}
}

// SendBirthdayReminder разбирает models.Reminder из body и отправляет письмо.
// Нечитаемое сообщение отбрасывается без ошибки, чтобы не возвращаться в очередь бесконечно.
func (s *Service) SendBirthdayReminder(body []byte) error {
	const op = "sender.SendBirthdayReminder"

	var reminder models.Reminder
	if err := json.Unmarshal(body, &reminder); err != nil {
		s.metrics.RemindersSent.WithLabelValues(metrics.ResultInvalid).Inc()
		s.log.Error("failed to unmarshal reminder, dropping", sl.Err(err))
		return nil
	}

	subject, text := renderReminder(reminder)
	if err := s.sendEmail([]string{s.recipient}, subject, text); err != nil {
		s.metrics.RemindersSent.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.RemindersSent.WithLabelValues(metrics.ResultOK).Inc()
	return nil
}

func renderReminder(r models.Reminder) (subject, text string) {
	r.Name = singleLine(r.Name)
	r.CongratulationDate = singleLine(r.CongratulationDate)
	r.Phone = singleLine(r.Phone)
	r.Email = singleLine(r.Email)

	var when string
	switch r.DaysLeft {
	case 0:
		when = "сегодня"
	case 1:
		when = "завтра"
	default:
		when = fmt.Sprintf("через %d дн.", r.DaysLeft)
	}

	subject = fmt.Sprintf("Напоминание: день рождения %s %s", r.Name, when)

	lines := []string{
		"Здравствуйте!",
		"",
		fmt.Sprintf("%s празднует день рождения %s (%s).", r.Name, when, r.CongratulationDate),
		"Телефон: " + r.Phone,
	}
	if r.Email != "" {
		lines = append(lines, "Email: "+r.Email)
	}
	lines = append(lines, "", "Не забудьте поздравить!")

	return subject, strings.Join(lines, "\r\n")
}

// singleLine заменяет управляющие символы пробелами, чтобы значение
// не могло разорвать заголовок или строку письма.
func singleLine(v string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, v)
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	from := s.transport.FromAddress()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + strings.Join(to, ";"),
		"Subject: " + mime.QEncoding.Encode("utf-8", singleLine(subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Dial()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			s.log.Debug("failed to close SMTP client", sl.Err(err))
		}
	}()

	if err := client.Mail(from); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}
