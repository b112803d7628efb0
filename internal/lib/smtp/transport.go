package smtp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"github.com/magabrotheeeer/personal-assistant/internal/config"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
)

// ErrNoStartTLS возвращается, если сервер не поддерживает STARTTLS.
var ErrNoStartTLS = errors.New("smtp server does not support STARTTLS")

const dialTimeout = 10 * time.Second

// Transport реализует SMTP транспорт для отправки писем.
type Transport struct {
	cfg config.SMTP
	log *slog.Logger
}

// NewTransport создает новый экземпляр Transport.
func NewTransport(cfg config.SMTP, log *slog.Logger) *Transport {
	return &Transport{cfg: cfg, log: log}
}

// Dial устанавливает соединение с SMTP сервером, включает TLS и проходит авторизацию.
func (t *Transport) Dial() (Client, error) {
	const op = "smtp.Dial"

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(t.cfg.SMTPHost, t.cfg.SMTPPort), dialTimeout)
	if err != nil {
		t.log.Error("failed to dial SMTP server", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client, err := smtp.NewClient(conn, t.cfg.SMTPHost)
	if err != nil {
		t.log.Error("failed to create SMTP client", sl.Err(err))
		if closeErr := conn.Close(); closeErr != nil {
			t.log.Error("failed to close connection", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fail := func(err error) (Client, error) {
		if closeErr := client.Close(); closeErr != nil {
			t.log.Error("failed to close client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ok, _ := client.Extension("STARTTLS"); !ok {
		t.log.Error("SMTP server does not support STARTTLS")
		return fail(ErrNoStartTLS)
	}
	tlsConfig := &tls.Config{
		ServerName: t.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		t.log.Error("failed to start TLS", sl.Err(err))
		return fail(err)
	}

	if t.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", t.cfg.SMTPUser, t.cfg.SMTPPass, t.cfg.SMTPHost)
		if err = client.Auth(auth); err != nil {
			t.log.Error("smtp auth failed", sl.Err(err))
			return fail(err)
		}
	}

	return client, nil
}

// FromAddress возвращает имя пользователя SMTP, от которого отправляются письма.
func (t *Transport) FromAddress() string {
	return t.cfg.SMTPUser
}
