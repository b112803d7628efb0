// Package smtp отправляет письма через SMTP-сервер с обязательным STARTTLS.
package smtp

import "io"

// Client — часть *smtp.Client, которой достаточно для отправки одного письма.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Dialer открывает готовую к отправке SMTP-сессию.
type Dialer interface {
	Dial() (Client, error)
	// FromAddress — адрес отправителя для заголовка From и команды MAIL FROM.
	FromAddress() string
}
