// Package logger создаёт slog.Logger в зависимости от окружения.
package logger

import (
	"io"
	"log/slog"
	"os"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// New возвращает логгер, пишущий в stdout.
// Для local — текстовый вывод с уровнем debug, для dev — JSON с уровнем debug,
// для prod и неизвестных окружений — JSON с уровнем info.
func New(app, env string) *slog.Logger {
	return NewWithWriter(os.Stdout, app, env)
}

// NewWithWriter — то же, что New, но с произвольным приёмником вывода.
func NewWithWriter(w io.Writer, app, env string) *slog.Logger {
	var h slog.Handler
	switch env {
	case envLocal:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envDev:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return slog.New(h).With(
		slog.String("app", app),
		slog.String("env", env),
	)
}

// Discard возвращает логгер, который ничего не пишет. Удобен в тестах.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
