// Package sl содержит вспомогательные функции для логгера slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
// Для nil-ошибки значение пустое, чтобы логирование не паниковало.
//
// Пример:
//
//	log.Error("failed to publish reminder", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Op возвращает slog.Attr с ключом "op" — меткой операции, как в fmt.Errorf("%s: %w", op, err).
func Op(op string) slog.Attr {
	return slog.String("op", op)
}
