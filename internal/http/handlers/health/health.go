// Package health реализует проверку живости сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
)

// Pinger проверяет доступность зависимости.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler отвечает на GET /health.
type Handler struct {
	log *slog.Logger
	db  Pinger
}

// New создает Handler. Если db равен nil, проверяется только сам процесс.
func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Tags Health
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.ErrorResponse "База данных недоступна"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.log.Error("health check failed", sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("database unavailable"))
			return
		}
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "ok",
	}))
}
