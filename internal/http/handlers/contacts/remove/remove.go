// Package remove реализует HTTP-обработчик удаления контакта.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/storage/repository"
)

// Handler обрабатывает запросы на удаление контакта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления контакта.
type Service interface {
	Remove(ctx context.Context, id string) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить контакт
// @Tags Contacts
// @Produce  json
// @Param id path string true "ID контакта (UUID)"
// @Success 200 {object} response.Response "Контакт удалён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Контакт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /contacts/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contacts.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if err := uuid.Validate(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		log.Error("failed to remove contact", sl.Err(err))
		if errors.Is(err, repository.ErrContactNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("contact not found"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove contact"))
		return
	}

	log.Info("contact removed", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_id": id,
	}))
}
