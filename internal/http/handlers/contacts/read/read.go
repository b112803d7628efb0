// Package read реализует HTTP-обработчик получения контакта по ID.
package read

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
	"github.com/magabrotheeeer/personal-assistant/internal/models"
	"github.com/magabrotheeeer/personal-assistant/internal/storage/repository"
)

// Handler обрабатывает запросы на получение контакта по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения контакта.
type Service interface {
	Read(ctx context.Context, id string) (*models.Contact, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить контакт
// @Tags Contacts
// @Produce  json
// @Param id path string true "ID контакта (UUID)"
// @Success 200 {object} response.Response "Контакт"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Контакт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /contacts/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contacts.read"
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

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read contact", sl.Err(err))
		if errors.Is(err, repository.ErrContactNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("contact not found"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read contact"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"contact": res,
	}))
}
