// Package list реализует HTTP-обработчик постраничного списка контактов.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Handler обрабатывает запросы на список контактов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка контактов.
// Некорректные limit и offset сервис заменяет значениями по умолчанию.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.Contact, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список контактов
// @Tags Contacts
// @Produce  json
// @Param limit query int false "Размер страницы (по умолчанию 50, максимум 500)"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response "Страница контактов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /contacts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contacts.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil {
		offset = 0
	}

	res, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list contacts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list"))
		return
	}
	if res == nil {
		res = []*models.Contact{}
	}

	log.Info("list contacts", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"contacts":   res,
	}))
}
