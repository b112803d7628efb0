// Package upcoming реализует HTTP-обработчик ближайших дней рождения среди сохранённых контактов.
package upcoming

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Handler обрабатывает запросы на ближайшие дни рождения контактов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику поиска дней рождения среди контактов.
type Service interface {
	Upcoming(ctx context.Context) ([]models.Congratulation, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Ближайшие дни рождения контактов
// @Description Контакты, чей день рождения попадает в ближайшие 7 дней, включая сегодня.
// @Tags Contacts
// @Produce  json
// @Success 200 {object} response.Response "Список поздравлений"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /contacts/birthdays/upcoming [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contacts.upcoming"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Upcoming(r.Context())
	if err != nil {
		log.Error("failed to find upcoming birthdays", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not find upcoming birthdays"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"congratulations": res,
	}))
}
