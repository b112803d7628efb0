// Package birthdays реализует HTTP-обработчик поиска ближайших дней рождения
// в переданном списке пользователей.
package birthdays

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Handler обрабатывает запросы на поиск ближайших дней рождения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику поиска дней рождения.
type Service interface {
	UpcomingBirthdays(req models.BirthdaysRequest) ([]models.Congratulation, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Ближайшие дни рождения
// @Description Возвращает пользователей, чей день рождения попадает в ближайшие 7 дней, включая сегодня.
// @Tags Tools
// @Accept  json
// @Produce  json
// @Param request body models.BirthdaysRequest true "Пользователи и необязательный today в формате YYYY.MM.DD"
// @Success 200 {object} response.Response "Список поздравлений"
// @Failure 400 {object} response.ErrorResponse "Некорректный список или дата"
// @Router /tools/birthdays [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tools.birthdays"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.BirthdaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	res, err := h.service.UpcomingBirthdays(req)
	if err != nil {
		log.Error("failed to find upcoming birthdays", sl.Err(err))
		switch {
		case errors.Is(err, dates.ErrInvalidFormat):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("birthday must be in format YYYY.MM.DD"))
		case errors.Is(err, dates.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("users must be a non-empty list with name and birthday"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not find upcoming birthdays"))
		}
		return
	}

	log.Debug("upcoming birthdays found", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"congratulations": res,
	}))
}
