// Package days реализует HTTP-обработчик подсчёта дней от даты до сегодняшнего дня.
package days

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/validation"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Handler обрабатывает запросы на подсчёт дней.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает бизнес-логику подсчёта дней.
type Service interface {
	DaysFromToday(req models.DaysRequest) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Дни от даты до сегодня
// @Description Положительное значение — дата в прошлом, отрицательное — в будущем. Формат даты YYYY-MM-DD.
// @Tags Tools
// @Accept  json
// @Produce  json
// @Param request body models.DaysRequest true "Дата и необязательный today"
// @Success 200 {object} response.Response "Количество дней"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или дата"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /tools/days [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tools.days"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	days, err := h.service.DaysFromToday(req)
	if err != nil {
		log.Error("failed to count days", sl.Err(err))
		switch {
		case errors.Is(err, dates.ErrInvalidFormat):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("date must be in format YYYY-MM-DD"))
		case errors.Is(err, dates.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("today must be in format YYYY-MM-DD"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not count days"))
		}
		return
	}

	log.Debug("days counted", slog.Int("days", days))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"days": days,
	}))
}
