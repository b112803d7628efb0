// Package ticket реализует HTTP-обработчик розыгрыша лотерейного билета.
//
// Некорректные параметры не считаются ошибкой запроса: в ответе возвращается пустой билет.
package ticket

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Handler обрабатывает запросы на розыгрыш билета.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику розыгрыша.
type Service interface {
	DrawTicket(req models.TicketRequest) []int
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Розыгрыш билета
// @Description Возвращает quantity уникальных чисел из [min, max] по возрастанию. При некорректных параметрах список пуст.
// @Tags Tools
// @Accept  json
// @Produce  json
// @Param request body models.TicketRequest true "Границы и количество чисел"
// @Success 200 {object} response.Response "Отсортированные числа билета"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Router /tools/ticket [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tools.ticket"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var body map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	numbers := h.service.DrawTicket(models.TicketRequest{
		Min:      number(body["min"]),
		Max:      number(body["max"]),
		Quantity: number(body["quantity"]),
	})

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"numbers": numbers,
	}))
}

// number оставляет только числовые JSON-литералы; строки и прочие типы дают пустое значение.
func number(v any) json.Number {
	n, _ := v.(json.Number)
	return n
}
