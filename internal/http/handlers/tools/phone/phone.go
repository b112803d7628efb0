// Package phone реализует HTTP-обработчик нормализации украинских номеров телефона.
package phone

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	libphone "github.com/magabrotheeeer/personal-assistant/internal/lib/phone"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Handler обрабатывает запросы на нормализацию номера.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику нормализации номера.
type Service interface {
	NormalizePhone(raw string) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Нормализация номера телефона
// @Description Приводит номер к виду +380XXXXXXXXX.
// @Tags Tools
// @Accept  json
// @Produce  json
// @Param request body models.PhoneRequest true "Номер в произвольном формате"
// @Success 200 {object} response.Response "Нормализованный номер"
// @Failure 400 {object} response.ErrorResponse "Пустой номер или номер без цифр"
// @Router /tools/phone [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tools.phone"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	normalized, err := h.service.NormalizePhone(req.Phone)
	if err != nil {
		log.Error("failed to normalize phone", sl.Err(err))
		switch {
		case errors.Is(err, libphone.ErrEmptyInput), errors.Is(err, libphone.ErrNoDigits):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not normalize phone"))
		}
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"phone": normalized,
	}))
}
