// Package create реализует HTTP-обработчик добавления контакта в записную книжку.
//
// Handler принимает JSON с контактом, валидирует его, вызывает сервис,
// который нормализует телефон и сохраняет запись, и возвращает ID нового контакта.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/personal-assistant/internal/http/response"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/phone"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/validation"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
	"github.com/magabrotheeeer/personal-assistant/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание контактов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики контактов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания контакта.
type Service interface {
	Create(ctx context.Context, req models.DummyContact) (string, error)
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
// @Summary Добавить контакт
// @Description Сохраняет контакт с нормализованным номером телефона. Возвращает ID созданной записи.
// @Tags Contacts
// @Accept  json
// @Produce  json
// @Param request body models.DummyContact true "Данные контакта"
// @Success 201 {object} response.Response "Контакт создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Контакт с таким телефоном уже существует"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании контакта"
// @Router /contacts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contacts.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyContact
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

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create contact", sl.Err(err))
		switch {
		case errors.Is(err, repository.ErrContactExists):
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("contact with this phone already exists"))
		case errors.Is(err, phone.ErrEmptyInput), errors.Is(err, phone.ErrNoDigits):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid phone number"))
		case errors.Is(err, dates.ErrInvalidFormat):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("birthday must be in format YYYY.MM.DD"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create contact"))
		}
		return
	}

	log.Info("contact created", slog.String("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
