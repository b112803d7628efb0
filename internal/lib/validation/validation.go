// Package validation создаёт валидатор запросов с дополнительными тегами ассистента.
package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
)

const (
	// TagDotDate — тег для строк с датой в формате YYYY.MM.DD.
	TagDotDate = "dotdate"
	// TagSingleLine — тег для строк без управляющих символов (переводов строк, табуляции).
	TagSingleLine = "singleline"
)

// New возвращает validator.Validate с зарегистрированными тегами dotdate и singleline.
func New() *validator.Validate {
	v := validator.New()
	// Регистрация может упасть только на пустом имени тега или nil-функции.
	_ = v.RegisterValidation(TagDotDate, func(fl validator.FieldLevel) bool {
		_, err := dates.ParseDot(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(TagSingleLine, func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
	})
	return v
}
