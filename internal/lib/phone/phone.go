// Package phone приводит украинские номера телефонов к виду +380XXXXXXXXX.
package phone

import (
	"errors"
	"strings"
)

// CountryCode — код страны в каноническом виде.
const CountryCode = "+380"

var (
	// ErrEmptyInput возвращается для пустой строки или строки только из пробелов.
	ErrEmptyInput = errors.New("phone number is empty")
	// ErrNoDigits возвращается, если в строке нет ни одной цифры.
	ErrNoDigits = errors.New("phone number contains no digits")
)

// Normalize оставляет в номере только цифры и добавляет префикс +380.
// Ведущие 380 или местный ноль отбрасываются один раз.
// Длина номера не проверяется: некорректный номер только переформатируется.
func Normalize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyInput
	}

	digits := Digits(raw)
	if digits == "" {
		return "", ErrNoDigits
	}

	countryDigits := strings.TrimPrefix(CountryCode, "+")
	switch {
	case strings.HasPrefix(digits, countryDigits):
		digits = strings.TrimPrefix(digits, countryDigits)
	case strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}

	return CountryCode + digits, nil
}

// Digits возвращает все ASCII-цифры строки в исходном порядке.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
