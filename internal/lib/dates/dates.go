// Package dates содержит разбор строковых дат и подсчёт разницы в календарных днях.
// Время суток не учитывается: сравниваются только даты.
package dates

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DashLayout — формат YYYY-MM-DD. Месяц и день допускаются одной или двумя цифрами.
	DashLayout = "2006-1-2"
	// DotLayout — формат YYYY.MM.DD, в котором хранятся дни рождения.
	DotLayout = "2006.1.2"
)

var (
	// ErrInvalidFormat возвращается, если строка не является корректной датой в нужном формате.
	ErrInvalidFormat = errors.New("invalid date format")
	// ErrInvalidArgument возвращается для некорректной опорной даты.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Parse разбирает дату по layout и возвращает полночь этой даты в UTC.
func Parse(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	return t, nil
}

// ParseDash разбирает дату в формате YYYY-MM-DD.
func ParseDash(value string) (time.Time, error) {
	return Parse(DashLayout, value)
}

// ParseDot разбирает дату в формате YYYY.MM.DD.
func ParseDot(value string) (time.Time, error) {
	return Parse(DotLayout, value)
}

// Midnight отбрасывает время суток, сохраняя календарную дату t в её часовом поясе.
// Результат всегда в UTC, чтобы разница между датами не зависела от перехода на летнее время.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween возвращает количество календарных дней от from до to.
// Считается через Unix-секунды: time.Duration ограничен примерно 292 годами.
func DaysBetween(from, to time.Time) int {
	return int((Midnight(to).Unix() - Midnight(from).Unix()) / secondsPerDay)
}

// DaysFromToday считает, сколько дней прошло от даты dateStr (YYYY-MM-DD) до today.
// Положительное значение — дата в прошлом, отрицательное — в будущем, ноль — сегодня.
func DaysFromToday(dateStr string, today time.Time) (int, error) {
	const op = "dates.DaysFromToday"

	if today.IsZero() {
		return 0, fmt.Errorf("%s: %w: today is not set", op, ErrInvalidArgument)
	}

	date, err := ParseDash(dateStr)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return DaysBetween(date, today), nil
}
