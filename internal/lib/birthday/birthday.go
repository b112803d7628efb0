// Package birthday отбирает пользователей, чей день рождения попадает
// в ближайшие WindowDays дней, включая сегодняшний.
//
// Дата рождения сравнивается вместе с годом, без переноса на текущий год:
// в окно попадает только дата, совпадающая с календарным интервалом целиком.
package birthday

import (
	"fmt"
	"time"

	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// WindowDays — длина окна поиска в днях после сегодняшнего.
const WindowDays = 7

// Upcoming возвращает поздравления для пользователей, чей день рождения
// лежит в интервале [today, today+WindowDays]. Порядок пользователей сохраняется.
//
// Ошибки:
//   - dates.ErrInvalidArgument — пустой список, пустое имя или дата, не задан today;
//   - dates.ErrInvalidFormat — дата рождения не в формате YYYY.MM.DD.
func Upcoming(users []models.User, today time.Time) ([]models.Congratulation, error) {
	const op = "birthday.Upcoming"

	if len(users) == 0 {
		return nil, fmt.Errorf("%s: %w: users list is empty", op, dates.ErrInvalidArgument)
	}
	if today.IsZero() {
		return nil, fmt.Errorf("%s: %w: today is not set", op, dates.ErrInvalidArgument)
	}

	parsed := make([]time.Time, len(users))
	for i, u := range users {
		if u.Name == "" || u.Birthday == "" {
			return nil, fmt.Errorf("%s: %w: user #%d has no name or birthday", op, dates.ErrInvalidArgument, i)
		}
		b, err := dates.ParseDot(u.Birthday)
		if err != nil {
			return nil, fmt.Errorf("%s: user %q: %w", op, u.Name, err)
		}
		parsed[i] = b
	}

	res := make([]models.Congratulation, 0)
	for i, u := range users {
		if !InWindow(parsed[i], today) {
			continue
		}
		res = append(res, models.Congratulation{
			Name:               u.Name,
			CongratulationDate: u.Birthday,
		})
	}
	return res, nil
}

// InWindow сообщает, лежит ли дата b в интервале [today, today+WindowDays].
// Время суток у обеих дат игнорируется.
func InWindow(b, today time.Time) bool {
	start := dates.Midnight(today)
	end := start.AddDate(0, 0, WindowDays)
	d := dates.Midnight(b)
	return !d.Before(start) && !d.After(end)
}
