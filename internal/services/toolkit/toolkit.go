// Package toolkit связывает утилиты ассистента (подсчёт дней, билеты, телефоны,
// дни рождения) с часами, метриками и логированием для HTTP-слоя.
package toolkit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/personal-assistant/internal/clock"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/birthday"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/metrics"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/phone"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/ticket"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// Service реализует бизнес-логику утилит.
type Service struct {
	clock   clock.Clock
	drawer  *ticket.Drawer
	metrics *metrics.Metrics
	log     *slog.Logger
}

// New создаёт Service.
func New(clk clock.Clock, drawer *ticket.Drawer, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		clock:   clk,
		drawer:  drawer,
		metrics: m,
		log:     log,
	}
}

// DaysFromToday считает дни от req.Date до req.Today или до текущей даты по часам сервиса.
func (s *Service) DaysFromToday(req models.DaysRequest) (int, error) {
	today, err := s.today(dates.DashLayout, req.Today)
	if err != nil {
		return 0, err
	}
	return dates.DaysFromToday(req.Date, today)
}

// DrawTicket разыгрывает билет. Нецелые или некорректные параметры дают пустой билет.
func (s *Service) DrawTicket(req models.TicketRequest) []int {
	numbers := []int{}
	if minV, maxV, qty, ok := ticketBounds(req); ok {
		numbers = s.drawer.Draw(minV, maxV, qty)
	}

	result := metrics.ResultOK
	if len(numbers) == 0 {
		result = metrics.ResultEmpty
	}
	s.metrics.TicketDraws.WithLabelValues(result).Inc()
	s.log.Debug("ticket drawn", slog.String("result", result), slog.Int("count", len(numbers)))

	return numbers
}

// NormalizePhone приводит номер к виду +380XXXXXXXXX.
func (s *Service) NormalizePhone(raw string) (string, error) {
	return phone.Normalize(raw)
}

// UpcomingBirthdays возвращает поздравления на ближайшие birthday.WindowDays дней.
func (s *Service) UpcomingBirthdays(req models.BirthdaysRequest) ([]models.Congratulation, error) {
	today, err := s.today(dates.DotLayout, req.Today)
	if err != nil {
		return nil, err
	}
	return birthday.Upcoming(req.Users, today)
}

// today разбирает явно переданную дату или берёт текущую по часам.
func (s *Service) today(layout, value string) (time.Time, error) {
	if value == "" {
		return s.clock.Now(), nil
	}
	t, err := dates.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("toolkit.today: %w: today %q is not a valid date", dates.ErrInvalidArgument, value)
	}
	return t, nil
}

func ticketBounds(req models.TicketRequest) (minV, maxV, qty int, ok bool) {
	values := make([]int, 0, 3)
	for _, n := range []json.Number{req.Min, req.Max, req.Quantity} {
		v, err := n.Int64()
		if err != nil {
			return 0, 0, 0, false
		}
		values = append(values, int(v))
	}
	return values[0], values[1], values[2], true
}
