// Package contacts содержит бизнес-логику записной книжки: сохранение контактов
// с нормализованным телефоном, кеширование и поиск ближайших дней рождения.
package contacts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/personal-assistant/internal/clock"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/birthday"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/phone"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

const (
	// DefaultLimit — размер страницы списка по умолчанию.
	DefaultLimit = 50
	// MaxLimit — наибольший размер страницы.
	MaxLimit = 500

	contactKeyPrefix  = "contact:"
	upcomingKeyPrefix = "birthdays:upcoming:"
	upcomingKeyLayout = "2006.01.02"
)

// Repository определяет методы для работы с контактами в хранилище.
type Repository interface {
	CreateContact(ctx context.Context, contact models.Contact) (string, error)
	ReadContact(ctx context.Context, id string) (*models.Contact, error)
	RemoveContact(ctx context.Context, id string) error
	ListContacts(ctx context.Context, limit, offset int) ([]*models.Contact, error)
	ListAllContacts(ctx context.Context) ([]*models.Contact, error)
}

// Cache описывает методы для кеширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Service реализует бизнес-логику записной книжки.
type Service struct {
	repo  Repository
	cache Cache
	clock clock.Clock
	ttl   time.Duration
	log   *slog.Logger
	newID func() string
}

// NewService создаёт Service. ttl — время жизни записей в кеше.
func NewService(repo Repository, cache Cache, clk clock.Clock, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		clock: clk,
		ttl:   ttl,
		log:   log,
		newID: uuid.NewString,
	}
}

// Create нормализует телефон, проверяет дату рождения и сохраняет контакт.
func (s *Service) Create(ctx context.Context, req models.DummyContact) (string, error) {
	const op = "contacts.Create"

	normalized, err := phone.Normalize(req.Phone)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err = dates.ParseDot(req.Birthday); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	contact := models.Contact{
		ID:        s.newID(),
		Name:      req.Name,
		Birthday:  req.Birthday,
		Phone:     normalized,
		Email:     req.Email,
		CreatedAt: s.clock.Now(),
	}

	id, err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new contact", slog.String("id", id))

	if err := s.cache.Set(ctx, contactKeyPrefix+id, contact, s.ttl); err != nil {
		s.log.Warn("failed to cache contact", slog.String("id", id), sl.Err(err))
	}
	s.invalidateUpcoming(ctx)

	return id, nil
}

// Read возвращает контакт по ID, используя кеш или репозиторий.
func (s *Service) Read(ctx context.Context, id string) (*models.Contact, error) {
	const op = "contacts.Read"

	key := contactKeyPrefix + id
	var cached models.Contact
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read contact from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	contact, err := s.repo.ReadContact(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, key, contact, s.ttl); err != nil {
		s.log.Warn("failed to cache contact", slog.String("key", key), sl.Err(err))
	}
	return contact, nil
}

// Remove удаляет контакт и инвалидирует кеш.
func (s *Service) Remove(ctx context.Context, id string) error {
	const op = "contacts.Remove"

	if err := s.repo.RemoveContact(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Invalidate(ctx, contactKeyPrefix+id); err != nil {
		s.log.Warn("failed to remove contact from cache", slog.String("id", id), sl.Err(err))
	}
	s.invalidateUpcoming(ctx)
	return nil
}

// List возвращает страницу контактов. Некорректные limit и offset заменяются значениями по умолчанию.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Contact, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.repo.ListContacts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("contacts.List: %w", err)
	}
	return entries, nil
}

// Upcoming возвращает поздравления для контактов, чей день рождения
// попадает в окно ближайших дней. Результат кешируется на текущую дату.
func (s *Service) Upcoming(ctx context.Context) ([]models.Congratulation, error) {
	const op = "contacts.Upcoming"

	today := s.clock.Now()
	key := upcomingKeyPrefix + today.Format(upcomingKeyLayout)

	var cached []models.Congratulation
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read upcoming birthdays from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return cached, nil
	}

	all, err := s.repo.ListAllContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := []models.Congratulation{}
	if len(all) > 0 {
		users := make([]models.User, 0, len(all))
		for _, c := range all {
			users = append(users, c.User())
		}
		res, err = birthday.Upcoming(users, today)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := s.cache.Set(ctx, key, res, s.ttl); err != nil {
		s.log.Warn("failed to cache upcoming birthdays", slog.String("key", key), sl.Err(err))
	}
	return res, nil
}

// Reminders возвращает напоминания для всех контактов в окне ближайших дней рождения.
// Контакты с некорректной датой пропускаются с предупреждением в логе.
func (s *Service) Reminders(ctx context.Context) ([]models.Reminder, error) {
	const op = "contacts.Reminders"

	all, err := s.repo.ListAllContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	today := s.clock.Now()
	res := make([]models.Reminder, 0)
	for _, c := range all {
		b, err := dates.ParseDot(c.Birthday)
		if err != nil {
			s.log.Warn("skipping contact with invalid birthday", slog.String("id", c.ID), sl.Err(err))
			continue
		}
		if !birthday.InWindow(b, today) {
			continue
		}
		res = append(res, models.Reminder{
			ContactID:          c.ID,
			Name:               c.Name,
			CongratulationDate: c.Birthday,
			Phone:              c.Phone,
			Email:              c.Email,
			DaysLeft:           dates.DaysBetween(today, b),
		})
	}
	return res, nil
}

func (s *Service) invalidateUpcoming(ctx context.Context) {
	if err := s.cache.InvalidatePrefix(ctx, upcomingKeyPrefix); err != nil {
		s.log.Warn("failed to invalidate upcoming birthdays", sl.Err(err))
	}
}
