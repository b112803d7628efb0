package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// CreateContact сохраняет новый контакт и возвращает его ID.
func (s *Storage) CreateContact(ctx context.Context, contact models.Contact) (string, error) {
	const op = "storage.CreateContact"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contacts (id, name, birthday, phone, email)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	var id string
	err := s.DB.QueryRowContext(ctx, query,
		contact.ID, contact.Name, contact.Birthday, contact.Phone, nullString(contact.Email),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", fmt.Errorf("%s: %w", op, ErrContactExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ReadContact возвращает контакт по ID.
func (s *Storage) ReadContact(ctx context.Context, id string) (*models.Contact, error) {
	const op = "storage.ReadContact"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, birthday, phone, email, created_at
			  FROM contacts
			  WHERE id = $1`
	c, err := scanContact(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// RemoveContact удаляет контакт по ID.
func (s *Storage) RemoveContact(ctx context.Context, id string) error {
	const op = "storage.RemoveContact"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrContactNotFound)
	}
	return nil
}

// ListContacts возвращает страницу контактов в порядке добавления.
func (s *Storage) ListContacts(ctx context.Context, limit, offset int) ([]*models.Contact, error) {
	const op = "storage.ListContacts"

	query := `SELECT id, name, birthday, phone, email, created_at
			  FROM contacts
			  ORDER BY created_at, id
			  LIMIT $1 OFFSET $2`
	return s.queryContacts(ctx, op, query, limit, offset)
}

// ListAllContacts возвращает все контакты. Используется для поиска ближайших дней рождения.
func (s *Storage) ListAllContacts(ctx context.Context) ([]*models.Contact, error) {
	const op = "storage.ListAllContacts"

	query := `SELECT id, name, birthday, phone, email, created_at
			  FROM contacts
			  ORDER BY created_at, id`
	return s.queryContacts(ctx, op, query)
}

func (s *Storage) queryContacts(ctx context.Context, op, query string, args ...any) ([]*models.Contact, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*models.Contact, error) {
	var c models.Contact
	var email sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Birthday, &c.Phone, &email, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Email = email.String
	return &c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
