// Package repository реализует хранилище записной книжки на основе PostgreSQL.
// Предоставляет методы создания, чтения, удаления и постраничного просмотра контактов.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	// ErrContactNotFound возвращается, если контакт с указанным id отсутствует.
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactExists возвращается при попытке сохранить уже известный номер телефона.
	ErrContactExists = errors.New("contact with this phone already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// NewWithDB оборачивает уже открытое соединение. Используется в тестах.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{DB: db}
}

// CheckDatabaseReady проверяет, что миграции применены и таблица contacts существует.
func CheckDatabaseReady(ctx context.Context, storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'contacts'
    )`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("storage.CheckDatabaseReady: %w", err)
	}
	if !exists {
		return errors.New("storage.CheckDatabaseReady: required table contacts is missing")
	}
	return nil
}

// Close закрывает соединение с базой данных.
func (s *Storage) Close() error {
	return s.DB.Close()
}
