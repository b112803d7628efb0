package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

var contactColumns = []string{"id", "name", "birthday", "phone", "email", "created_at"}

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewWithDB(db), mock
}

func TestStorage_CreateContact(t *testing.T) {
	contact := models.Contact{
		ID:       "0b6c2a4e-7f1e-4d8a-9d2e-1f6e5c4b3a21",
		Name:     "Alice",
		Birthday: "1990.06.13",
		Phone:    "+380501233234",
	}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
					WithArgs(contact.ID, contact.Name, contact.Birthday, contact.Phone, sql.NullString{}).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(contact.ID))
			},
			wantID: contact.ID,
		},
		{
			name: "duplicate phone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: ErrContactExists,
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, mock := newMockStorage(t)
			tt.setup(mock)

			id, err := storage.CreateContact(context.Background(), contact)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Contains(t, err.Error(), "storage.CreateContact")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStorage_CreateContact_DuplicateIsSentinel(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := storage.CreateContact(context.Background(), models.Contact{ID: "x"})
	assert.ErrorIs(t, err, ErrContactExists)
}

func TestStorage_CreateContact_CancelledContext(t *testing.T) {
	storage, mock := newMockStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.CreateContact(ctx, models.Contact{ID: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_ReadContact(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM contacts")).
			WithArgs("id-1").
			WillReturnRows(sqlmock.NewRows(contactColumns).
				AddRow("id-1", "Alice", "1990.06.13", "+380501233234", "alice@example.com", createdAt))

		got, err := storage.ReadContact(context.Background(), "id-1")
		require.NoError(t, err)
		assert.Equal(t, &models.Contact{
			ID:        "id-1",
			Name:      "Alice",
			Birthday:  "1990.06.13",
			Phone:     "+380501233234",
			Email:     "alice@example.com",
			CreatedAt: createdAt,
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null email", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM contacts")).
			WithArgs("id-2").
			WillReturnRows(sqlmock.NewRows(contactColumns).
				AddRow("id-2", "Bob", "1985.01.02", "+380671234567", nil, createdAt))

		got, err := storage.ReadContact(context.Background(), "id-2")
		require.NoError(t, err)
		assert.Empty(t, got.Email)
	})

	t.Run("not found", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM contacts")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := storage.ReadContact(context.Background(), "missing")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrContactNotFound)
	})
}

func TestStorage_RemoveContact(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts")).
			WithArgs("id-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, storage.RemoveContact(context.Background(), "id-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts")).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := storage.RemoveContact(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrContactNotFound)
	})
}

func TestStorage_ListContacts(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("page", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
			WithArgs(2, 0).
			WillReturnRows(sqlmock.NewRows(contactColumns).
				AddRow("id-1", "Alice", "1990.06.13", "+380501233234", nil, createdAt).
				AddRow("id-2", "Bob", "1985.01.02", "+380671234567", "bob@example.com", createdAt))

		got, err := storage.ListContacts(context.Background(), 2, 0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].Name)
		assert.Equal(t, "bob@example.com", got[1].Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM contacts")).
			WillReturnRows(sqlmock.NewRows(contactColumns))

		got, err := storage.ListAllContacts(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("scan error", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM contacts")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-1"))

		_, err := storage.ListAllContacts(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.ListAllContacts")
	})
}

func TestCheckDatabaseReady(t *testing.T) {
	t.Run("table exists", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("information_schema.tables")).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		assert.NoError(t, CheckDatabaseReady(context.Background(), storage))
	})

	t.Run("table missing", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery(regexp.QuoteMeta("information_schema.tables")).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := CheckDatabaseReady(context.Background(), storage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contacts is missing")
	})
}
