package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/personal-assistant/internal/migrations"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции проекта.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	root, err := filepath.Abs("../../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, filepath.Join(root, "migrations")))
	require.NoError(t, CheckDatabaseReady(ctx, storage))

	return storage
}

func newTestContact(name, birthday, phone string) models.Contact {
	return models.Contact{
		ID:       uuid.New().String(),
		Name:     name,
		Birthday: birthday,
		Phone:    phone,
	}
}

func TestStorage_ContactsLifecycle(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()

	alice := newTestContact("Alice", "1990.06.13", "+380501233234")
	alice.Email = "alice@example.com"
	bob := newTestContact("Bob", "1985.1.2", "+380671234567")

	id, err := storage.CreateContact(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, id)

	_, err = storage.CreateContact(ctx, bob)
	require.NoError(t, err)

	got, err := storage.ReadContact(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "1990.06.13", got.Birthday)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero())

	page, err := storage.ListContacts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Bob", page[0].Name)
	assert.Empty(t, page[0].Email)

	all, err := storage.ListAllContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, storage.RemoveContact(ctx, alice.ID))
	_, err = storage.ReadContact(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.ErrorIs(t, storage.RemoveContact(ctx, alice.ID), ErrContactNotFound)
}

func TestStorage_CreateContact_DuplicatePhone(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()

	_, err := storage.CreateContact(ctx, newTestContact("Alice", "1990.06.13", "+380501233234"))
	require.NoError(t, err)

	_, err = storage.CreateContact(ctx, newTestContact("Alice again", "1990.06.13", "+380501233234"))
	assert.ErrorIs(t, err, ErrContactExists)
}
