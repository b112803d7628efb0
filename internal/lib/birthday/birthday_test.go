package birthday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

func TestUpcoming_SingleUser(t *testing.T) {
	today := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	got, err := Upcoming([]models.User{{Name: "Alice", Birthday: "2025.06.13"}}, today)
	require.NoError(t, err)
	assert.Equal(t, []models.Congratulation{{Name: "Alice", CongratulationDate: "2025.06.13"}}, got)
}

func TestUpcoming_WindowBounds(t *testing.T) {
	today := time.Date(2025, 6, 11, 15, 45, 0, 0, time.UTC)

	users := []models.User{
		{Name: "yesterday", Birthday: "2025.06.10"},
		{Name: "today", Birthday: "2025.06.11"},
		{Name: "last day", Birthday: "2025.06.18"},
		{Name: "too late", Birthday: "2025.06.19"},
		{Name: "other year", Birthday: "1990.06.12"},
		{Name: "short form", Birthday: "2025.6.15"},
	}

	got, err := Upcoming(users, today)
	require.NoError(t, err)
	assert.Equal(t, []models.Congratulation{
		{Name: "today", CongratulationDate: "2025.06.11"},
		{Name: "last day", CongratulationDate: "2025.06.18"},
		{Name: "short form", CongratulationDate: "2025.6.15"},
	}, got)
}

func TestUpcoming_YearBoundary(t *testing.T) {
	today := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)

	got, err := Upcoming([]models.User{{Name: "Bob", Birthday: "2026.01.02"}}, today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)
}

func TestUpcoming_NoneInWindow(t *testing.T) {
	today := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	got, err := Upcoming([]models.User{{Name: "Alice", Birthday: "2025.07.13"}}, today)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpcoming_Errors(t *testing.T) {
	today := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		users   []models.User
		today   time.Time
		wantErr error
	}{
		{
			name:    "empty list",
			users:   []models.User{},
			today:   today,
			wantErr: dates.ErrInvalidArgument,
		},
		{
			name:    "nil list",
			users:   nil,
			today:   today,
			wantErr: dates.ErrInvalidArgument,
		},
		{
			name:    "missing name",
			users:   []models.User{{Birthday: "2025.06.13"}},
			today:   today,
			wantErr: dates.ErrInvalidArgument,
		},
		{
			name:    "missing birthday",
			users:   []models.User{{Name: "Alice"}},
			today:   today,
			wantErr: dates.ErrInvalidArgument,
		},
		{
			name:    "zero today",
			users:   []models.User{{Name: "Alice", Birthday: "2025.06.13"}},
			today:   time.Time{},
			wantErr: dates.ErrInvalidArgument,
		},
		{
			name:    "dashed birthday",
			users:   []models.User{{Name: "Alice", Birthday: "2025-06-13"}},
			today:   today,
			wantErr: dates.ErrInvalidFormat,
		},
		{
			name: "invalid entry after a valid one",
			users: []models.User{
				{Name: "Alice", Birthday: "2025.06.13"},
				{Name: "Bob", Birthday: "2025.13.01"},
			},
			today:   today,
			wantErr: dates.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Upcoming(tt.users, tt.today)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestInWindow(t *testing.T) {
	today := time.Date(2025, 6, 11, 23, 0, 0, 0, time.UTC)

	assert.True(t, InWindow(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), today))
	assert.True(t, InWindow(time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC), today))
	assert.False(t, InWindow(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), today))
	assert.False(t, InWindow(time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), today))
}
