package list

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/personal-assistant/internal/lib/logger"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, limit, offset int) ([]*models.Contact, error) {
	args := m.Called(ctx, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]*models.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "страница с параметрами",
			url:  "/contacts?limit=1&offset=2",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 1, 2).Return([]*models.Contact{
					{ID: "c-1", Name: "Alice", Birthday: "1990.06.13", Phone: "+380503451234", CreatedAt: created},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"list_count":1,"contacts":[{"id":"c-1","name":"Alice",` +
				`"birthday":"1990.06.13","phone":"+380503451234","created_at":"2025-06-01T00:00:00Z"}]}}`,
		},
		{
			name: "некорректные параметры передаются как нули",
			url:  "/contacts?limit=abc&offset=-",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 0, 0).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"list_count":0,"contacts":[]}}`,
		},
		{
			name: "ошибка сервиса",
			url:  "/contacts",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 0, 0).Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			New(logger.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
