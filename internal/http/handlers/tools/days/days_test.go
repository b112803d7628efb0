package days

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/personal-assistant/internal/lib/dates"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/logger"
	"github.com/magabrotheeeer/personal-assistant/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) DaysFromToday(req models.DaysRequest) (int, error) {
	args := m.Called(req)
	return args.Int(0), args.Error(1)
}

func TestDaysHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный подсчёт",
			body: `{"date":"2025-10-6","today":"2025-10-11"}`,
			setupMock: func(m *MockService) {
				m.On("DaysFromToday", models.DaysRequest{Date: "2025-10-6", Today: "2025-10-11"}).Return(5, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"days":5}}`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"date":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "дата не строка",
			body:           `{"date":20251006}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "нет даты",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Date is a required field"}`,
		},
		{
			name: "неверный формат",
			body: `{"date":"2025-06-32"}`,
			setupMock: func(m *MockService) {
				m.On("DaysFromToday", mock.Anything).
					Return(0, fmt.Errorf("dates.DaysFromToday: %w", dates.ErrInvalidFormat)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"date must be in format YYYY-MM-DD"}`,
		},
		{
			name: "неверный today",
			body: `{"date":"2025-06-01","today":"yesterday"}`,
			setupMock: func(m *MockService) {
				m.On("DaysFromToday", mock.Anything).Return(0, dates.ErrInvalidArgument).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"today must be in format YYYY-MM-DD"}`,
		},
		{
			name: "внутренняя ошибка",
			body: `{"date":"2025-06-01"}`,
			setupMock: func(m *MockService) {
				m.On("DaysFromToday", mock.Anything).Return(0, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not count days"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/tools/days", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			New(logger.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
