package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adithyavangapandu/moviesstore/internal/geocoder"
	"github.com/adithyavangapandu/moviesstore/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Save(ctx context.Context, userID int64, lat, lon float64) (*models.Profile, error) {
	args := m.Called(ctx, userID, lat, lon)
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*models.Profile), args.Error(1)
}

func TestProfileHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockProfile    *models.Profile
		mockError      error
		skipMock       bool
		expectedStatus int
	}{
		{
			name: "valid save",
			body: `{"lat": 33.749, "lon": -84.388}`,
			mockProfile: &models.Profile{
				UserID: 7, City: "Atlanta", State: "GA", Region: "Southeast",
				Latitude: 33.749, Longitude: -84.388,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing coordinates",
			body:           `{"lat": 33.749}`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `not json`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "coordinate outside the US",
			body:           `{"lat": 33.749, "lon": -84.388}`,
			mockError:      geocoder.ErrOutsideUS,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "no geocoding result",
			body:           `{"lat": 33.749, "lon": -84.388}`,
			mockError:      geocoder.ErrNoResult,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "incomplete geocoding result",
			body:           `{"lat": 33.749, "lon": -84.388}`,
			mockError:      geocoder.ErrIncompleteResult,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "upstream failure",
			body:           `{"lat": 33.749, "lon": -84.388}`,
			mockError:      geocoder.ErrUpstream,
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "missing credential",
			body:           `{"lat": 33.749, "lon": -84.388}`,
			mockError:      geocoder.ErrMissingAPIKey,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockProfileService)
			handler := NewProfileHandler(mockSvc)
			if !tt.skipMock {
				mockSvc.On("Save", mock.Anything, int64(7), 33.749, -84.388).Return(tt.mockProfile, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(userIDHeader, "7")
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Save(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.skipMock {
				mockSvc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}
