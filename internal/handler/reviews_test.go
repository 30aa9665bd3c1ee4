package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adithyavangapandu/moviesstore/internal/models"
	"github.com/adithyavangapandu/moviesstore/internal/repository"
	"github.com/adithyavangapandu/moviesstore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewService is a mock implementation of the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, movieID, userID int64, comment string) (*models.Review, error) {
	args := m.Called(ctx, movieID, userID, comment)
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, reviewID, userID int64, comment string) error {
	args := m.Called(ctx, reviewID, userID, comment)
	return args.Error(0)
}

func (m *MockReviewService) Delete(ctx context.Context, reviewID, userID int64) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

func (m *MockReviewService) Report(ctx context.Context, reviewID, userID int64, reason string) error {
	args := m.Called(ctx, reviewID, userID, reason)
	return args.Error(0)
}

func reviewTestContext(t *testing.T, method, target, body, idParam string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(userIDHeader, "7")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: idParam}}
	return c, w
}

func TestReviewHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		param          string
		body           string
		mockReview     *models.Review
		mockError      error
		skipMock       bool
		expectedStatus int
	}{
		{
			name:           "valid review",
			param:          "10",
			body:           `{"comment": "great"}`,
			mockReview:     &models.Review{ID: 5, MovieID: 10, UserID: 7, Comment: "great"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty comment",
			param:          "10",
			body:           `{"comment": ""}`,
			mockError:      service.ErrEmptyComment,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid movie id",
			param:          "abc",
			body:           `{"comment": "great"}`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			param:          "10",
			body:           `not json`,
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			param:          "10",
			body:           `{"comment": "great"}`,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReviewService)
			handler := NewReviewHandler(mockSvc)
			if !tt.skipMock {
				mockSvc.On("Create", mock.Anything, int64(10), int64(7), mock.Anything).Return(tt.mockReview, tt.mockError)
			}

			c, w := reviewTestContext(t, http.MethodPost, "/api/movies/"+tt.param+"/reviews", tt.body, tt.param)

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.skipMock {
				mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}

func TestReviewHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{name: "author updates own review", expectedStatus: http.StatusNoContent},
		{name: "not the author", mockError: service.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "review gone", mockError: repository.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "empty comment", mockError: service.ErrEmptyComment, expectedStatus: http.StatusBadRequest},
		{name: "service error", mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReviewService)
			handler := NewReviewHandler(mockSvc)
			mockSvc.On("Update", mock.Anything, int64(5), int64(7), "new text").Return(tt.mockError)

			c, w := reviewTestContext(t, http.MethodPut, "/api/reviews/5", `{"comment": "new text"}`, "5")

			handler.Update(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		param          string
		mockError      error
		skipMock       bool
		expectedStatus int
	}{
		{name: "author deletes own review", param: "5", expectedStatus: http.StatusNoContent},
		{name: "not the author", param: "5", mockError: service.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "review gone", param: "5", mockError: repository.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "invalid id", param: "abc", skipMock: true, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReviewService)
			handler := NewReviewHandler(mockSvc)
			if !tt.skipMock {
				mockSvc.On("Delete", mock.Anything, int64(5), int64(7)).Return(tt.mockError)
			}

			c, w := reviewTestContext(t, http.MethodDelete, "/api/reviews/"+tt.param, "", tt.param)

			handler.Delete(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.skipMock {
				mockSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
			} else {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}

func TestReviewHandler_Report(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{name: "report hides the review", expectedStatus: http.StatusNoContent},
		{name: "own review", mockError: service.ErrOwnReview, expectedStatus: http.StatusForbidden},
		{name: "empty reason", mockError: service.ErrEmptyReason, expectedStatus: http.StatusBadRequest},
		{name: "review gone", mockError: repository.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "service error", mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReviewService)
			handler := NewReviewHandler(mockSvc)
			mockSvc.On("Report", mock.Anything, int64(5), int64(7), "spam").Return(tt.mockError)

			c, w := reviewTestContext(t, http.MethodPost, "/api/reviews/5/report", `{"reason": "spam"}`, "5")

			handler.Report(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}
