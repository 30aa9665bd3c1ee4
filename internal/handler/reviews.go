package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/adithyavangapandu/moviesstore/internal/models"
	"github.com/adithyavangapandu/moviesstore/internal/repository"
	"github.com/adithyavangapandu/moviesstore/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles review and report requests
type ReviewHandler struct {
	service ReviewService
}

// Service interface for dependency injection
type ReviewService interface {
	Create(ctx context.Context, movieID, userID int64, comment string) (*models.Review, error)
	Update(ctx context.Context, reviewID, userID int64, comment string) error
	Delete(ctx context.Context, reviewID, userID int64) error
	Report(ctx context.Context, reviewID, userID int64, reason string) error
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

type reviewRequest struct {
	Comment string `json:"comment"`
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// Create handles POST /api/movies/:id/reviews requests.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _ := currentUserID(c)

	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.service.Create(c.Request.Context(), movieID, userID, req.Comment)
	if err != nil {
		writeReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// Update handles PUT /api/reviews/:id requests.
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, _ := currentUserID(c)

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Update(c.Request.Context(), reviewID, userID, req.Comment); err != nil {
		writeReviewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/reviews/:id requests.
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, _ := currentUserID(c)

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), reviewID, userID); err != nil {
		writeReviewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Report handles POST /api/reviews/:id/report requests.
func (h *ReviewHandler) Report(c *gin.Context) {
	userID, _ := currentUserID(c)

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Report(c.Request.Context(), reviewID, userID, req.Reason); err != nil {
		writeReviewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrOwnReview):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	case errors.Is(err, service.ErrEmptyComment), errors.Is(err, service.ErrEmptyReason):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
