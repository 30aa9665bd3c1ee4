package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adithyavangapandu/moviesstore/internal/models"
)

var (
	// ErrForbidden means the acting user may not touch this review.
	ErrForbidden = errors.New("service: not allowed")
	// ErrEmptyComment rejects blank review text.
	ErrEmptyComment = errors.New("service: comment cannot be empty")
	// ErrEmptyReason rejects a report without a reason.
	ErrEmptyReason = errors.New("service: report reason cannot be empty")
	// ErrOwnReview rejects reporting one's own review.
	ErrOwnReview = errors.New("service: cannot report your own review")
)

// ReviewService handles review creation, editing, deletion and the
// report-a-review flow. Editing and deleting are author-only; reporting is
// open to everyone except the author and hides the review.
type ReviewService struct {
	repo ReviewRepository
	now  func() time.Time
}

// ReviewRepository interface for dependency injection
type ReviewRepository interface {
	GetReview(ctx context.Context, id int64) (*models.Review, error)
	CreateReview(ctx context.Context, rv *models.Review) error
	UpdateReviewComment(ctx context.Context, id int64, comment string) error
	DeleteReview(ctx context.Context, id int64) error
	HideReview(ctx context.Context, id int64, reason string) error
}

// NewReviewService creates a new review service
func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo, now: time.Now}
}

// Create stores a new review for a movie.
func (s *ReviewService) Create(ctx context.Context, movieID, userID int64, comment string) (*models.Review, error) {
	if comment == "" {
		return nil, ErrEmptyComment
	}

	review := &models.Review{
		MovieID: movieID,
		UserID:  userID,
		Comment: comment,
		Date:    s.now(),
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("service: failed to create review: %w", err)
	}
	return review, nil
}

// Update replaces the comment of the user's own review.
func (s *ReviewService) Update(ctx context.Context, reviewID, userID int64, comment string) error {
	if comment == "" {
		return ErrEmptyComment
	}

	review, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return ErrForbidden
	}

	return s.repo.UpdateReviewComment(ctx, reviewID, comment)
}

// Delete removes the user's own review.
func (s *ReviewService) Delete(ctx context.Context, reviewID, userID int64) error {
	review, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return ErrForbidden
	}

	return s.repo.DeleteReview(ctx, reviewID)
}

// Report hides someone else's review, recording the reporter's reason.
func (s *ReviewService) Report(ctx context.Context, reviewID, userID int64, reason string) error {
	if reason == "" {
		return ErrEmptyReason
	}

	review, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID == userID {
		return ErrOwnReview
	}

	return s.repo.HideReview(ctx, reviewID, reason)
}
