package service

import (
	"context"
	"fmt"

	"github.com/adithyavangapandu/moviesstore/internal/models"
)

// MovieService serves the catalog: listing with optional name search and
// detail with visible reviews.
type MovieService struct {
	repo MovieRepository
}

// MovieRepository interface for dependency injection
type MovieRepository interface {
	ListMovies(ctx context.Context, search string) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)
	ListVisibleReviews(ctx context.Context, movieID int64) ([]models.Review, error)
}

// MovieDetails is one movie plus its visible reviews.
type MovieDetails struct {
	Movie   models.Movie    `json:"movie"`
	Reviews []models.Review `json:"reviews"`
}

// NewMovieService creates a new movie service
func NewMovieService(repo MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

// List returns the catalog, narrowed by a search term when one is given.
func (s *MovieService) List(ctx context.Context, search string) ([]models.Movie, error) {
	movies, err := s.repo.ListMovies(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list movies: %w", err)
	}
	return movies, nil
}

// Get returns one movie together with its non-hidden reviews.
func (s *MovieService) Get(ctx context.Context, id int64) (*MovieDetails, error) {
	movie, err := s.repo.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListVisibleReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return &MovieDetails{Movie: *movie, Reviews: reviews}, nil
}
