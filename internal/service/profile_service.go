package service

import (
	"context"
	"fmt"

	"github.com/adithyavangapandu/moviesstore/internal/geocoder"
	"github.com/adithyavangapandu/moviesstore/internal/models"
	"github.com/adithyavangapandu/moviesstore/internal/region"
)

// ProfileService validates a submitted coordinate against the reverse
// geocoder and upserts the user's profile with the canonical place. Any
// client-submitted city or state text is discarded; only the coordinate is
// trusted.
type ProfileService struct {
	repo     ProfileRepository
	geocoder geocoder.ReverseGeocoder
}

// ProfileRepository interface for dependency injection
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, p models.Profile) error
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// NewProfileService creates a new profile service
func NewProfileService(repo ProfileRepository, rg geocoder.ReverseGeocoder) *ProfileService {
	return &ProfileService{repo: repo, geocoder: rg}
}

// Save reverse-geocodes the coordinate, validates the result and stores the
// profile. Nothing is written when validation fails.
func (s *ProfileService) Save(ctx context.Context, userID int64, lat, lon float64) (*models.Profile, error) {
	results, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	place, err := geocoder.Validate(results)
	if err != nil {
		return nil, err
	}

	profile := models.Profile{
		UserID:    userID,
		City:      place.City,
		State:     place.State,
		Region:    region.Classify(place.State),
		Latitude:  lat,
		Longitude: lon,
	}

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("service: failed to save profile: %w", err)
	}

	return &profile, nil
}

// Get returns the user's stored profile.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
