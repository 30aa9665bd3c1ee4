package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/adithyavangapandu/moviesstore/internal/models"
)

// TopMovies is the number of ranked movies returned by the popularity view.
const TopMovies = 5

// PopularityService computes the local popularity view: map markers, the
// dependent-dropdown options and the top purchased movies for a filtered
// profile population.
type PopularityService struct {
	repo PopularityRepository
}

// PopularityRepository interface for dependency injection
type PopularityRepository interface {
	ListProfiles(ctx context.Context, filter models.GeoFilter) ([]models.Profile, error)
	ListPurchaseItems(ctx context.Context, userIDs []int64) ([]models.PurchaseItem, error)
}

// PopularityResult is the combined payload of one popularity query.
type PopularityResult struct {
	Markers []models.Marker      `json:"markers"`
	Options models.FilterOptions `json:"options"`
	Movies  []models.MovieStat   `json:"movies"`
}

// NewPopularityService creates a new popularity service
func NewPopularityService(repo PopularityRepository) *PopularityService {
	return &PopularityService{repo: repo}
}

// Compute narrows the profile set by the filter, derives markers and option
// lists, and ranks movie purchases across the matched users. An empty match
// yields empty slices, never an error.
func (s *PopularityService) Compute(ctx context.Context, filter models.GeoFilter, requestingUserID int64) (*PopularityResult, error) {
	profiles, err := s.repo.ListProfiles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list profiles: %w", err)
	}

	result := &PopularityResult{
		Markers: []models.Marker{},
		Options: models.FilterOptions{
			Cities:  []string{},
			States:  []string{},
			Regions: []string{},
		},
		Movies: []models.MovieStat{},
	}

	userIDs := make([]int64, 0, len(profiles))
	seenCities := map[string]bool{}
	seenStates := map[string]bool{}
	seenRegions := map[string]bool{}

	for _, p := range profiles {
		result.Markers = append(result.Markers, models.Marker{
			Lat:           p.Latitude,
			Lon:           p.Longitude,
			Username:      p.Username,
			IsCurrentUser: p.UserID == requestingUserID,
			City:          p.City,
			State:         p.State,
			Region:        p.Region,
		})
		userIDs = append(userIDs, p.UserID)

		if !seenCities[p.City] {
			seenCities[p.City] = true
			result.Options.Cities = append(result.Options.Cities, p.City)
		}
		if !seenStates[p.State] {
			seenStates[p.State] = true
			result.Options.States = append(result.Options.States, p.State)
		}
		if !seenRegions[p.Region] {
			seenRegions[p.Region] = true
			result.Options.Regions = append(result.Options.Regions, p.Region)
		}
	}

	if len(userIDs) == 0 {
		return result, nil
	}

	items, err := s.repo.ListPurchaseItems(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list purchase items: %w", err)
	}

	result.Movies = rankMovies(items, TopMovies)
	return result, nil
}

// rankMovies groups line items by movie, summing quantities and counting
// distinct parent orders, then sorts and truncates to the top k.
func rankMovies(items []models.PurchaseItem, k int) []models.MovieStat {
	type group struct {
		stat   models.MovieStat
		orders map[int64]bool
	}

	groups := map[int64]*group{}
	for _, it := range items {
		g, ok := groups[it.MovieID]
		if !ok {
			g = &group{
				stat:   models.MovieStat{MovieID: it.MovieID, MovieName: it.MovieName},
				orders: map[int64]bool{},
			}
			groups[it.MovieID] = g
		}
		g.stat.TotalUnits += it.Quantity
		// An order listing the same movie twice still counts once.
		g.orders[it.OrderID] = true
	}

	stats := make([]models.MovieStat, 0, len(groups))
	for _, g := range groups {
		g.stat.NumOrders = int64(len(g.orders))
		stats = append(stats, g.stat)
	}

	sort.Slice(stats, func(i, j int) bool { return movieStatLess(stats[i], stats[j]) })

	if len(stats) > k {
		stats = stats[:k]
	}
	return stats
}

// movieStatLess is the ranking comparator: total units descending, then
// distinct orders descending, then movie name ascending.
func movieStatLess(a, b models.MovieStat) bool {
	if a.TotalUnits != b.TotalUnits {
		return a.TotalUnits > b.TotalUnits
	}
	if a.NumOrders != b.NumOrders {
		return a.NumOrders > b.NumOrders
	}
	return a.MovieName < b.MovieName
}
