package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/adithyavangapandu/moviesstore/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("repository: not found")

// Repository implements the storage interfaces for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// UpsertProfile creates or replaces the single profile row for a user.
// Last write wins; there is no history.
func (r *Repository) UpsertProfile(ctx context.Context, p models.Profile) error {
	sql := `
		INSERT INTO profiles (user_id, city, state, region, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			region = EXCLUDED.region,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude
	`

	_, err := r.db.Exec(ctx, sql, p.UserID, p.City, p.State, p.Region, p.Latitude, p.Longitude)
	if err != nil {
		return fmt.Errorf("repository: failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile returns the profile for a user, or ErrNotFound.
func (r *Repository) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	sql := `
		SELECT p.user_id, u.username, p.city, p.state, p.region, p.latitude, p.longitude
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`

	var p models.Profile
	err := r.db.QueryRow(ctx, sql, userID).Scan(
		&p.UserID,
		&p.Username,
		&p.City,
		&p.State,
		&p.Region,
		&p.Latitude,
		&p.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get profile: %w", err)
	}

	return &p, nil
}

// ListProfiles returns profiles matching the filter. Each present filter
// field is an equality predicate; absent fields impose no constraint.
func (r *Repository) ListProfiles(ctx context.Context, filter models.GeoFilter) ([]models.Profile, error) {
	sql := `
		SELECT p.user_id, u.username, p.city, p.state, p.region, p.latitude, p.longitude
		FROM profiles p
		JOIN users u ON u.id = p.user_id
	`

	var args []interface{}
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		clause := " AND "
		if len(args) == 1 {
			clause = " WHERE "
		}
		sql += clause + column + " = $" + strconv.Itoa(len(args))
	}
	add("p.region", filter.Region)
	add("p.state", filter.State)
	add("p.city", filter.City)
	sql += " ORDER BY p.user_id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		err := rows.Scan(
			&p.UserID,
			&p.Username,
			&p.City,
			&p.State,
			&p.Region,
			&p.Latitude,
			&p.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return profiles, nil
}

// ListPurchaseItems returns every order line item whose parent order belongs
// to one of the given users, joined with its movie name.
func (r *Repository) ListPurchaseItems(ctx context.Context, userIDs []int64) ([]models.PurchaseItem, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	sql := `
		SELECT i.order_id, i.movie_id, m.name, i.quantity
		FROM items i
		JOIN orders o ON o.id = i.order_id
		JOIN movies m ON m.id = i.movie_id
		WHERE o.user_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, sql, userIDs)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list purchase items: %w", err)
	}
	defer rows.Close()

	var items []models.PurchaseItem
	for rows.Next() {
		var it models.PurchaseItem
		if err := rows.Scan(&it.OrderID, &it.MovieID, &it.MovieName, &it.Quantity); err != nil {
			return nil, fmt.Errorf("repository: failed to scan purchase item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return items, nil
}
