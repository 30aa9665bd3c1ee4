package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adithyavangapandu/moviesstore/internal/models"

	"github.com/jackc/pgx/v5"
)

// likeEscaper neutralizes LIKE pattern metacharacters so a search term is
// always matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListMovies returns the catalog, optionally narrowed to names containing
// the search term (case-insensitive).
func (r *Repository) ListMovies(ctx context.Context, search string) ([]models.Movie, error) {
	sql := `
		SELECT id, name, price, description, image_url
		FROM movies
	`
	var args []interface{}
	if search != "" {
		sql += " WHERE name ILIKE '%' || $1 || '%'"
		args = append(args, likeEscaper.Replace(search))
	}
	sql += " ORDER BY name"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Description, &m.ImageURL); err != nil {
			return nil, fmt.Errorf("repository: failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return movies, nil
}

// GetMovie returns one catalog entry, or ErrNotFound.
func (r *Repository) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	sql := `
		SELECT id, name, price, description, image_url
		FROM movies
		WHERE id = $1
	`

	var m models.Movie
	err := r.db.QueryRow(ctx, sql, id).Scan(&m.ID, &m.Name, &m.Price, &m.Description, &m.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get movie: %w", err)
	}

	return &m, nil
}

// ListVisibleReviews returns a movie's reviews that have not been hidden by
// a report, newest first.
func (r *Repository) ListVisibleReviews(ctx context.Context, movieID int64) ([]models.Review, error) {
	sql := `
		SELECT rv.id, rv.movie_id, rv.user_id, u.username, rv.comment, rv.date
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.movie_id = $1 AND NOT rv.is_hidden
		ORDER BY rv.date DESC
	`

	rows, err := r.db.Query(ctx, sql, movieID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.MovieID, &rv.UserID, &rv.Username, &rv.Comment, &rv.Date); err != nil {
			return nil, fmt.Errorf("repository: failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return reviews, nil
}

// GetReview returns one review regardless of visibility, or ErrNotFound.
func (r *Repository) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	sql := `
		SELECT rv.id, rv.movie_id, rv.user_id, u.username, rv.comment, rv.date, rv.is_hidden, rv.report_reason
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.id = $1
	`

	var rv models.Review
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&rv.ID,
		&rv.MovieID,
		&rv.UserID,
		&rv.Username,
		&rv.Comment,
		&rv.Date,
		&rv.IsHidden,
		&rv.ReportReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get review: %w", err)
	}

	return &rv, nil
}

// CreateReview inserts a review and fills in its generated id.
func (r *Repository) CreateReview(ctx context.Context, rv *models.Review) error {
	sql := `
		INSERT INTO reviews (movie_id, user_id, comment, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql, rv.MovieID, rv.UserID, rv.Comment, rv.Date).Scan(&rv.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to create review: %w", err)
	}
	return nil
}

// UpdateReviewComment replaces the comment text of a review.
func (r *Repository) UpdateReviewComment(ctx context.Context, id int64, comment string) error {
	tag, err := r.db.Exec(ctx, `UPDATE reviews SET comment = $2 WHERE id = $1`, id, comment)
	if err != nil {
		return fmt.Errorf("repository: failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReview removes a review.
func (r *Repository) DeleteReview(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// HideReview marks a review hidden with the reporter's reason.
func (r *Repository) HideReview(ctx context.Context, id int64, reason string) error {
	sql := `UPDATE reviews SET is_hidden = TRUE, report_reason = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, id, reason)
	if err != nil {
		return fmt.Errorf("repository: failed to hide review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
