package models

import "time"

// Movie is one catalog entry.
type Movie struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// Review is a user's comment on a movie. A reported review stays stored but
// is hidden from listings.
type Review struct {
	ID           int64     `json:"id"`
	MovieID      int64     `json:"movie_id"`
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
	IsHidden     bool      `json:"-"`
	ReportReason string    `json:"-"`
}

// PurchaseItem is one order line item joined with its movie name, the unit
// the popularity aggregation runs over.
type PurchaseItem struct {
	OrderID   int64
	MovieID   int64
	MovieName string
	Quantity  int64
}

// MovieStat is the per-movie aggregate over a filtered user population.
// NumOrders counts distinct orders, not line items.
type MovieStat struct {
	MovieID    int64  `json:"movie_id"`
	MovieName  string `json:"movie_name"`
	TotalUnits int64  `json:"total_units"`
	NumOrders  int64  `json:"num_orders"`
}
