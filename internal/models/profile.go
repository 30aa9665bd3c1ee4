package models

// Profile represents a user's stored location. There is exactly one profile
// per user; region is always derived from state at write time.
type Profile struct {
	UserID    int64   `json:"user_id"`
	Username  string  `json:"username"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoFilter narrows the profile set. All fields are optional and compose
// conjunctively; an empty field imposes no constraint.
type GeoFilter struct {
	Region string `json:"region"`
	State  string `json:"state"`
	City   string `json:"city"`
}

// Marker is one map point for a matching profile. Not persisted.
type Marker struct {
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Username      string  `json:"username"`
	IsCurrentUser bool    `json:"is_current_user"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Region        string  `json:"region"`
}

// FilterOptions lists the distinct values present in a filtered profile set,
// used to drive dependent dropdowns.
type FilterOptions struct {
	Cities  []string `json:"cities"`
	States  []string `json:"states"`
	Regions []string `json:"regions"`
}
