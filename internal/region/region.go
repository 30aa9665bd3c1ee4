// Package region classifies two-letter US state codes into one of seven
// fixed geographic regions used for coarse profile filtering.
package region

import "strings"

// names fixes the iteration order of the region table. State codes are
// unique across regions, so the order only matters for determinism.
var names = []string{
	"West",
	"Northwest",
	"Southwest",
	"Midwest",
	"Southeast",
	"Mid-Atlantic",
	"Northeast",
}

var states = map[string][]string{
	"West":         {"CA", "NV", "UT", "AK", "HI"},
	"Northwest":    {"WA", "OR", "ID", "MT", "WY"},
	"Southwest":    {"AZ", "NM", "TX", "OK", "CO"},
	"Midwest":      {"ND", "SD", "NE", "KS", "MN", "IA", "MO", "WI", "IL", "IN", "MI", "OH", "KY"},
	"Southeast":    {"AR", "LA", "MS", "AL", "FL", "GA", "SC", "NC", "TN"},
	"Mid-Atlantic": {"VA", "WV", "MD", "DE", "PA", "NJ", "NY"},
	"Northeast":    {"ME", "NH", "VT", "MA", "RI", "CT"},
}

// Classify returns the region owning the given state code, or "" when the
// code is unknown. Matching is case-insensitive and never fails.
func Classify(stateCode string) string {
	code := strings.ToUpper(stateCode)
	for _, name := range names {
		for _, s := range states[name] {
			if s == code {
				return name
			}
		}
	}
	return ""
}

// Names returns the region names in their fixed order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// States returns the state codes owned by a region, or nil for an unknown
// region name.
func States(regionName string) []string {
	codes, ok := states[regionName]
	if !ok {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
