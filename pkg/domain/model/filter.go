package model

import (
	"log/slog"
)

// Filter is the user's current selection. The year range is inclusive on both ends.
type Filter struct {
	MinYear   int      `json:"min_year"`
	MaxYear   int      `json:"max_year"`
	Countries []string `json:"countries"`
}

// IsInverted reports whether MinYear is greater than MaxYear
func (f Filter) IsInverted() bool {
	return f.MinYear > f.MaxYear
}

// CountrySet returns Countries as a lookup set
func (f Filter) CountrySet() map[string]bool {
	set := make(map[string]bool, len(f.Countries))
	for _, c := range f.Countries {
		set[c] = true
	}
	return set
}

// LogValue returns structured log value
func (f Filter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("min_year", f.MinYear),
		slog.Int("max_year", f.MaxYear),
		slog.Any("countries", f.Countries),
	)
}
