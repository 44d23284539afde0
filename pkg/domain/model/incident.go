package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

// Field flags a numeric column of an Incident
type Field uint8

const (
	FieldYear Field = 1 << iota
	FieldFinancialLoss
	FieldResolutionHours
)

// Incident is one row of the cybersecurity threats workbook
type Incident struct {
	Country           string
	Year              int
	AttackType        string
	TargetIndustry    string
	FinancialLoss     float64 // in million USD
	AffectedUsers     int
	AttackSource      string
	VulnerabilityType string
	DefenseMechanism  string
	ResolutionHours   float64

	// Missing marks numeric fields whose cell was blank. Their values are zero.
	Missing Field
}

// HasYear reports whether the row carries a year
func (i *Incident) HasYear() bool { return i.Missing&FieldYear == 0 }

// HasFinancialLoss reports whether the row carries a financial loss
func (i *Incident) HasFinancialLoss() bool { return i.Missing&FieldFinancialLoss == 0 }

// HasResolutionHours reports whether the row carries a resolution time
func (i *Incident) HasResolutionHours() bool { return i.Missing&FieldResolutionHours == 0 }

// Subset is a read-only view of incidents drawn from a Dataset.
// Elements point into the Dataset's records and must not be modified.
type Subset []*Incident

// Len returns the number of incidents in the subset
func (s Subset) Len() int {
	return len(s)
}

// Dataset is a loaded workbook. It is immutable after construction.
type Dataset struct {
	URL       types.DatasetURL
	Incidents []Incident
	LoadedAt  time.Time
}

// NewDataset creates a Dataset from parsed incidents
func NewDataset(url types.DatasetURL, incidents []Incident, loadedAt time.Time) *Dataset {
	return &Dataset{
		URL:       url,
		Incidents: incidents,
		LoadedAt:  loadedAt,
	}
}

// All returns a view over every incident in the dataset
func (d *Dataset) All() Subset {
	view := make(Subset, len(d.Incidents))
	for i := range d.Incidents {
		view[i] = &d.Incidents[i]
	}
	return view
}

// YearBounds returns the smallest and largest Year among rows that have one.
// ok is false when no row has a year.
func (d *Dataset) YearBounds() (minYear, maxYear int, ok bool) {
	for i := range d.Incidents {
		inc := &d.Incidents[i]
		if !inc.HasYear() {
			continue
		}
		if !ok {
			minYear, maxYear, ok = inc.Year, inc.Year, true
			continue
		}
		if inc.Year < minYear {
			minYear = inc.Year
		}
		if inc.Year > maxYear {
			maxYear = inc.Year
		}
	}
	return minYear, maxYear, ok
}

// Countries returns the distinct non-blank country names in ascending order
func (d *Dataset) Countries() []string {
	seen := make(map[string]bool)
	countries := make([]string, 0)
	for _, inc := range d.Incidents {
		if inc.Country != "" && !seen[inc.Country] {
			seen[inc.Country] = true
			countries = append(countries, inc.Country)
		}
	}
	sort.Strings(countries)
	return countries
}

// ModeCountry returns the most frequent country. Ties resolve to the
// lexicographically smallest name. Empty string when no row names a country.
func (d *Dataset) ModeCountry() string {
	counts := make(map[string]int)
	for _, inc := range d.Incidents {
		if inc.Country != "" {
			counts[inc.Country]++
		}
	}

	var mode string
	best := 0
	for country, n := range counts {
		if n > best || (n == best && country < mode) {
			mode = country
			best = n
		}
	}
	return mode
}

// FilterOptions describes the controls a dashboard client offers
type FilterOptions struct {
	MinYear        int      `json:"min_year"`
	MaxYear        int      `json:"max_year"`
	Countries      []string `json:"countries"`
	DefaultCountry string   `json:"default_country"`
	RowCount       int      `json:"row_count"`
}

// DefaultFilter returns the initial selection: full year range and the mode country
func (o *FilterOptions) DefaultFilter() Filter {
	f := Filter{
		MinYear: o.MinYear,
		MaxYear: o.MaxYear,
	}
	if o.DefaultCountry != "" {
		f.Countries = []string{o.DefaultCountry}
	}
	return f
}

// NewFilterOptions derives filter options from a dataset
func NewFilterOptions(d *Dataset) *FilterOptions {
	minYear, maxYear, _ := d.YearBounds()
	return &FilterOptions{
		MinYear:        minYear,
		MaxYear:        maxYear,
		Countries:      d.Countries(),
		DefaultCountry: d.ModeCountry(),
		RowCount:       len(d.Incidents),
	}
}
