package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Filter holds a dashboard selection given on the command line. Zero years
// and an empty country list mean "use the dataset default". NoCountries
// selects the empty country set instead.
type Filter struct {
	MinYear     int
	MaxYear     int
	Countries   []string
	NoCountries bool
}

// Flags returns CLI flags for Filter configuration
func (f *Filter) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "year-min",
			Usage:       "First year to include (default: earliest in dataset)",
			Category:    "Filter",
			Destination: &f.MinYear,
		},
		&cli.IntFlag{
			Name:        "year-max",
			Usage:       "Last year to include (default: latest in dataset)",
			Category:    "Filter",
			Destination: &f.MaxYear,
		},
		&cli.StringSliceFlag{
			Name:        "country",
			Usage:       "Country to include, repeatable (default: most frequent country)",
			Category:    "Filter",
			Destination: &f.Countries,
		},
		&cli.BoolFlag{
			Name:        "no-country",
			Usage:       "Select no countries, which renders empty charts",
			Category:    "Filter",
			Destination: &f.NoCountries,
		},
	}
}

// Resolve fills unset parts of the selection from the dataset defaults
func (f *Filter) Resolve(opts *model.FilterOptions) (model.Filter, error) {
	if f.MinYear < 0 || f.MaxYear < 0 {
		return model.Filter{}, goerr.New("year must not be negative",
			goerr.V("year_min", f.MinYear),
			goerr.V("year_max", f.MaxYear),
			goerr.T(model.ErrTagInvalidFilter))
	}

	if f.NoCountries && len(f.Countries) > 0 {
		return model.Filter{}, goerr.New("--country and --no-country are exclusive",
			goerr.V("countries", f.Countries),
			goerr.T(model.ErrTagInvalidFilter))
	}

	resolved := opts.DefaultFilter()
	if f.MinYear != 0 {
		resolved.MinYear = f.MinYear
	}
	if f.MaxYear != 0 {
		resolved.MaxYear = f.MaxYear
	}
	switch {
	case f.NoCountries:
		resolved.Countries = []string{}
	case len(f.Countries) > 0:
		resolved.Countries = f.Countries
	}
	return resolved, nil
}

// LogValue returns structured log value
func (f Filter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("year_min", f.MinYear),
		slog.Int("year_max", f.MaxYear),
		slog.Any("countries", f.Countries),
		slog.Bool("no_countries", f.NoCountries),
	)
}
