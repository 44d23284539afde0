package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
	"github.com/secmon-lab/threatlens/pkg/repository"
	"github.com/secmon-lab/threatlens/pkg/service/dataset"
	"github.com/urfave/cli/v3"
)

// Dataset holds dataset source and cache configuration
type Dataset struct {
	URL          string
	Sheet        string
	ColumnsFile  string
	CacheTTL     time.Duration
	CacheSize    int
	FetchTimeout time.Duration
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset-url",
			Usage:       "URL of the incidents workbook (.xlsx)",
			Category:    "Dataset",
			Value:       types.DefaultDatasetURL.String(),
			Sources:     cli.EnvVars("THREATLENS_DATASET_URL"),
			Destination: &d.URL,
		},
		&cli.StringFlag{
			Name:        "dataset-sheet",
			Usage:       "Sheet name to read (default: first sheet)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("THREATLENS_DATASET_SHEET"),
			Destination: &d.Sheet,
		},
		&cli.StringFlag{
			Name:        "dataset-columns",
			Usage:       "YAML file mapping record fields to header names",
			Category:    "Dataset",
			Sources:     cli.EnvVars("THREATLENS_DATASET_COLUMNS"),
			Destination: &d.ColumnsFile,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "How long a loaded dataset is reused",
			Category:    "Dataset",
			Value:       repository.DefaultTTL,
			Sources:     cli.EnvVars("THREATLENS_CACHE_TTL"),
			Destination: &d.CacheTTL,
		},
		&cli.IntFlag{
			Name:        "cache-size",
			Usage:       "Maximum number of dataset URLs kept in memory",
			Category:    "Dataset",
			Value:       repository.DefaultSize,
			Sources:     cli.EnvVars("THREATLENS_CACHE_SIZE"),
			Destination: &d.CacheSize,
		},
		&cli.DurationFlag{
			Name:        "fetch-timeout",
			Usage:       "HTTP timeout for downloading the dataset (0: no timeout)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("THREATLENS_FETCH_TIMEOUT"),
			Destination: &d.FetchTimeout,
		},
	}
}

// DatasetURL returns the configured URL
func (d *Dataset) DatasetURL() types.DatasetURL {
	return types.DatasetURL(d.URL)
}

// Validate validates the dataset configuration
func (d *Dataset) Validate() error {
	if d.URL == "" {
		return goerr.New("dataset URL is required")
	}
	if d.CacheTTL <= 0 {
		return goerr.New("cache TTL must be positive", goerr.V("ttl", d.CacheTTL))
	}
	if d.FetchTimeout < 0 {
		return goerr.New("fetch timeout must not be negative", goerr.V("timeout", d.FetchTimeout))
	}
	return nil
}

// Configure creates the dataset loader with its cache and fetcher
func (d *Dataset) Configure(ctx context.Context) (*dataset.Loader, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cache, err := repository.NewMemory(d.CacheSize, repository.WithTTL(d.CacheTTL))
	if err != nil {
		return nil, err
	}

	fetcher := dataset.NewHTTPFetcher(dataset.WithTimeout(d.FetchTimeout))

	var opts []dataset.LoaderOption
	if d.Sheet != "" {
		opts = append(opts, dataset.WithSheet(d.Sheet))
	}
	if d.ColumnsFile != "" {
		columns, err := LoadColumnsFromFile(d.ColumnsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dataset.WithColumns(columns))
		ctxlog.From(ctx).Info("Column mapping loaded", "path", d.ColumnsFile)
	}

	return dataset.NewLoader(fetcher, cache, opts...), nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", d.URL),
		slog.String("sheet", d.Sheet),
		slog.String("columns_file", d.ColumnsFile),
		slog.Duration("cache_ttl", d.CacheTTL),
		slog.Int("cache_size", d.CacheSize),
		slog.Duration("fetch_timeout", d.FetchTimeout),
	)
}
