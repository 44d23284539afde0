package dataset

import (
	"bytes"
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

// Loader fetches, parses and caches workbooks
type Loader struct {
	fetcher interfaces.DatasetFetcher
	cache   interfaces.DatasetCache
	columns *model.ColumnMapping
	sheet   string
	now     func() time.Time
}

// LoaderOption is a functional option for configuring Loader
type LoaderOption func(*Loader)

// WithColumns sets the header mapping used when parsing
func WithColumns(columns *model.ColumnMapping) LoaderOption {
	return func(l *Loader) {
		l.columns = columns
	}
}

// WithSheet selects a sheet by name instead of the first one
func WithSheet(sheet string) LoaderOption {
	return func(l *Loader) {
		l.sheet = sheet
	}
}

// NewLoader creates a Loader
func NewLoader(fetcher interfaces.DatasetFetcher, cache interfaces.DatasetCache, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher: fetcher,
		cache:   cache,
		columns: model.DefaultColumnMapping(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ interfaces.DatasetLoader = (*Loader)(nil)

// Load returns the dataset for url. A fresh cache entry is returned without
// network access; otherwise the workbook is fetched and parsed. Failures are
// returned as is and never cached, so the next call fetches again.
func (l *Loader) Load(ctx context.Context, url types.DatasetURL) (*model.Dataset, error) {
	logger := ctxlog.From(ctx)

	if ds, ok := l.cache.Get(url); ok {
		logger.Debug("Dataset cache hit", "url", url, "loaded_at", ds.LoadedAt)
		return ds, nil
	}
	logger.Debug("Dataset cache miss", "url", url)

	started := l.now()
	body, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	incidents, err := ParseWorkbook(bytes.NewReader(body), l.columns, l.sheet)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset",
			goerr.V("url", url),
			goerr.T(model.ErrTagParse))
	}

	ds := model.NewDataset(url, incidents, l.now())
	l.cache.Put(url, ds)

	logger.Info("Dataset loaded",
		"url", url,
		"bytes", len(body),
		"rows", len(incidents),
		"duration", l.now().Sub(started),
	)

	return ds, nil
}
