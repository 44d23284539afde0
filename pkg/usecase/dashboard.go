package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
	"github.com/secmon-lab/threatlens/pkg/service/analytics"
	"github.com/secmon-lab/threatlens/pkg/service/chart"
)

// Dashboard runs render passes against a single configured dataset URL
type Dashboard struct {
	loader interfaces.DatasetLoader
	url    types.DatasetURL
	topN   int
}

// DashboardOption is a functional option for configuring Dashboard
type DashboardOption func(*Dashboard)

// WithTopN sets how many country-industry pairs the ranking chart keeps
func WithTopN(n int) DashboardOption {
	return func(d *Dashboard) {
		d.topN = n
	}
}

// NewDashboard creates a Dashboard use case
func NewDashboard(loader interfaces.DatasetLoader, url types.DatasetURL, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		loader: loader,
		url:    url,
		topN:   analytics.DefaultTopN,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// Options returns year bounds, the country list and the default selection
func (d *Dashboard) Options(ctx context.Context) (*model.FilterOptions, error) {
	ds, err := d.loader.Load(ctx, d.url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset for options", goerr.V("url", d.url))
	}
	return model.NewFilterOptions(ds), nil
}

// Render runs one full pass: load, filter, aggregate and map to chart specs.
// Any loader failure aborts the pass; an empty selection renders empty charts.
func (d *Dashboard) Render(ctx context.Context, filter model.Filter) (*model.Dashboard, error) {
	renderID := types.NewRenderID()
	logger := ctxlog.From(ctx).With("render_id", renderID)
	ctx = ctxlog.With(ctx, logger)

	ds, err := d.loader.Load(ctx, d.url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset",
			goerr.V("url", d.url),
			goerr.V("render_id", renderID))
	}

	rows := analytics.Filter(ds.All(), filter)
	summaries := analytics.Aggregate(rows, d.topN)

	logger.Debug("Dashboard rendered",
		"filter", filter,
		"dataset_rows", len(ds.Incidents),
		"filtered_rows", rows.Len(),
	)

	return &model.Dashboard{
		RenderID: renderID,
		Title:    chart.PageTitle,
		Filter:   filter,
		RowCount: rows.Len(),
		Charts:   chart.Build(summaries),
	}, nil
}
