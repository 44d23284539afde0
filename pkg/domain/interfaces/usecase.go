package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Dashboard ChartRenderer

import (
	"context"
	"io"

	"github.com/secmon-lab/threatlens/pkg/domain/model"
)

// Dashboard runs render passes over the configured dataset
type Dashboard interface {
	// Options returns filter bounds and defaults derived from the dataset
	Options(ctx context.Context) (*model.FilterOptions, error)
	// Render runs Filter, the four aggregations and chart mapping for one selection
	Render(ctx context.Context, filter model.Filter) (*model.Dashboard, error)
}

// ChartRenderer draws a chart specification as a PNG image
type ChartRenderer interface {
	RenderPNG(w io.Writer, spec *model.ChartSpec) error
}
