package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/pkg/cli"
	"github.com/secmon-lab/threatlens/pkg/cli/config"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
	"github.com/secmon-lab/threatlens/pkg/service/chart"
)

func newDashboardMock() *mocks.DashboardMock {
	return &mocks.DashboardMock{
		OptionsFunc: func(ctx context.Context) (*model.FilterOptions, error) {
			return &model.FilterOptions{MinYear: 2015, MaxYear: 2024, DefaultCountry: "USA"}, nil
		},
		RenderFunc: func(ctx context.Context, filter model.Filter) (*model.Dashboard, error) {
			return &model.Dashboard{
				RenderID: "render-1",
				Title:    chart.PageTitle,
				Filter:   filter,
				Charts:   chart.Build(&model.Summaries{}),
			}, nil
		},
	}
}

func TestRunRender(t *testing.T) {
	t.Run("prints dashboard with resolved filter", func(t *testing.T) {
		uc := newDashboardMock()
		var out bytes.Buffer

		filterCfg := &config.Filter{MaxYear: 2020}
		gt.NoError(t, cli.RunRender(context.Background(), uc, &mocks.ChartRendererMock{}, filterCfg, "", &out))

		var d model.Dashboard
		gt.NoError(t, json.Unmarshal(out.Bytes(), &d))
		gt.Equal(t, model.Filter{MinYear: 2015, MaxYear: 2020, Countries: []string{"USA"}}, d.Filter)
		gt.A(t, d.Charts).Length(4)
	})

	t.Run("no country reaches render as an empty selection", func(t *testing.T) {
		uc := newDashboardMock()
		var out bytes.Buffer

		filterCfg := &config.Filter{NoCountries: true}
		gt.NoError(t, cli.RunRender(context.Background(), uc, &mocks.ChartRendererMock{}, filterCfg, "", &out))

		calls := uc.RenderCalls()
		gt.A(t, calls).Length(1)
		gt.A(t, calls[0].Filter.Countries).Length(0)
	})

	t.Run("writes one PNG per tab", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "charts")
		renderer := &mocks.ChartRendererMock{
			RenderPNGFunc: func(w io.Writer, spec *model.ChartSpec) error {
				_, err := w.Write([]byte(spec.Tab))
				return err
			},
		}

		var out bytes.Buffer
		gt.NoError(t, cli.RunRender(context.Background(), newDashboardMock(), renderer, &config.Filter{}, dir, &out))

		gt.A(t, renderer.RenderPNGCalls()).Length(len(types.AllTabs))
		for _, tab := range types.AllTabs {
			data, err := os.ReadFile(filepath.Join(dir, tab.String()+".png"))
			gt.NoError(t, err)
			gt.Equal(t, tab.String(), string(data))
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		var out bytes.Buffer
		err := cli.RunRender(context.Background(), newDashboardMock(), &mocks.ChartRendererMock{}, &config.Filter{MinYear: -5}, "", &out)
		gt.Error(t, err)
		gt.Equal(t, 0, out.Len())
	})
}
