package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/cli/config"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/service/chart"
	"github.com/secmon-lab/threatlens/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		datasetCfg config.Dataset
		filterCfg  config.Filter
		pngDir     string
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		filterCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "png-dir",
				Usage:       "Directory to write one PNG per chart",
				Sources:     cli.EnvVars("THREATLENS_PNG_DIR"),
				Destination: &pngDir,
			},
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render the dashboard once and print it as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Debug("Rendering dashboard",
				slog.Any("dataset", datasetCfg),
				slog.Any("filter", filterCfg),
				slog.String("png_dir", pngDir),
			)

			loader, err := datasetCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure dataset loader")
			}
			dashboardUC := usecase.NewDashboard(loader, datasetCfg.DatasetURL())

			return runRender(ctx, dashboardUC, chart.NewRenderer(), &filterCfg, pngDir, os.Stdout)
		},
	}
}

// runRender resolves the selection, renders once, prints the dashboard and
// optionally writes each chart to pngDir
func runRender(
	ctx context.Context,
	dashboardUC interfaces.Dashboard,
	renderer interfaces.ChartRenderer,
	filterCfg *config.Filter,
	pngDir string,
	w io.Writer,
) error {
	opts, err := dashboardUC.Options(ctx)
	if err != nil {
		return err
	}

	filter, err := filterCfg.Resolve(opts)
	if err != nil {
		return err
	}

	dashboard, err := dashboardUC.Render(ctx, filter)
	if err != nil {
		return err
	}

	if pngDir != "" {
		if err := writeCharts(ctx, renderer, dashboard, pngDir); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dashboard); err != nil {
		return goerr.Wrap(err, "failed to encode dashboard")
	}
	return nil
}

func writeCharts(ctx context.Context, renderer interfaces.ChartRenderer, dashboard *model.Dashboard, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create PNG directory", goerr.V("dir", dir))
	}

	for i := range dashboard.Charts {
		spec := &dashboard.Charts[i]
		path := filepath.Join(dir, spec.Tab.String()+".png")

		if err := writeChart(renderer, spec, path); err != nil {
			return err
		}
		ctxlog.From(ctx).Info("Chart written", "tab", spec.Tab, "path", path)
	}
	return nil
}

func writeChart(renderer interfaces.ChartRenderer, spec *model.ChartSpec, path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create PNG file", goerr.V("path", path))
	}
	defer f.Close()

	if err := renderer.RenderPNG(f, spec); err != nil {
		return goerr.Wrap(err, "failed to render chart", goerr.V("tab", spec.Tab))
	}
	return nil
}
