package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/cli/config"
	controller "github.com/secmon-lab/threatlens/pkg/controller/http"
	"github.com/secmon-lab/threatlens/pkg/service/chart"
	"github.com/secmon-lab/threatlens/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		datasetCfg config.Dataset
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting threatlens server",
				slog.Any("server", serverCfg),
				slog.Any("dataset", datasetCfg),
			)

			loader, err := datasetCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure dataset loader")
			}

			dashboardUC := usecase.NewDashboard(loader, datasetCfg.DatasetURL())
			renderer := chart.NewRenderer()

			server, err := controller.NewServer(ctx, serverCfg.Addr, dashboardUC, renderer)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
