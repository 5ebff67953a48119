// Command bikeshare explores US bikeshare trip data from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/dataset/sqlite"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/dataset/tabular"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetServiceBuilder(buildServices)

	if err := cli.Execute(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	settings := services.NewSettingsService(store).WithDataDir(opts.DataDir)
	datasets := services.NewDatasetService(settings,
		tabular.NewCSVReader(),
		tabular.NewXLSXReader(),
		sqlite.NewReader(),
	)

	return &cli.Services{
		Datasets: datasets,
		Reports:  services.NewReportService(),
		Settings: settings,
	}, nil
}
