// Package cli provides the cobra command tree for bikeshare.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services bundles the driving ports used by the commands.
type Services struct {
	Datasets driving.DatasetService
	Reports  driving.ReportService
	Settings driving.SettingsService
}

// Options carries the persistent flag values needed to build services.
type Options struct {
	// ConfigDir is the directory holding config.toml. Empty means the default.
	ConfigDir string

	// DataDir overrides data.dir when set.
	DataDir string
}

// ServiceBuilder constructs services once flags are parsed.
type ServiceBuilder func(opts Options) (*Services, error)

var (
	datasetService  driving.DatasetService
	reportService   driving.ReportService
	settingsService driving.SettingsService
	serviceBuilder  ServiceBuilder
)

var (
	verbose   bool
	configDir string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data",
	Long: `Explore bikeshare trip data for Chicago, New York and Washington.

Run without a subcommand for an interactive session: pick a city, optionally
filter by month and day of week, read the travel time, station, duration and
user statistics, then page through the raw trips.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.bikeshare)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the city datasets (overrides data.dir)")
}

// SetServices sets the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		datasetService, reportService, settingsService = nil, nil, nil
		return
	}
	datasetService = s.Datasets
	reportService = s.Reports
	settingsService = s.Settings
}

// SetServiceBuilder registers a builder that runs after flags are parsed.
// It replaces any services set with SetServices.
func SetServiceBuilder(b ServiceBuilder) {
	serviceBuilder = b
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetRunID(uuid.NewString()[:8])
	logger.Debug("bikeshare %s: %s", version, cmd.CommandPath())

	if serviceBuilder == nil {
		return nil
	}
	svcs, err := serviceBuilder(Options{ConfigDir: configDir, DataDir: dataDir})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(svcs)
	return nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}
	if reportService == nil {
		return errors.New("report service not configured")
	}

	session := NewSession(SessionConfig{
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Datasets: datasetService,
		Reports:  reportService,
		PageSize: pageSize(),
	})
	return session.Run(cmd.Context())
}

// pageSize returns the configured raw-data window size.
func pageSize() int {
	if settingsService == nil {
		return domain.DefaultPageSize
	}
	settings, err := settingsService.Get()
	if err != nil || settings.Display.PageSize < 1 {
		return domain.DefaultPageSize
	}
	return min(settings.Display.PageSize, domain.MaxPageSize)
}

// parseSelection parses the --city, --month and --day flag values.
func parseSelection(city, month, day string) (domain.Selection, error) {
	var sel domain.Selection
	var err error

	if sel.City, err = domain.ParseCity(city); err != nil {
		return sel, err
	}
	if sel.Month, err = domain.ParseMonth(month); err != nil {
		return sel, err
	}
	if sel.Day, err = domain.ParseDay(day); err != nil {
		return sel, err
	}
	return sel, nil
}
