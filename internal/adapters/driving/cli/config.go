package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Shows the settings read from config.toml, with defaults filled in and
command-line overrides applied, and reports whether they are valid.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[Data]")
	cmd.Printf("  Directory: %s\n", settings.Data.Dir)
	for _, city := range domain.AllCities() {
		cmd.Printf("  %s: %s\n", city.Key(), settings.Data.Files[city])
	}
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Page size: %d\n", settings.Display.PageSize)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}
