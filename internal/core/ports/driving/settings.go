package driving

import "github.com/custodia-labs/bikeshare-cli/internal/core/domain"

// SettingsService exposes application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns the configuration file path.
	Path() string
}
