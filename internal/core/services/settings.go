package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir       = "data.dir"
	keyDatasetPrefix = "datasets."
	keyPageSize      = "display.page_size"
)

// SettingsService reads application settings from a config store,
// filling in defaults for anything the store does not set.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
	dataDir     string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WithDataDir overrides data.dir from the config store.
func (s *SettingsService) WithDataDir(dir string) *SettingsService {
	s.dataDir = dir
	return s
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Data: domain.DataSettings{
			Dir:   s.getString(keyDataDir, defaults.Data.Dir),
			Files: make(map[domain.City]string, len(defaults.Data.Files)),
		},
		Display: domain.DisplaySettings{
			PageSize: s.getInt(keyPageSize, defaults.Display.PageSize),
		},
	}
	if s.dataDir != "" {
		settings.Data.Dir = s.dataDir
	}

	for _, city := range domain.AllCities() {
		settings.Data.Files[city] = s.getString(keyDatasetPrefix+city.Key(), defaults.Data.Files[city])
	}

	return settings, nil
}

// Validate checks the current settings and reports every problem found,
// including keys the application does not recognise.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var errs []error
	if err := s.validate.Struct(settings); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate settings: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("%w: %s fails %q", domain.ErrInvalidInput, fe.Namespace(), fe.Tag()))
		}
	}

	for _, city := range domain.AllCities() {
		if settings.Data.Files[city] == "" {
			errs = append(errs, fmt.Errorf("%w: no dataset configured for %s", domain.ErrInvalidInput, city))
		}
	}

	for _, key := range s.configStore.Keys() {
		if !knownKey(key) {
			errs = append(errs, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key))
		}
	}

	return errors.Join(errs...)
}

func knownKey(key string) bool {
	switch key {
	case keyDataDir, keyPageSize:
		return true
	}
	for _, city := range domain.AllCities() {
		if key == keyDatasetPrefix+city.Key() {
			return true
		}
	}
	return false
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt returns defaultVal only when the key is absent, so an explicit
// zero reaches validation.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}
