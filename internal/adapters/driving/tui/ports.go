// Package tui provides the interactive trip browser.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the browser.
type Ports struct {
	// Datasets loads and filters trip tables.
	Datasets driving.DatasetService

	// Settings provides the page size. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(datasets driving.DatasetService, settings driving.SettingsService) *Ports {
	return &Ports{
		Datasets: datasets,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Datasets == nil {
		return ErrMissingDatasetService
	}
	return nil
}

// PageSize returns the configured page size, or the default when settings
// are absent or unusable.
func (p *Ports) PageSize() int {
	if p.Settings == nil {
		return domain.DefaultPageSize
	}
	settings, err := p.Settings.Get()
	if err != nil || settings.Display.PageSize < 1 {
		return domain.DefaultPageSize
	}
	return min(settings.Display.PageSize, domain.MaxPageSize)
}
