package driving

import (
	"context"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// DatasetInfo describes where a city's trips are read from.
type DatasetInfo struct {
	City domain.City

	// Path is the resolved dataset path.
	Path string

	// Format is the reader format name (e.g. "csv", "xlsx", "sqlite").
	// Empty when no reader handles the file extension.
	Format string
}

// DatasetService loads and filters city trip tables.
type DatasetService interface {
	// Cities returns the supported cities in display order.
	Cities() []domain.City

	// Describe resolves the dataset location for a city without reading it.
	Describe(city domain.City) (DatasetInfo, error)

	// Load reads the full trip table for a city with derived columns set.
	Load(ctx context.Context, city domain.City) (*domain.TripTable, error)

	// LoadFiltered reads the city in sel and applies its month and day filters.
	LoadFiltered(ctx context.Context, sel domain.Selection) (*domain.TripTable, error)
}
