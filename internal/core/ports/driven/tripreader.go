package driven

import (
	"context"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// TripReader reads a city's trip dataset from one file format.
// Each reader handles specific file extensions (e.g. ".csv").
type TripReader interface {
	// Format returns a short name for the file format (e.g. "csv").
	Format() string

	// SupportedExtensions returns the lowercase file extensions, dot included.
	SupportedExtensions() []string

	// Read loads every trip in path with derived fields set.
	// Optional columns that are absent must be reported through the
	// table's Has* flags, never as an error.
	Read(ctx context.Context, path string, city domain.City) (*domain.TripTable, error)
}
