package memory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
)

// Ensure TripReader implements the interface.
var _ driven.TripReader = (*TripReader)(nil)

// Extension is the pseudo file extension served by TripReader.
const Extension = ".mem"

// TripReader serves preloaded trip tables keyed by path.
type TripReader struct {
	mu     sync.RWMutex
	tables map[string]*domain.TripTable
}

// NewTripReader creates an empty in-memory trip reader.
func NewTripReader() *TripReader {
	return &TripReader{
		tables: make(map[string]*domain.TripTable),
	}
}

// Put registers a table under path. Trips get their derived fields set.
func (r *TripReader) Put(path string, table *domain.TripTable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range table.Trips {
		table.Trips[i].Derive()
	}
	r.tables[path] = table
}

// Format returns the format name.
func (r *TripReader) Format() string {
	return "memory"
}

// SupportedExtensions returns the pseudo extension handled by this reader.
func (r *TripReader) SupportedExtensions() []string {
	return []string{Extension}
}

// Read returns a copy of the table stored under path, relabelled for city.
func (r *TripReader) Read(ctx context.Context, path string, city domain.City) (*domain.TripTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}

	return &domain.TripTable{
		City:         city,
		Trips:        append([]domain.Trip(nil), table.Trips...),
		HasGender:    table.HasGender,
		HasBirthYear: table.HasBirthYear,
	}, nil
}
