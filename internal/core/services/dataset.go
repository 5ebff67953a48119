package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService resolves city datasets and reads them through the
// TripReader registered for the file extension.
type DatasetService struct {
	settings driving.SettingsService
	readers  map[string]driven.TripReader
}

// NewDatasetService creates a dataset service with the given readers.
// Later readers win when two claim the same extension.
func NewDatasetService(settings driving.SettingsService, readers ...driven.TripReader) *DatasetService {
	s := &DatasetService{
		settings: settings,
		readers:  make(map[string]driven.TripReader),
	}
	for _, r := range readers {
		s.Register(r)
	}
	return s
}

// Register adds a reader for every extension it supports.
func (s *DatasetService) Register(reader driven.TripReader) {
	for _, ext := range reader.SupportedExtensions() {
		s.readers[strings.ToLower(ext)] = reader
	}
}

// Cities returns the supported cities in display order.
func (s *DatasetService) Cities() []domain.City {
	return domain.AllCities()
}

// Describe resolves the dataset path and format for a city.
func (s *DatasetService) Describe(city domain.City) (driving.DatasetInfo, error) {
	if !city.IsValid() {
		return driving.DatasetInfo{}, fmt.Errorf("%w: %q", domain.ErrUnknownCity, city)
	}

	settings, err := s.settings.Get()
	if err != nil {
		return driving.DatasetInfo{}, fmt.Errorf("get settings: %w", err)
	}

	file, ok := settings.Data.Files[city]
	if !ok || file == "" {
		return driving.DatasetInfo{}, fmt.Errorf("%w: no dataset configured for %q", domain.ErrUnknownCity, city)
	}

	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(settings.Data.Dir, file)
	}

	info := driving.DatasetInfo{City: city, Path: path}
	if r := s.readerFor(path); r != nil {
		info.Format = r.Format()
	}
	return info, nil
}

// Load reads the full trip table for a city.
func (s *DatasetService) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	logger.Section("Load Dataset")

	info, err := s.Describe(city)
	if err != nil {
		return nil, err
	}
	logger.Debug("City: %s, path: %s, format: %s", city, info.Path, info.Format)

	reader := s.readerFor(info.Path)
	if reader == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, info.Path)
	}

	table, err := reader.Read(ctx, info.Path, city)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", city, err)
	}

	logger.Info("Loaded %d trips (gender=%t, birth_year=%t)",
		table.Len(), table.HasGender, table.HasBirthYear)
	return table, nil
}

// LoadFiltered reads the selected city and applies the month and day filters.
func (s *DatasetService) LoadFiltered(ctx context.Context, sel domain.Selection) (*domain.TripTable, error) {
	table, err := s.Load(ctx, sel.City)
	if err != nil {
		return nil, err
	}

	filtered := table.Filter(sel)
	logger.Debug("Filter month=%s day=%s kept %d of %d trips",
		sel.Month, sel.Day, filtered.Len(), table.Len())
	return filtered, nil
}

func (s *DatasetService) readerFor(path string) driven.TripReader {
	return s.readers[strings.ToLower(filepath.Ext(path))]
}
