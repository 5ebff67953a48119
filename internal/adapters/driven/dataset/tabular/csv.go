package tabular

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure CSVReader implements the interface.
var _ driven.TripReader = (*CSVReader)(nil)

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 4096

// CSVReader reads trip datasets from CSV files.
type CSVReader struct{}

// NewCSVReader creates a CSV trip reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Format returns the format name.
func (r *CSVReader) Format() string {
	return "csv"
}

// SupportedExtensions returns the file extensions handled by this reader.
func (r *CSVReader) SupportedExtensions() []string {
	return []string{".csv"}
}

// Read loads every trip in a CSV file.
func (r *CSVReader) Read(ctx context.Context, path string, city domain.City) (*domain.TripTable, error) {
	defer logger.Timed("read " + filepath.Base(path))()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.read(ctx, f, filepath.Base(path), city)
}

func (r *CSVReader) read(ctx context.Context, in io.Reader, source string, city domain.City) (*domain.TripTable, error) {
	reader := csv.NewReader(bufio.NewReader(in))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w: empty file", source, domain.ErrMissingColumn)
		}
		return nil, fmt.Errorf("%s: reading header: %w", source, err)
	}

	b, err := newTableBuilder(source, city, header, parseTimestamp)
	if err != nil {
		return nil, err
	}
	logger.Debug("%s columns: gender=%t birth_year=%t", source, b.table.HasGender, b.table.HasBirthYear)

	for n := 1; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", source, domain.ErrMalformedRecord, err)
		}
		// Quoted fields may span lines, so report where the record starts.
		line, _ := reader.FieldPos(0)
		if err := b.add(rec, line); err != nil {
			return nil, err
		}
	}

	return b.table, nil
}
