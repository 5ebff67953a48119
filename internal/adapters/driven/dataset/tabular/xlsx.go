package tabular

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure XLSXReader implements the interface.
var _ driven.TripReader = (*XLSXReader)(nil)

// XLSXReader reads trip datasets from the first sheet of an Excel workbook.
type XLSXReader struct{}

// NewXLSXReader creates an XLSX trip reader.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// Format returns the format name.
func (r *XLSXReader) Format() string {
	return "xlsx"
}

// SupportedExtensions returns the file extensions handled by this reader.
func (r *XLSXReader) SupportedExtensions() []string {
	return []string{".xlsx"}
}

// Read loads every trip on the first sheet of the workbook.
func (r *XLSXReader) Read(ctx context.Context, path string, city domain.City) (*domain.TripTable, error) {
	source := filepath.Base(path)
	defer logger.Timed("read " + source)()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w: workbook has no sheets", source, domain.ErrMissingColumn)
	}
	logger.Debug("%s: reading sheet %q", source, sheets[0])

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	defer rows.Close()

	var b *tableBuilder
	for line := 1; rows.Next(); line++ {
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, line, err)
		}

		if b == nil {
			if b, err = newTableBuilder(source, city, rec, parseExcelTime); err != nil {
				return nil, err
			}
			continue
		}
		if blank(rec) {
			continue
		}
		if err := b.add(rec, line); err != nil {
			return nil, err
		}
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%s: %w: empty sheet", source, domain.ErrMissingColumn)
	}

	return b.table, nil
}

// parseExcelTime accepts Excel date serials as well as textual timestamps.
func parseExcelTime(s string) (time.Time, error) {
	if serial, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		// Serials carry sub-second float noise.
		return t.Round(time.Second), nil
	}
	return parseTimestamp(s)
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
