package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// TripsTable is the table trips are read from.
const TripsTable = "trips"

// Column names in the trips table.
const (
	ColID           = "id"
	ColStartTime    = "start_time"
	ColEndTime      = "end_time"
	ColTripDuration = "trip_duration"
	ColStartStation = "start_station"
	ColEndStation   = "end_station"
	ColUserType     = "user_type"
	ColGender       = "gender"
	ColBirthYear    = "birth_year"
)

var requiredColumns = []string{ColStartTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// Ensure Reader implements the interface.
var _ driven.TripReader = (*Reader)(nil)

// Reader loads trips from a SQLite database.
type Reader struct{}

// NewReader creates a SQLite trip reader.
func NewReader() *Reader {
	return &Reader{}
}

// Format returns the format name.
func (r *Reader) Format() string {
	return "sqlite"
}

// SupportedExtensions returns the file extensions handled by this reader.
func (r *Reader) SupportedExtensions() []string {
	return []string{".db", ".sqlite", ".sqlite3"}
}

// Read loads every row of the trips table.
func (r *Reader) Read(ctx context.Context, path string, city domain.City) (*domain.TripTable, error) {
	source := filepath.Base(path)
	defer logger.Timed("read " + source)()

	// The driver reports a missing read-only file as a generic open error.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	present, err := tableColumns(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, fmt.Errorf("%s: %w: %q", source, domain.ErrMissingColumn, col)
		}
	}

	table := &domain.TripTable{
		City:         city,
		HasGender:    present[ColGender],
		HasBirthYear: present[ColBirthYear],
	}
	logger.Debug("%s columns: gender=%t birth_year=%t", source, table.HasGender, table.HasBirthYear)

	rows, err := db.QueryContext(ctx, selectQuery(present))
	if err != nil {
		return nil, fmt.Errorf("%s: querying trips: %w", source, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rowid                    int64
			id, start, end           sql.NullString
			duration, birthYear      sql.NullFloat64
			startStation, endStation sql.NullString
			userType, gender         sql.NullString
		)
		if err := rows.Scan(&rowid, &id, &start, &end, &duration,
			&startStation, &endStation, &userType, &gender, &birthYear); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", source, domain.ErrMalformedRecord, err)
		}

		malformed := func(col string, err error) error {
			return fmt.Errorf("%s row %d, column %q: %w: %v", source, rowid, col, domain.ErrMalformedRecord, err)
		}

		startTime, err := parseTime(start.String)
		if err != nil {
			return nil, malformed(ColStartTime, err)
		}
		var endTime time.Time
		if strings.TrimSpace(end.String) != "" {
			if endTime, err = parseTime(end.String); err != nil {
				return nil, malformed(ColEndTime, err)
			}
		}
		if !duration.Valid {
			return nil, malformed(ColTripDuration, errors.New("missing value"))
		}

		table.Trips = append(table.Trips, domain.NewTrip(domain.Trip{
			ID:           id.String,
			StartTime:    startTime,
			EndTime:      endTime,
			Duration:     duration.Float64,
			StartStation: strings.TrimSpace(startStation.String),
			EndStation:   strings.TrimSpace(endStation.String),
			UserType:     strings.TrimSpace(userType.String),
			Gender:       strings.TrimSpace(gender.String),
			BirthYear:    int(birthYear.Float64),
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	return table, nil
}

// tableColumns returns the set of column names in the trips table.
func tableColumns(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", TripsTable)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("reading schema: %w", err)
		}
		present[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	if len(present) == 0 {
		return nil, fmt.Errorf("%w: no %q table", domain.ErrMissingColumn, TripsTable)
	}
	return present, nil
}

// selectQuery builds the trip query, substituting NULL for absent optional columns.
// Timestamps are cast to text so the driver does not convert them to time.Time.
func selectQuery(present map[string]bool) string {
	optional := func(col, expr string) string {
		if present[col] {
			return expr
		}
		return "NULL"
	}

	id := "CAST(rowid AS TEXT)"
	if present[ColID] {
		id = "CAST(COALESCE(id, rowid) AS TEXT)"
	}

	cols := []string{
		"rowid",
		id,
		"CAST(start_time AS TEXT)",
		optional(ColEndTime, "CAST(end_time AS TEXT)"),
		"CAST(trip_duration AS REAL)",
		"start_station",
		"end_station",
		"user_type",
		optional(ColGender, "gender"),
		optional(ColBirthYear, "CAST(birth_year AS REAL)"),
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM " + TripsTable + " ORDER BY rowid"
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}
