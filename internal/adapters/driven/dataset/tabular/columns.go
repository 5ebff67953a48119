package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// Column names as they appear in the dataset header.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\ufeff"

// timeLayouts are tried in order when parsing timestamps.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// timeParser converts a cell value into a timestamp.
type timeParser func(string) (time.Time, error)

// parseTimestamp parses the textual timestamp formats used by the datasets.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// columns holds the index of each known column, -1 when absent.
type columns struct {
	id           int
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// mapHeader locates the known columns in a header row.
func mapHeader(header []string) (columns, error) {
	cols := columns{
		id: -1, startTime: -1, endTime: -1, duration: -1, startStation: -1,
		endStation: -1, userType: -1, gender: -1, birthYear: -1,
	}

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if i == 0 {
			name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		}
		switch {
		case name == "" && i == 0:
			cols.id = i
		case strings.EqualFold(name, ColStartTime):
			cols.startTime = i
		case strings.EqualFold(name, ColEndTime):
			cols.endTime = i
		case strings.EqualFold(name, ColTripDuration):
			cols.duration = i
		case strings.EqualFold(name, ColStartStation):
			cols.startStation = i
		case strings.EqualFold(name, ColEndStation):
			cols.endStation = i
		case strings.EqualFold(name, ColUserType):
			cols.userType = i
		case strings.EqualFold(name, ColGender):
			cols.gender = i
		case strings.EqualFold(name, ColBirthYear):
			cols.birthYear = i
		}
	}

	required := []struct {
		name  string
		index int
	}{
		{ColStartTime, cols.startTime},
		{ColTripDuration, cols.duration},
		{ColStartStation, cols.startStation},
		{ColEndStation, cols.endStation},
		{ColUserType, cols.userType},
	}
	for _, r := range required {
		if r.index < 0 {
			return cols, fmt.Errorf("%w: %q", domain.ErrMissingColumn, r.name)
		}
	}

	return cols, nil
}

// tableBuilder accumulates parsed rows into a trip table.
type tableBuilder struct {
	source    string
	cols      columns
	parseTime timeParser
	table     *domain.TripTable
}

func newTableBuilder(source string, city domain.City, header []string, parseTime timeParser) (*tableBuilder, error) {
	cols, err := mapHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &tableBuilder{
		source:    source,
		cols:      cols,
		parseTime: parseTime,
		table: &domain.TripTable{
			City:         city,
			HasGender:    cols.gender >= 0,
			HasBirthYear: cols.birthYear >= 0,
		},
	}, nil
}

// add parses one data row. line is the 1-based source line the row starts on.
func (b *tableBuilder) add(rec []string, line int) error {
	cell := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	malformed := func(col string, err error) error {
		return fmt.Errorf("%s line %d, column %q: %w: %v", b.source, line, col, domain.ErrMalformedRecord, err)
	}

	start, err := b.parseTime(cell(b.cols.startTime))
	if err != nil {
		return malformed(ColStartTime, err)
	}

	var end time.Time
	if v := cell(b.cols.endTime); v != "" {
		if end, err = b.parseTime(v); err != nil {
			return malformed(ColEndTime, err)
		}
	}

	duration, err := strconv.ParseFloat(cell(b.cols.duration), 64)
	if err != nil || math.IsNaN(duration) {
		return malformed(ColTripDuration, fmt.Errorf("not a number: %q", cell(b.cols.duration)))
	}

	year, err := parseBirthYear(cell(b.cols.birthYear))
	if err != nil {
		return malformed(ColBirthYear, err)
	}

	id := cell(b.cols.id)
	if id == "" {
		id = strconv.Itoa(len(b.table.Trips) + 1)
	}

	b.table.Trips = append(b.table.Trips, domain.NewTrip(domain.Trip{
		ID:           id,
		StartTime:    start,
		EndTime:      end,
		Duration:     duration,
		StartStation: cell(b.cols.startStation),
		EndStation:   cell(b.cols.endStation),
		UserType:     cell(b.cols.userType),
		Gender:       cell(b.cols.gender),
		BirthYear:    year,
	}))
	return nil
}

// parseBirthYear accepts "1992" and "1992.0"; empty and NaN mean unknown.
func parseBirthYear(s string) (int, error) {
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a year: %q", s)
	}
	return int(f), nil
}
