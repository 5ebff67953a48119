package services

import (
	"cmp"
	"slices"
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService computes trip statistics. It holds no state besides the clock
// used to time each reporter.
type ReportService struct {
	now func() time.Time
}

// NewReportService creates a new report service.
func NewReportService() *ReportService {
	return &ReportService{now: time.Now}
}

// TimeStats computes the most frequent month, day of week and start hour.
func (s *ReportService) TimeStats(table *domain.TripTable) domain.TimeStats {
	start := s.now()
	if table.Len() == 0 {
		return domain.TimeStats{Empty: true, Elapsed: s.since(start)}
	}

	months := make(map[int]int)
	days := make(map[string]int)
	hours := make(map[int]int)
	for i := range table.Trips {
		t := &table.Trips[i]
		months[t.Month]++
		days[t.DayOfWeek]++
		hours[t.Hour]++
	}

	var stats domain.TimeStats
	stats.Month, stats.MonthCount = mostFrequent(months)
	stats.Day, stats.DayCount = mostFrequent(days)
	stats.Hour, stats.HourCount = mostFrequent(hours)
	stats.Elapsed = s.since(start)

	logger.Debug("Time stats computed in %s", stats.Elapsed)
	return stats
}

// StationStats computes the most popular start station, end station and route.
func (s *ReportService) StationStats(table *domain.TripTable) domain.StationStats {
	start := s.now()
	if table.Len() == 0 {
		return domain.StationStats{Empty: true, Elapsed: s.since(start)}
	}

	starts := make(map[string]int)
	ends := make(map[string]int)
	routes := make(map[string]int)
	for i := range table.Trips {
		t := &table.Trips[i]
		starts[t.StartStation]++
		ends[t.EndStation]++
		routes[t.Route()]++
	}

	stats := domain.StationStats{
		Start: frequencyOf(starts),
		End:   frequencyOf(ends),
		Route: frequencyOf(routes),
	}
	stats.Elapsed = s.since(start)

	logger.Debug("Station stats computed in %s", stats.Elapsed)
	return stats
}

// DurationStats computes the total and mean trip duration in seconds.
func (s *ReportService) DurationStats(table *domain.TripTable) domain.DurationStats {
	start := s.now()
	if table.Len() == 0 {
		return domain.DurationStats{Empty: true, Elapsed: s.since(start)}
	}

	var total float64
	for i := range table.Trips {
		total += table.Trips[i].Duration
	}

	stats := domain.DurationStats{
		Total: total,
		Mean:  total / float64(table.Len()),
	}
	stats.Elapsed = s.since(start)

	logger.Debug("Duration stats computed in %s", stats.Elapsed)
	return stats
}

// UserStats computes user type, gender and birth year statistics.
// Gender and birth year are only computed when the table carries the column.
func (s *ReportService) UserStats(table *domain.TripTable) domain.UserStats {
	start := s.now()
	stats := domain.UserStats{
		GenderAvailable:    table.HasGender,
		BirthYearAvailable: table.HasBirthYear,
	}
	if table.Len() == 0 {
		stats.Empty = true
		stats.Elapsed = s.since(start)
		return stats
	}

	userTypes := make(map[string]int)
	genders := make(map[string]int)
	years := make(map[int]int)
	for i := range table.Trips {
		t := &table.Trips[i]
		if t.UserType != "" {
			userTypes[t.UserType]++
		}
		if table.HasGender {
			g := t.Gender
			if g == "" {
				g = domain.GenderNotSpecified
			}
			genders[g]++
		}
		if table.HasBirthYear && t.BirthYear > 0 {
			years[t.BirthYear]++
		}
	}

	stats.UserTypes = frequencyTable(userTypes)
	if table.HasGender {
		stats.Genders = frequencyTable(genders)
	}
	if table.HasBirthYear {
		stats.BirthYears = birthYearStats(years)
	}
	stats.Elapsed = s.since(start)

	logger.Debug("User stats computed in %s", stats.Elapsed)
	return stats
}

// Report runs all four reporters over the table.
func (s *ReportService) Report(sel domain.Selection, table *domain.TripTable) domain.Report {
	logger.Section("Report")
	return domain.Report{
		Selection: sel,
		Trips:     table.Len(),
		Time:      s.TimeStats(table),
		Station:   s.StationStats(table),
		Duration:  s.DurationStats(table),
		User:      s.UserStats(table),
	}
}

func (s *ReportService) since(start time.Time) time.Duration {
	return s.now().Sub(start)
}

// mostFrequent returns the key with the highest count. Ties go to the
// smallest key so repeated runs agree.
func mostFrequent[K cmp.Ordered](counts map[K]int) (K, int) {
	var best K
	bestCount := 0
	for k, c := range counts {
		if c > bestCount || (c == bestCount && k < best) {
			best, bestCount = k, c
		}
	}
	return best, bestCount
}

func frequencyOf(counts map[string]int) domain.Frequency {
	v, c := mostFrequent(counts)
	return domain.Frequency{Value: v, Count: c}
}

// frequencyTable orders counts by count descending, then value ascending.
func frequencyTable(counts map[string]int) []domain.Frequency {
	table := make([]domain.Frequency, 0, len(counts))
	for v, c := range counts {
		table = append(table, domain.Frequency{Value: v, Count: c})
	}
	slices.SortFunc(table, func(a, b domain.Frequency) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return table
}

func birthYearStats(years map[int]int) domain.BirthYearStats {
	var stats domain.BirthYearStats
	if len(years) == 0 {
		return stats
	}
	stats.MostCommon, stats.MostCommonCount = mostFrequent(years)
	first := true
	for y, c := range years {
		stats.Known += c
		if first || y < stats.Earliest {
			stats.Earliest = y
		}
		if first || y > stats.Latest {
			stats.Latest = y
		}
		first = false
	}
	logger.Debug("Birth years: %d known, range %d-%d", stats.Known, stats.Earliest, stats.Latest)
	return stats
}
