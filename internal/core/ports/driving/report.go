package driving

import "github.com/custodia-labs/bikeshare-cli/internal/core/domain"

// ReportService computes descriptive statistics over a trip table.
// Every method is pure: the same table always yields the same values.
type ReportService interface {
	// TimeStats computes the most frequent month, day of week and start hour.
	TimeStats(table *domain.TripTable) domain.TimeStats

	// StationStats computes the most popular start, end and route.
	StationStats(table *domain.TripTable) domain.StationStats

	// DurationStats computes total and mean trip duration.
	DurationStats(table *domain.TripTable) domain.DurationStats

	// UserStats computes user type, gender and birth year statistics.
	UserStats(table *domain.TripTable) domain.UserStats

	// Report runs all four reporters for a selection.
	Report(sel domain.Selection, table *domain.TripTable) domain.Report
}
