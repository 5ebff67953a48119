// Package domain defines the core entities for bikeshare-cli.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - City: one of the supported bikeshare systems
//   - Trip: a single bicycle trip with derived month, weekday and hour
//   - TripTable: all trips of one city plus optional-column flags
//   - Selection: the city, month and day chosen for one report cycle
//   - TimeStats, StationStats, DurationStats, UserStats: reporter results
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
