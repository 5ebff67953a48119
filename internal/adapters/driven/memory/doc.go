// Package memory provides in-memory implementations of driven port interfaces.
// They back tests and let callers inject trips or settings without files.
//
// Adapters:
//   - ConfigStore: map-backed configuration
//   - TripReader: serves preloaded trip tables keyed by path
package memory
