// Package messages defines Bubbletea message types for the trip browser.
package messages

import (
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// TableLoaded carries the filtered trip table back to the model.
type TableLoaded struct {
	Table *domain.TripTable
	Err   error
}

// WindowChanged is sent when the visible window of trips moves.
type WindowChanged struct {
	// Offset is the index of the first visible trip.
	Offset int

	// Count is the number of visible trips.
	Count int

	// Total is the number of trips in the table.
	Total int
}

// First returns the 1-based number of the first visible trip, 0 when empty.
func (w WindowChanged) First() int {
	if w.Count == 0 {
		return 0
	}
	return w.Offset + 1
}

// Last returns the 1-based number of the last visible trip.
func (w WindowChanged) Last() int {
	return w.Offset + w.Count
}

// DatasetChanged is sent when the watched dataset file is written or replaced.
type DatasetChanged struct {
	Path string
}

// WatchFailed is sent when the dataset watcher stops with an error.
type WatchFailed struct {
	Err error
}
