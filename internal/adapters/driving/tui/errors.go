package tui

import "errors"

// ErrMissingDatasetService is returned when the dataset service is not provided.
var ErrMissingDatasetService = errors.New("tui: dataset service is required")

// ErrInvalidSelection is returned when the selection names no valid city.
var ErrInvalidSelection = errors.New("tui: selection has no valid city")
