package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCity indicates a city name that has no dataset.
	ErrUnknownCity = errors.New("unknown city")

	// ErrUnknownMonth indicates a month selector that is neither "all" nor a month name.
	ErrUnknownMonth = errors.New("unknown month")

	// ErrUnknownDay indicates a day selector that is neither "all" nor a weekday name.
	ErrUnknownDay = errors.New("unknown day")

	// Dataset Errors.

	// ErrMissingColumn indicates a dataset lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedRecord indicates a row whose values cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnsupportedFormat indicates a dataset file type with no reader.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)
