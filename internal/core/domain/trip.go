package domain

import "time"

// Trip is one bicycle trip. Month, DayOfWeek and Hour are derived from
// StartTime and must be set through NewTrip or Derive.
type Trip struct {
	// ID is the row identifier from the source file, or the 1-based row number.
	ID string

	StartTime time.Time

	// EndTime is carried for display only.
	EndTime time.Time

	// Duration is the trip length in seconds.
	Duration float64

	StartStation string
	EndStation   string
	UserType     string

	// Gender is empty when unknown or when the city has no gender column.
	Gender string

	// BirthYear is 0 when unknown or when the city has no birth year column.
	BirthYear int

	// Month is the start month, 1-12.
	Month int

	// DayOfWeek is the lowercase weekday name of the start time.
	DayOfWeek string

	// Hour is the start hour, 0-23.
	Hour int
}

// NewTrip returns t with its derived fields filled in.
func NewTrip(t Trip) Trip {
	t.Derive()
	return t
}

// Derive recomputes Month, DayOfWeek and Hour from StartTime.
func (t *Trip) Derive() {
	t.Month = int(t.StartTime.Month())
	t.DayOfWeek = DayName(t.StartTime.Weekday())
	t.Hour = t.StartTime.Hour()
}

// Route returns the pair identity of the trip's start and end stations.
func (t *Trip) Route() string {
	return t.StartStation + " - " + t.EndStation
}

// TripTable holds the trips of one city.
// HasGender and HasBirthYear record whether the source carried those columns.
type TripTable struct {
	City         City
	Trips        []Trip
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips.
func (t *TripTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Trips)
}

// Filter returns a new table holding the trips that match sel.
// The receiver is never modified. An unmatched filter yields an empty table.
func (t *TripTable) Filter(sel Selection) *TripTable {
	out := &TripTable{
		City:         t.City,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}
	if sel.Unfiltered() {
		out.Trips = append([]Trip(nil), t.Trips...)
		return out
	}
	out.Trips = make([]Trip, 0, len(t.Trips))
	for i := range t.Trips {
		if sel.Matches(&t.Trips[i]) {
			out.Trips = append(out.Trips, t.Trips[i])
		}
	}
	return out
}

// Window returns the trips in [offset, offset+size), clipped to the table.
func (t *TripTable) Window(offset, size int) []Trip {
	if offset < 0 {
		offset = 0
	}
	if offset >= t.Len() || size <= 0 {
		return nil
	}
	end := offset + size
	if end > len(t.Trips) {
		end = len(t.Trips)
	}
	return t.Trips[offset:end]
}
