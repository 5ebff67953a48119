package domain

import (
	"fmt"
	"strings"
	"time"
)

// allSelector is the selector value meaning "no restriction".
const allSelector = "all"

var monthNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// weekdayNames is indexed by time.Weekday (Sunday first).
var weekdayNames = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// MonthName returns the lowercase name of month m (1-12), or "" if out of range.
func MonthName(m int) string {
	if m < 1 || m > len(monthNames) {
		return ""
	}
	return monthNames[m-1]
}

// DayName returns the lowercase name of a weekday.
func DayName(d time.Weekday) string {
	return weekdayNames[d]
}

// MonthFilter restricts trips to a calendar month. AllMonths disables it.
type MonthFilter int

// AllMonths keeps trips from every month.
const AllMonths MonthFilter = 0

// ParseMonth parses "all" or a month name, ignoring case and surrounding whitespace.
func ParseMonth(s string) (MonthFilter, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == allSelector {
		return AllMonths, nil
	}
	for i, name := range monthNames {
		if name == v {
			return MonthFilter(i + 1), nil
		}
	}
	return AllMonths, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrUnknownMonth, s)
}

// MonthChoices returns the accepted month selectors, "all" first.
func MonthChoices() []string {
	return append([]string{allSelector}, monthNames[:]...)
}

// IsAll returns true if the filter keeps every month.
func (m MonthFilter) IsAll() bool {
	return m == AllMonths
}

// String returns "all" or the lowercase month name.
func (m MonthFilter) String() string {
	if m.IsAll() {
		return allSelector
	}
	return MonthName(int(m))
}

// MarshalText encodes the filter by name.
func (m MonthFilter) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// DayFilter restricts trips to a day of week. AllDays disables it.
type DayFilter string

// AllDays keeps trips from every day of the week.
const AllDays DayFilter = allSelector

// ParseDay parses "all" or a weekday name, ignoring case and surrounding whitespace.
func ParseDay(s string) (DayFilter, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == allSelector {
		return AllDays, nil
	}
	for _, name := range weekdayNames {
		if name == v {
			return DayFilter(v), nil
		}
	}
	return AllDays, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrUnknownDay, s)
}

// DayChoices returns the accepted day selectors, "all" first, Monday to Sunday.
func DayChoices() []string {
	return []string{
		allSelector, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}
}

// IsAll returns true if the filter keeps every day.
func (d DayFilter) IsAll() bool {
	return d == AllDays || d == ""
}

// String returns the string representation.
func (d DayFilter) String() string {
	if d.IsAll() {
		return allSelector
	}
	return string(d)
}

// Selection is the filter triple chosen for one report cycle.
type Selection struct {
	City  City        `json:"city"`
	Month MonthFilter `json:"month"`
	Day   DayFilter   `json:"day"`
}

// Unfiltered returns true if neither month nor day restricts the table.
func (s Selection) Unfiltered() bool {
	return s.Month.IsAll() && s.Day.IsAll()
}

// Matches returns true if the trip passes the month and day restrictions.
func (s Selection) Matches(t *Trip) bool {
	if !s.Month.IsAll() && t.Month != int(s.Month) {
		return false
	}
	if !s.Day.IsAll() && t.DayOfWeek != string(s.Day) {
		return false
	}
	return true
}
