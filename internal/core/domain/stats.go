package domain

import (
	"math"
	"time"
)

// GenderNotSpecified labels trips with an empty gender value.
const GenderNotSpecified = "Not Specified"

// Frequency is a value and the number of trips carrying it.
type Frequency struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// HMS is a duration in seconds split into hours, minutes and seconds.
type HMS struct {
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// Breakdown splits a non-negative number of seconds into hours, minutes and seconds.
func Breakdown(seconds float64) HMS {
	if seconds <= 0 || math.IsNaN(seconds) {
		return HMS{}
	}
	// Round to hundredths first so that 59.999 carries into the minute.
	hundredths := int64(math.Round(seconds * 100))
	total := hundredths / 100
	return HMS{
		Hours:   int(total / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: float64(hundredths%6000) / 100,
	}
}

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Empty bool `json:"empty"`

	// Month is 1-12.
	Month      int `json:"month"`
	MonthCount int `json:"month_count"`

	Day      string `json:"day"`
	DayCount int    `json:"day_count"`

	// Hour is 0-23.
	Hour      int `json:"hour"`
	HourCount int `json:"hour_count"`

	Elapsed time.Duration `json:"elapsed"`
}

// StationStats holds the most popular stations and route.
type StationStats struct {
	Empty bool      `json:"empty"`
	Start Frequency `json:"start"`
	End   Frequency `json:"end"`

	// Route is keyed by Trip.Route.
	Route Frequency `json:"route"`

	Elapsed time.Duration `json:"elapsed"`
}

// DurationStats holds total and mean trip duration in seconds.
type DurationStats struct {
	Empty   bool          `json:"empty"`
	Total   float64       `json:"total"`
	Mean    float64       `json:"mean"`
	Elapsed time.Duration `json:"elapsed"`
}

// TotalHMS returns Total split into hours, minutes and seconds.
func (d DurationStats) TotalHMS() HMS {
	return Breakdown(d.Total)
}

// MeanHMS returns Mean split into hours, minutes and seconds.
func (d DurationStats) MeanHMS() HMS {
	return Breakdown(d.Mean)
}

// BirthYearStats summarises the known birth years of a table.
type BirthYearStats struct {
	Earliest        int `json:"earliest"`
	Latest          int `json:"latest"`
	MostCommon      int `json:"most_common"`
	MostCommonCount int `json:"most_common_count"`

	// Known is the number of trips with a birth year.
	Known int `json:"known"`
}

// UserStats holds user demographics. Gender and birth year sections are
// only meaningful when their Available flag is set.
type UserStats struct {
	Empty     bool        `json:"empty"`
	UserTypes []Frequency `json:"user_types"`

	GenderAvailable bool        `json:"gender_available"`
	Genders         []Frequency `json:"genders,omitempty"`

	BirthYearAvailable bool           `json:"birth_year_available"`
	BirthYears         BirthYearStats `json:"birth_years"`

	Elapsed time.Duration `json:"elapsed"`
}

// Report bundles the four reporter results for one selection.
type Report struct {
	Selection Selection     `json:"selection"`
	Trips     int           `json:"trips"`
	Time      TimeStats     `json:"time"`
	Station   StationStats  `json:"station"`
	Duration  DurationStats `json:"duration"`
	User      UserStats     `json:"user"`
}
