package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{600, "600"},
		{51.428571, "51.43"},
		{0.5, "0.5"},
		{7080, "7080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSeconds(tt.in))
		})
	}
}

func TestFormatHMS(t *testing.T) {
	assert.Equal(t, "1 Hours 58 Minutes 0 Seconds", formatHMS(domain.Breakdown(7080)))
	assert.Equal(t, "0 Hours 16 Minutes 51.43 Seconds", formatHMS(domain.Breakdown(1011.428571)))
}

func TestRenderer_Titled(t *testing.T) {
	r := newRenderer(new(bytes.Buffer))

	assert.Equal(t, "New York", r.titled("new york"))
	assert.Equal(t, "Monday", r.titled("monday"))
	assert.Equal(t, "All", r.titled("all"))
}

func TestRenderer_Selected(t *testing.T) {
	buf := new(bytes.Buffer)

	newRenderer(buf).Selected("new york")

	assert.Equal(t, "You selected: \"New York\"\n", buf.String())
}

func TestRenderer_ElapsedIsPrinted(t *testing.T) {
	buf := new(bytes.Buffer)

	newRenderer(buf).DurationStats(domain.DurationStats{Total: 90, Mean: 45, Elapsed: 1500 * time.Millisecond})

	assert.Contains(t, buf.String(), "This took 1.5 seconds.")
	assert.Contains(t, buf.String(), "0 Hours 1 Minutes 30 Seconds (A total of 90 seconds.)")
}

func TestRenderer_DurationCarriesRoundedSeconds(t *testing.T) {
	buf := new(bytes.Buffer)

	newRenderer(buf).DurationStats(domain.DurationStats{Total: 119.996, Mean: 3599.999})

	out := buf.String()
	assert.Contains(t, out, "The total travel time for all trips is 0 Hours 2 Minutes 0 Seconds (A total of 120 seconds.)")
	assert.Contains(t, out, "The average travel time for all trips is 1 Hours 0 Minutes 0 Seconds (A total of 3600 seconds.)")
	assert.NotContains(t, out, "60 Seconds")
}

func TestRenderer_EmptySections(t *testing.T) {
	buf := new(bytes.Buffer)
	r := newRenderer(buf)

	r.TimeStats(domain.TimeStats{Empty: true})
	r.StationStats(domain.StationStats{Empty: true})
	r.DurationStats(domain.DurationStats{Empty: true})
	r.UserStats(domain.UserStats{Empty: true})

	out := buf.String()
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte(noTripsNotice)))
	assert.NotContains(t, out, "The most common")
	assert.NotContains(t, out, "Counts of User Types:")
}

func TestRenderer_UserStatsNotices(t *testing.T) {
	tests := []struct {
		name    string
		stats   domain.UserStats
		want    []string
		notWant []string
	}{
		{
			name:    "columns missing",
			stats:   domain.UserStats{UserTypes: []domain.Frequency{{Value: "Subscriber", Count: 2}}},
			want:    []string{genderMissingNotice, birthYearMissingNotice, "Subscriber"},
			notWant: []string{"Counts of Gender:"},
		},
		{
			name: "no birth years recorded",
			stats: domain.UserStats{
				GenderAvailable:    true,
				Genders:            []domain.Frequency{{Value: "Not Specified", Count: 1}},
				BirthYearAvailable: true,
			},
			want:    []string{"Counts of Gender:", "Not Specified", birthYearUnknownNotice},
			notWant: []string{genderMissingNotice, "earliest year"},
		},
		{
			name: "all present",
			stats: domain.UserStats{
				GenderAvailable:    true,
				BirthYearAvailable: true,
				BirthYears:         domain.BirthYearStats{Earliest: 1950, Latest: 2001, MostCommon: 1989, Known: 3},
			},
			want: []string{
				"The earliest year of birth is: 1950",
				"The most recent year of birth is: 2001",
				"The most common year of birth is: 1989",
			},
			notWant: []string{birthYearUnknownNotice, birthYearMissingNotice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			newRenderer(buf).UserStats(tt.stats)

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, buf.String(), w)
			}
		})
	}
}

func TestRenderer_Trips(t *testing.T) {
	buf := new(bytes.Buffer)
	tbl := washingtonTrips()

	newRenderer(buf).Trips(tbl, tbl.Trips[1:], 1)

	out := buf.String()
	assert.Contains(t, out, "Start Station")
	assert.NotContains(t, out, "Gender")
	assert.NotContains(t, out, "Birth Year")
	assert.Contains(t, out, "2017-06-02 13:00:00")
	assert.NotContains(t, out, "2017-06-01 12:00:00")
}
