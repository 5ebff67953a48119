package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected MonthFilter
	}{
		{"all", AllMonths},
		{"ALL", AllMonths},
		{"january", 1},
		{" June ", 6},
		{"December", 12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMonth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestParseMonth_Unknown(t *testing.T) {
	for _, input := range []string{"", "jan", "13", "smarch"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMonth(input)
			assert.ErrorIs(t, err, ErrUnknownMonth)
		})
	}
}

func TestMonthFilter_String(t *testing.T) {
	assert.Equal(t, "all", AllMonths.String())
	assert.Equal(t, "march", MonthFilter(3).String())
	assert.True(t, AllMonths.IsAll())
	assert.False(t, MonthFilter(3).IsAll())
}

func TestMonthName_OutOfRange(t *testing.T) {
	assert.Empty(t, MonthName(0))
	assert.Empty(t, MonthName(13))
	assert.Equal(t, "may", MonthName(5))
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		input    string
		expected DayFilter
	}{
		{"all", AllDays},
		{"Monday", "monday"},
		{" SUNDAY", "sunday"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseDay_Unknown(t *testing.T) {
	_, err := ParseDay("funday")
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestDayFilter_IsAll(t *testing.T) {
	assert.True(t, AllDays.IsAll())
	assert.True(t, DayFilter("").IsAll())
	assert.False(t, DayFilter("monday").IsAll())
	assert.Equal(t, "all", DayFilter("").String())
}

func TestChoices(t *testing.T) {
	months := MonthChoices()
	days := DayChoices()

	assert.Len(t, months, 13)
	assert.Equal(t, "all", months[0])
	assert.Len(t, days, 8)
	assert.Equal(t, "all", days[0])
	assert.Equal(t, "monday", days[1])

	for _, d := range days {
		_, err := ParseDay(d)
		assert.NoError(t, err)
	}
	for _, m := range months {
		_, err := ParseMonth(m)
		assert.NoError(t, err)
	}
}

func TestSelection_Matches(t *testing.T) {
	// 2017-03-06 is a Monday.
	trip := NewTrip(Trip{StartTime: time.Date(2017, 3, 6, 8, 0, 0, 0, time.UTC)})

	tests := []struct {
		name     string
		sel      Selection
		expected bool
	}{
		{"unfiltered", Selection{Month: AllMonths, Day: AllDays}, true},
		{"month match", Selection{Month: 3, Day: AllDays}, true},
		{"month mismatch", Selection{Month: 4, Day: AllDays}, false},
		{"day match", Selection{Month: AllMonths, Day: "monday"}, true},
		{"day mismatch", Selection{Month: AllMonths, Day: "tuesday"}, false},
		{"both match", Selection{Month: 3, Day: "monday"}, true},
		{"one mismatch", Selection{Month: 3, Day: "friday"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sel.Matches(&trip))
		})
	}
}

func TestMonthFilter_MarshalText(t *testing.T) {
	b, err := MonthFilter(3).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "march", string(b))

	b, err = AllMonths.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "all", string(b))
}
