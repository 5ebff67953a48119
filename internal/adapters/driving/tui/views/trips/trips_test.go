package trips

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func sampleTable(n int, withUserColumns bool) *domain.TripTable {
	tbl := &domain.TripTable{City: domain.CityChicago, HasGender: withUserColumns, HasBirthYear: withUserColumns}
	start := time.Date(2017, 6, 5, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		tbl.Trips = append(tbl.Trips, domain.NewTrip(domain.Trip{
			ID:           fmt.Sprint(i + 1),
			StartTime:    start.Add(time.Duration(i) * time.Hour),
			EndTime:      start.Add(time.Duration(i)*time.Hour + 10*time.Minute),
			Duration:     600.5,
			StartStation: fmt.Sprintf("Station %d", i),
			EndStation:   "Station 0",
			UserType:     "Subscriber",
			Gender:       "Female",
			BirthYear:    1990,
		}))
	}
	return tbl
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func windowOf(t *testing.T, cmd tea.Cmd) messages.WindowChanged {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.WindowChanged)
	require.True(t, ok)
	return msg
}

func TestHeaders_OptionalColumns(t *testing.T) {
	assert.Len(t, Headers(sampleTable(0, false)), 7)

	headers := Headers(sampleTable(0, true))
	assert.Len(t, headers, 9)
	assert.Equal(t, "Gender", headers[7])
	assert.Equal(t, "Birth Year", headers[8])
}

func TestRow(t *testing.T) {
	tbl := sampleTable(1, true)

	row := Row(tbl, &tbl.Trips[0], 0)

	assert.Equal(t, []string{
		"0", "2017-06-05 08:00:00", "2017-06-05 08:10:00", "600.5",
		"Station 0", "Station 0", "Subscriber", "Female", "1990",
	}, row)
}

func TestRow_MissingValues(t *testing.T) {
	tbl := sampleTable(1, true)
	tbl.Trips[0].BirthYear = 0
	tbl.Trips[0].EndTime = time.Time{}

	row := Row(tbl, &tbl.Trips[0], 3)

	assert.Equal(t, "3", row[0])
	assert.Equal(t, "", row[2])
	assert.Equal(t, "", row[8])
}

func TestView_SetTable_ShowsFirstWindow(t *testing.T) {
	v := NewView(nil, nil, 5)

	w := windowOf(t, v.SetTable(sampleTable(12, true)))

	assert.Equal(t, messages.WindowChanged{Offset: 0, Count: 5, Total: 12}, w)
	assert.Len(t, v.Rows(), 5)
	assert.Equal(t, "Station 0", v.Rows()[0][4])
}

func TestView_Paging(t *testing.T) {
	v := NewView(nil, nil, 5)
	v.SetTable(sampleTable(12, false))

	v, cmd := v.Update(keyMsg("n"))
	assert.Equal(t, messages.WindowChanged{Offset: 5, Count: 5, Total: 12}, windowOf(t, cmd))

	v, cmd = v.Update(keyMsg("pgdown"))
	assert.Equal(t, messages.WindowChanged{Offset: 10, Count: 2, Total: 12}, windowOf(t, cmd))
	assert.Len(t, v.Rows(), 2)

	// Paging past the end stays on the last window.
	v, cmd = v.Update(keyMsg("n"))
	assert.Equal(t, 10, windowOf(t, cmd).Offset)

	v, cmd = v.Update(keyMsg("p"))
	assert.Equal(t, 5, windowOf(t, cmd).Offset)

	v, cmd = v.Update(keyMsg("g"))
	assert.Equal(t, 0, windowOf(t, cmd).Offset)

	v, cmd = v.Update(keyMsg("pgup"))
	assert.Equal(t, 0, windowOf(t, cmd).Offset)

	_, cmd = v.Update(keyMsg("G"))
	assert.Equal(t, 10, windowOf(t, cmd).Offset)
}

func TestView_CursorMovesWithinWindow(t *testing.T) {
	v := NewView(nil, nil, 5)
	v.SetTable(sampleTable(12, false))

	v, _ = v.Update(keyMsg("down"))

	assert.Equal(t, 1, v.Cursor())
	assert.Equal(t, 0, v.Offset())
}

func TestView_EmptyTable(t *testing.T) {
	v := NewView(nil, nil, 5)

	w := windowOf(t, v.SetTable(sampleTable(0, false)))

	assert.Equal(t, messages.WindowChanged{}, w)
	assert.Contains(t, v.View(), "No trips match")
}

func TestView_NoTable(t *testing.T) {
	v := NewView(nil, nil, 0)

	_, cmd := v.Update(keyMsg("n"))

	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "No trips loaded")
}

func TestView_RendersRows(t *testing.T) {
	v := NewView(nil, nil, 3)
	v.SetDimensions(200, 20)
	v.SetTable(sampleTable(4, true))

	out := v.View()

	assert.Contains(t, out, "Start Station")
	assert.Contains(t, out, "Station 2")
	assert.NotContains(t, out, "Station 3")
}
