// Package trips provides the paged trip table view for the browser.
package trips

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// TimeLayout formats trip timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// column widths keyed by header.
var columnWidths = map[string]int{
	"#":             7,
	"Start Time":    19,
	"End Time":      19,
	"Trip Duration": 13,
	"Start Station": 30,
	"End Station":   30,
	"User Type":     12,
	"Gender":        8,
	"Birth Year":    10,
}

// Headers returns the column headers for a table; optional columns are
// included only when the table carries them.
func Headers(tbl *domain.TripTable) []string {
	headers := []string{"#", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if tbl.HasGender {
		headers = append(headers, "Gender")
	}
	if tbl.HasBirthYear {
		headers = append(headers, "Birth Year")
	}
	return headers
}

// Row formats one trip to match Headers. index is the trip's 0-based position.
func Row(tbl *domain.TripTable, t *domain.Trip, index int) []string {
	end := ""
	if !t.EndTime.IsZero() {
		end = t.EndTime.Format(TimeLayout)
	}
	row := []string{
		strconv.Itoa(index),
		t.StartTime.Format(TimeLayout),
		end,
		strconv.FormatFloat(math.Round(t.Duration*100)/100, 'f', -1, 64),
		t.StartStation,
		t.EndStation,
		t.UserType,
	}
	if tbl.HasGender {
		row = append(row, t.Gender)
	}
	if tbl.HasBirthYear {
		year := ""
		if t.BirthYear > 0 {
			year = strconv.Itoa(t.BirthYear)
		}
		row = append(row, year)
	}
	return row
}

// View shows one window of trips at a time.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	table    table.Model
	data     *domain.TripTable
	offset   int
	pageSize int
	width    int
	height   int
}

// NewView creates a trip view showing pageSize rows per window.
func NewView(s *styles.Styles, km *keymap.KeyMap, pageSize int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}

	t := table.New(table.WithFocused(true), table.WithHeight(pageSize+1))
	t.SetStyles(s.TableStyles())

	return &View{
		styles:   s,
		keymap:   km,
		table:    t,
		pageSize: pageSize,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetTable replaces the data and shows the first window.
func (v *View) SetTable(tbl *domain.TripTable) tea.Cmd {
	v.data = tbl

	headers := Headers(tbl)
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{Title: h, Width: columnWidths[h]}
	}
	// Clear rows first: rows wider than the new columns would be rendered out of range.
	v.table.SetRows(nil)
	v.table.SetColumns(cols)

	return v.moveTo(0)
}

// SetDimensions sets the available size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.table.SetWidth(width)
}

// Update handles paging keys; other keys move the cursor within the window.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && v.data != nil {
		switch k := key.String(); {
		case keymap.Matches(k, v.keymap.NextPage):
			return v, v.moveTo(v.offset + v.pageSize)
		case keymap.Matches(k, v.keymap.PrevPage):
			return v, v.moveTo(v.offset - v.pageSize)
		case keymap.Matches(k, v.keymap.First):
			return v, v.moveTo(0)
		case keymap.Matches(k, v.keymap.Last):
			return v, v.moveTo(v.lastOffset())
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the table.
func (v *View) View() string {
	if v.data == nil {
		return v.styles.Muted.Render("No trips loaded.")
	}
	if v.data.Len() == 0 {
		return v.styles.Warning.Render("No trips match the selected filters.")
	}
	return v.styles.Border.Render(v.table.View())
}

// Offset returns the index of the first visible trip.
func (v *View) Offset() int {
	return v.offset
}

// Rows returns the visible rows.
func (v *View) Rows() []table.Row {
	return v.table.Rows()
}

// Cursor returns the cursor position within the window.
func (v *View) Cursor() int {
	return v.table.Cursor()
}

func (v *View) lastOffset() int {
	n := v.data.Len()
	if n == 0 {
		return 0
	}
	return (n - 1) / v.pageSize * v.pageSize
}

// moveTo shows the window starting at offset, clamped to the table, and
// reports the new window.
func (v *View) moveTo(offset int) tea.Cmd {
	offset = max(0, min(offset, v.lastOffset()))
	v.offset = offset

	window := v.data.Window(offset, v.pageSize)
	rows := make([]table.Row, len(window))
	for i := range window {
		rows[i] = Row(v.data, &window[i], offset+i)
	}
	v.table.SetRows(rows)
	if len(rows) > 0 {
		v.table.SetCursor(0)
	}

	msg := messages.WindowChanged{Offset: offset, Count: len(window), Total: v.data.Len()}
	return func() tea.Msg { return msg }
}
