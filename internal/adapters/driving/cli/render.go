package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/views/trips"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

const (
	noTripsNotice          = "No trips match the selected filters."
	genderMissingNotice    = "Gender Information is Not Available for the Selected City."
	birthYearMissingNotice = "Year of Birth Information is Not Available for the Selected City."
	birthYearUnknownNotice = "No year of birth recorded for the selected trips."
	ruleWidth              = 40
)

// renderer writes reports and raw trip rows as plain terminal text.
type renderer struct {
	out    io.Writer
	styles *styles.Styles
	title  cases.Caser
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{
		out:    out,
		styles: styles.DefaultStyles(),
		title:  cases.Title(language.English),
	}
}

// titled title-cases a lowercase name such as "new york" or "monday".
func (r *renderer) titled(s string) string {
	return r.title.String(s)
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

func (r *renderer) rule(width int) {
	r.println(r.styles.Muted.Render(strings.Repeat("-", width)))
}

func (r *renderer) heading(text string) {
	r.println(r.styles.Heading.Render(text))
	r.println()
}

func (r *renderer) notice(text string) {
	r.println(r.styles.Warning.Render(text))
}

func (r *renderer) elapsed(d time.Duration) {
	r.printf("\nThis took %s seconds.\n", strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
	r.rule(ruleWidth)
}

// Selected echoes a prompt answer.
func (r *renderer) Selected(value string) {
	r.printf("You selected: %q\n", r.titled(value))
}

// Report renders the four report sections in order.
func (r *renderer) Report(rep domain.Report) {
	r.printf("\n%s %s\n\n", r.styles.Title.Render("Trips:"), r.selection(rep.Selection, rep.Trips))
	r.TimeStats(rep.Time)
	r.StationStats(rep.Station)
	r.DurationStats(rep.Duration)
	r.UserStats(rep.User)
}

// TimeStats renders the most frequent times of travel.
func (r *renderer) TimeStats(s domain.TimeStats) {
	r.heading("Calculating The Most Frequent Times of Travel...")
	if s.Empty {
		r.notice(noTripsNotice)
	} else {
		r.printf("The most common month is %s, Count: %d\n\n", r.titled(domain.MonthName(s.Month)), s.MonthCount)
		r.printf("The most common day of week is %s, Count: %d\n\n", r.titled(s.Day), s.DayCount)
		r.printf("The most common start hour is %d, Count: %d\n", s.Hour, s.HourCount)
	}
	r.elapsed(s.Elapsed)
}

// StationStats renders the most popular stations and route.
func (r *renderer) StationStats(s domain.StationStats) {
	r.println()
	r.heading("Calculating The Most Popular Stations and Trip...")
	if s.Empty {
		r.notice(noTripsNotice)
	} else {
		r.printf("The most commonly used start station is %q, Count: %d\n\n", s.Start.Value, s.Start.Count)
		r.printf("The most commonly used end station is %q, Count: %d\n\n", s.End.Value, s.End.Count)
		r.printf("The most frequent combination of start station and end station trip is %q, Count: %d\n",
			s.Route.Value, s.Route.Count)
	}
	r.elapsed(s.Elapsed)
}

// DurationStats renders total and mean trip duration.
func (r *renderer) DurationStats(s domain.DurationStats) {
	r.println()
	r.heading("Calculating Trip Duration...")
	if s.Empty {
		r.notice(noTripsNotice)
	} else {
		r.printf("The total travel time for all trips is %s (A total of %s seconds.)\n",
			formatHMS(s.TotalHMS()), formatSeconds(s.Total))
		r.printf("The average travel time for all trips is %s (A total of %s seconds.)\n",
			formatHMS(s.MeanHMS()), formatSeconds(s.Mean))
	}
	r.elapsed(s.Elapsed)
}

// UserStats renders user types, genders and birth years. Missing columns
// produce a notice rather than an error.
func (r *renderer) UserStats(s domain.UserStats) {
	r.println()
	r.heading("Calculating User Stats...")
	if s.Empty {
		r.notice(noTripsNotice)
		r.elapsed(s.Elapsed)
		return
	}

	r.println("Counts of User Types:")
	r.println(r.frequencyTable("User Type", s.UserTypes))

	r.println()
	if s.GenderAvailable {
		r.println("Counts of Gender:")
		r.println(r.frequencyTable("Gender", s.Genders))
	} else {
		r.notice(genderMissingNotice)
	}

	r.println()
	switch {
	case !s.BirthYearAvailable:
		r.notice(birthYearMissingNotice)
	case s.BirthYears.Known == 0:
		r.notice(birthYearUnknownNotice)
	default:
		r.printf("The earliest year of birth is: %d\n", s.BirthYears.Earliest)
		r.printf("The most recent year of birth is: %d\n", s.BirthYears.Latest)
		r.printf("The most common year of birth is: %d\n", s.BirthYears.MostCommon)
	}
	r.elapsed(s.Elapsed)
}

// Trips renders a window of raw trip rows. offset is the index of the first row.
func (r *renderer) Trips(tbl *domain.TripTable, window []domain.Trip, offset int) {
	rows := make([][]string, 0, len(window))
	for i := range window {
		rows = append(rows, trips.Row(tbl, &window[i], offset+i))
	}
	r.println(r.newTable(trips.Headers(tbl), rows).String())
}

func (r *renderer) frequencyTable(label string, freqs []domain.Frequency) string {
	rows := make([][]string, 0, len(freqs))
	for _, f := range freqs {
		rows = append(rows, []string{f.Value, strconv.Itoa(f.Count)})
	}
	return r.newTable([]string{label, "Count"}, rows).String()
}

func (r *renderer) newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Muted).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.TableHeader
			}
			return r.styles.TableCell
		}).
		Headers(headers...).
		Rows(rows...)
}

func (r *renderer) selection(sel domain.Selection, count int) string {
	return fmt.Sprintf("%d in %s (month: %s, day: %s)",
		count, r.titled(sel.City.String()), r.titled(sel.Month.String()), r.titled(sel.Day.String()))
}

func formatHMS(h domain.HMS) string {
	return fmt.Sprintf("%d Hours %d Minutes %s Seconds", h.Hours, h.Minutes, formatSeconds(h.Seconds))
}

// formatSeconds prints at most two decimals and drops trailing zeros.
func formatSeconds(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
