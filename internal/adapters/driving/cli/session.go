package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

const (
	greeting         = "Hello! Let's explore some US bikeshare data!"
	promptCity       = "Would you like to see data for Chicago, New York, or Washington? [Chicago, New York, Washington]: "
	promptFilter     = "Would you like to filter the data by month or day? [Y/N]: "
	promptRawData    = "Would you like to display trip raw data? [Y/N]: "
	promptMoreRows   = "Would you like to display %d more rows? [Y/N]: "
	promptRestart    = "\nWould you like to restart? [Y/N]: "
	invalidCity      = "Invalid city selection, please choose one of the listed cities."
	invalidAnswer    = "Invalid answer."
	invalidSelection = "Invalid selection."
	noMoreRows       = "No more rows to display."
)

// errEndOfInput stops the session when the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

// errNotYesNo rejects answers to a strict Y/N question.
var errNotYesNo = errors.New("expected y or n")

// SessionConfig holds the dependencies of an interactive session.
type SessionConfig struct {
	In       io.Reader
	Out      io.Writer
	Datasets driving.DatasetService
	Reports  driving.ReportService

	// PageSize is the number of raw rows shown per window.
	PageSize int
}

// Session runs the prompt, report and raw-data loop against a reader and writer.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	render   *renderer
	datasets driving.DatasetService
	reports  driving.ReportService
	pageSize int
}

// NewSession creates an interactive session.
func NewSession(cfg SessionConfig) *Session {
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &Session{
		in:       bufio.NewReader(cfg.In),
		out:      cfg.Out,
		render:   newRenderer(cfg.Out),
		datasets: cfg.Datasets,
		reports:  cfg.Reports,
		pageSize: pageSize,
	}
}

// Run loops through report cycles until the user declines to restart or
// input ends. Load failures end the session with an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, greeting)

	for {
		err := s.cycle(ctx)
		if errors.Is(err, errEndOfInput) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		again, err := s.confirm(promptRestart)
		if errors.Is(err, errEndOfInput) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		logger.Debug("restarting session")
	}
}

// cycle runs one collect, load, report and raw-data pass.
func (s *Session) cycle(ctx context.Context) error {
	sel, err := s.collectFilters()
	if err != nil {
		return err
	}
	logger.Info("selection city=%s month=%s day=%s", sel.City, sel.Month, sel.Day)

	table, err := s.datasets.LoadFiltered(ctx, sel)
	if err != nil {
		return fmt.Errorf("failed to load %s data: %w", sel.City, err)
	}

	s.render.Report(s.reports.Report(sel, table))

	return s.offerRawData(table)
}

// collectFilters prompts for city, then optionally month and day.
func (s *Session) collectFilters() (domain.Selection, error) {
	sel := domain.Selection{Month: domain.AllMonths, Day: domain.AllDays}

	err := s.ask(promptCity, invalidCity, func(in string) error {
		city, err := domain.ParseCity(in)
		sel.City = city
		return err
	})
	if err != nil {
		return sel, err
	}
	s.render.Selected(sel.City.String())
	s.render.rule(ruleWidth)

	var filter bool
	err = s.ask(promptFilter, invalidAnswer, func(in string) error {
		yes, ok := parseYesNo(in)
		if !ok {
			return errNotYesNo
		}
		filter = yes
		return nil
	})
	if err != nil || !filter {
		return sel, err
	}

	err = s.ask(choicePrompt("Which month?", domain.MonthChoices(), s.render), invalidSelection, func(in string) error {
		month, err := domain.ParseMonth(in)
		sel.Month = month
		return err
	})
	if err != nil {
		return sel, err
	}
	s.render.Selected(sel.Month.String())
	s.render.rule(ruleWidth / 2)

	err = s.ask(choicePrompt("Which day?", domain.DayChoices(), s.render), invalidSelection, func(in string) error {
		day, err := domain.ParseDay(in)
		sel.Day = day
		return err
	})
	if err != nil {
		return sel, err
	}
	s.render.Selected(sel.Day.String())
	s.render.rule(ruleWidth)

	return sel, nil
}

// offerRawData pages through the table on request.
func (s *Session) offerRawData(table *domain.TripTable) error {
	show, err := s.confirm(promptRawData)
	for offset := 0; show && err == nil; {
		window := table.Window(offset, s.pageSize)
		if len(window) == 0 {
			fmt.Fprintln(s.out, noMoreRows)
			break
		}
		s.render.Trips(table, window, offset)
		offset += len(window)

		if offset >= table.Len() {
			fmt.Fprintln(s.out, noMoreRows)
			break
		}
		show, err = s.confirm(fmt.Sprintf(promptMoreRows, s.pageSize))
	}
	if err != nil {
		return err
	}
	s.render.rule(ruleWidth + 10)
	return nil
}

// ask prompts until accept returns nil, printing invalid after each rejection.
func (s *Session) ask(prompt, invalid string, accept func(string) error) error {
	for {
		fmt.Fprint(s.out, prompt)
		input, err := s.readLine()
		if err != nil {
			return err
		}
		if err := accept(input); err != nil {
			logger.Debug("rejected input %q: %v", input, err)
			fmt.Fprintln(s.out, invalid)
			continue
		}
		return nil
	}
}

// confirm asks a question where anything but yes means no.
func (s *Session) confirm(prompt string) (bool, error) {
	fmt.Fprint(s.out, prompt)
	input, err := s.readLine()
	if err != nil {
		return false, err
	}
	yes, _ := parseYesNo(input)
	return yes, nil
}

// readLine returns the next trimmed input line. A final line without a
// newline is still returned; errEndOfInput follows it.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimSpace(line), nil
}

func parseYesNo(input string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

func choicePrompt(question string, choices []string, r *renderer) string {
	titled := make([]string, len(choices))
	for i, c := range choices {
		titled[i] = r.titled(c)
	}
	return fmt.Sprintf("%s [%s]: ", question, strings.Join(titled, ", "))
}
