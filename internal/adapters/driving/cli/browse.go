package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

var (
	browseCity  string
	browseMonth string
	browseDay   string
	browseWatch bool
)

// browseLogFile receives verbose output while the browser owns the screen.
const browseLogFile = "bikeshare-browse.log"

// errNotTerminal is returned when browse is run without a terminal.
var errNotTerminal = errors.New("browse requires an interactive terminal; use 'bikeshare stats' instead")

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse raw trips in the terminal UI",
	Long: `Opens a full-screen table of the filtered trips for a city. With --watch
the table reloads whenever the dataset file changes.

Controls:
  n/pgdn   - Next rows
  p/pgup   - Previous rows
  ↑/k, ↓/j - Move within the rows
  ?        - Toggle help
  q/esc    - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseCity, "city", "c", "", "city: chicago, new york or washington")
	browseCmd.Flags().StringVarP(&browseMonth, "month", "m", "all", "month name or all")
	browseCmd.Flags().StringVarP(&browseDay, "day", "d", "all", "day of week or all")
	browseCmd.Flags().BoolVarP(&browseWatch, "watch", "w", false, "reload when the dataset file changes")
	_ = browseCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) (err error) {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	sel, err := parseSelection(browseCity, browseMonth, browseDay)
	if err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	// Verbose output would corrupt the alternate screen.
	if logger.IsVerbose() {
		logPath := filepath.Join(os.TempDir(), browseLogFile)
		f, err := tea.LogToFile(logPath, "bikeshare")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
		defer logger.SetOutput(cmd.ErrOrStderr())
		cmd.PrintErrf("Verbose log: %s\n", logPath)
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(datasetService, settingsService), sel)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if browseWatch {
		info, err := datasetService.Describe(sel.City)
		if err != nil {
			return err
		}
		w, err := tui.NewWatcher(info.Path)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", info.Path, err)
		}
		defer w.Close()
		app.WithWatcher(w)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
