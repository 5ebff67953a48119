package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/views/trips"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// App is the trip browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// selection is the city and filters being browsed.
	selection domain.Selection

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	tripsView *trips.View
	statusBar *status.Bar

	// watcher reloads the table when the dataset changes. Optional.
	watcher *Watcher

	// err holds the load error, if any.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first window size has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser for the given selection.
func NewApp(ports *Ports, sel domain.Selection) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if !sel.City.IsValid() {
		return nil, fmt.Errorf("creating app: %w", ErrInvalidSelection)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	bar := status.NewBar(s, km)
	bar.SetSelection(sel)

	h := help.New()
	h.Styles.FullKey = s.Subtitle
	h.Styles.FullDesc = s.Help

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		selection: sel,
		styles:    s,
		keymap:    km,
		help:      h,
		tripsView: trips.NewView(s, km, ports.PageSize()),
		statusBar: bar,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithWatcher reloads the table whenever w reports a change.
func (a *App) WithWatcher(w *Watcher) *App {
	a.watcher = w
	return a
}

// Init starts loading the table.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("bikeshare - " + a.selection.City.String()),
		a.loadTable(),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.watcher.Next())
	}
	return tea.Batch(cmds...)
}

func (a *App) loadTable() tea.Cmd {
	ctx, sel, datasets := a.ctx, a.selection, a.ports.Datasets
	return func() tea.Msg {
		table, err := datasets.LoadFiltered(ctx, sel)
		return messages.TableLoaded{Table: table, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.TableLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("browse: %v", msg.Err)
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		return a, a.tripsView.SetTable(msg.Table)

	case messages.DatasetChanged:
		logger.Info("browse: reloading %s", msg.Path)
		a.statusBar.SetState(status.StateLoading)
		a.statusBar.SetMessage("dataset changed, reloading")
		var next tea.Cmd
		if a.watcher != nil {
			next = a.watcher.Next()
		}
		return a, tea.Batch(a.loadTable(), next)

	case messages.WatchFailed:
		logger.Warn("browse: watch stopped: %v", msg.Err)
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage("watch stopped: " + msg.Err.Error())
		return a, nil

	case messages.WindowChanged:
		a.statusBar, cmd = a.statusBar.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch k := msg.String(); {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
		a.tripsView, cmd = a.tripsView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	title := a.styles.Title.Render("Bikeshare trips")
	var body string
	if a.err != nil {
		body = a.styles.Error.Render(fmt.Sprintf("Failed to load trips: %v", a.err))
	} else {
		body = a.tripsView.View()
	}

	parts := []string{title, "", body}
	if a.help.ShowAll {
		parts = append(parts, "", a.help.View(a.keymap))
	}
	parts = append(parts, "", a.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.tripsView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}

// Selection returns the selection being browsed.
func (a *App) Selection() domain.Selection {
	return a.selection
}

// Err returns the load error, if any.
func (a *App) Err() error {
	return a.err
}

// Ready returns true once dimensions are known.
func (a *App) Ready() bool {
	return a.ready
}

// StatusBar returns the status bar, for inspection.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// TripsView returns the trip table view.
func (a *App) TripsView() *trips.View {
	return a.tripsView
}
