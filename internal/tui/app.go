// Package tui provides the interactive Bubble Tea dashboard for kasa.
package tui

import (
	"kasa/internal/config"
	"kasa/internal/ledger"
	"kasa/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"kasa/internal/tui/theme"
)

// focusArea identifies the widget holding keyboard focus.
type focusArea int

const (
	focusRecords focusArea = iota
	focusCategories
	focusBalance
	focusAreaCount // sentinel
)

// recordsMsg delivers a fresh snapshot after a load or a mutation.
// A non-nil err is a storage failure, which is fatal.
type recordsMsg struct {
	records []ledger.Record
	err     error
}

// App is the root Bubble Tea model.
type App struct {
	db *store.Store

	// Domain snapshot, replaced wholesale after every mutation.
	manager *ledger.Manager
	loaded  bool

	// At most one storage mutation is in flight; key input that would
	// start another is ignored until the pending one reports back.
	busy bool

	fatalErr error

	// UI state
	width    int
	height   int
	focus    focusArea
	cursor   int
	showHelp bool

	// Transient status line (validation failures land here, not stdout).
	status    string
	statusErr bool

	input   inputState
	spinner spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the TUI model around an open store.
func NewApp(db *store.Store) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		db:        db,
		manager:   ledger.NewManager(),
		input:     newInputState(),
		spinner:   sp,
		needSetup: !config.Exists(),
	}
}

// Err returns the storage error that ended the session, if any.
func (a App) Err() error {
	return a.fatalErr
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadCmd(a.db), a.spinner.Tick)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case recordsMsg:
		a.busy = false
		if msg.err != nil {
			a.fatalErr = msg.err
			return a, tea.Quit
		}
		a.manager = ledger.NewManagerWith(msg.records)
		a.clampCursor()

		if !a.loaded {
			a.loaded = true
			if a.needSetup {
				a.setupForm = newSetupForm(&a.setupVals)
				if a.width > 0 {
					a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
				}
				return a, a.setupForm.Init()
			}
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded || a.busy {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.) to whichever
	// component holds the keyboard.
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.input.active() {
		return a, a.input.update(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.input.active() {
		return a.handleInputKey(msg)
	}

	if a.showHelp {
		switch msg.String() {
		case "esc", "q", "h", "?":
			a.showHelp = false
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "h", "?":
		a.showHelp = true
		return a, nil

	case "tab":
		a.focus = (a.focus + 1) % focusAreaCount
		return a, nil

	case "shift+tab":
		a.focus = (a.focus - 1 + focusAreaCount) % focusAreaCount
		return a, nil

	case "up":
		if a.focus != focusRecords || a.manager.Len() == 0 {
			return a, nil
		}
		if a.cursor == 0 {
			a.cursor = a.manager.Len() - 1
		} else {
			a.cursor--
		}
		return a, nil

	case "down":
		if a.focus != focusRecords || a.manager.Len() == 0 {
			return a, nil
		}
		a.cursor = (a.cursor + 1) % a.manager.Len()
		return a, nil

	case "delete", "d":
		if a.focus != focusRecords || a.manager.Len() == 0 || a.busy {
			return a, nil
		}
		selected := a.manager.All()[a.cursor]
		a.busy = true
		a.setStatus("Deleting...", false)
		return a, tea.Batch(deleteCmd(a.db, selected.ID), a.spinner.Tick)

	case "a":
		if a.focus != focusRecords || a.busy {
			return a, nil
		}
		a.clearStatus()
		return a, a.input.startEntering()

	case "enter":
		if a.focus != focusRecords || a.manager.Len() == 0 || a.busy {
			return a, nil
		}
		a.clearStatus()
		selected := a.manager.All()[a.cursor]
		return a, a.input.startEditing(selected, a.cursor)
	}

	return a, nil
}

func (a App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return a, a.input.next()
	case "shift+tab":
		return a, a.input.prev()
	case "esc":
		a.input.reset()
		a.clearStatus()
		return a, nil
	case "enter":
		return a.confirmInput()
	}

	return a, a.input.update(msg)
}

// confirmInput validates the four buffers and dispatches the mutation.
// Validation failure rejects the attempt without touching storage; the
// buffers are cleared and the failure is surfaced in the status bar.
func (a App) confirmInput() (tea.Model, tea.Cmd) {
	vals := a.input.values()
	mode := a.input.mode
	target := a.input.target
	a.input.reset()

	entry, err := ledger.ParseEntry(vals[0], vals[1], vals[2], vals[3])
	if err != nil {
		a.setStatus("Invalid input: "+err.Error(), true)
		return a, nil
	}

	if mode == modeEditing {
		all := a.manager.All()
		if target < 0 || target >= len(all) {
			return a, nil
		}
		updated := entry.Record(all[target].ID)
		a.busy = true
		a.setStatus("Saving...", false)
		return a, tea.Batch(updateCmd(a.db, updated), a.spinner.Tick)
	}

	a.busy = true
	a.setStatus("Saving...", false)
	return a, tea.Batch(insertCmd(a.db, entry), a.spinner.Tick)
}

func (a *App) clampCursor() {
	if a.cursor >= a.manager.Len() {
		a.cursor = a.manager.Len() - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func (a *App) clearStatus() {
	a.status = ""
	a.statusErr = false
}

// ─── Storage commands ───────────────────────────────────────────

// loadCmd reads the full record set in a background goroutine.
func loadCmd(db *store.Store) tea.Cmd {
	return func() tea.Msg {
		records, err := db.LoadRecords()
		return recordsMsg{records: records, err: err}
	}
}

// deleteCmd removes the record, restores the dense id sequence, and
// reloads. The steps run in order; the UI waits for the single result.
func deleteCmd(db *store.Store, id int) tea.Cmd {
	return func() tea.Msg {
		if err := db.DeleteRecord(id); err != nil {
			return recordsMsg{err: err}
		}
		if err := db.Renumber(); err != nil {
			return recordsMsg{err: err}
		}
		records, err := db.LoadRecords()
		return recordsMsg{records: records, err: err}
	}
}

// insertCmd renumbers first so the id space is dense, takes the next id,
// inserts, and reloads.
func insertCmd(db *store.Store, entry ledger.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := db.Renumber(); err != nil {
			return recordsMsg{err: err}
		}
		id, err := db.NextID()
		if err != nil {
			return recordsMsg{err: err}
		}
		if err := db.InsertRecord(entry.Record(id)); err != nil {
			return recordsMsg{err: err}
		}
		records, err := db.LoadRecords()
		return recordsMsg{records: records, err: err}
	}
}

// updateCmd overwrites the record under its existing id and reloads.
// No renumbering: updates do not disturb the id sequence.
func updateCmd(db *store.Store, r ledger.Record) tea.Cmd {
	return func() tea.Msg {
		if err := db.UpdateRecord(r); err != nil {
			return recordsMsg{err: err}
		}
		records, err := db.LoadRecords()
		return recordsMsg{records: records, err: err}
	}
}
