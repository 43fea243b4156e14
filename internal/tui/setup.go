package tui

import (
	"kasa/internal/config"
	"kasa/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run form answers.
type setupValues struct {
	DBPath string
	Theme  string
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet: where to keep the database, and which theme to use.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.DBPath = config.DefaultDBPath()
	vals.Theme = theme.Active.Name

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to kasa").
				Description("A couple of choices before you start keeping records."),
			huh.NewInput().
				Title("Database file").
				Description("Where your records live. Takes effect on next launch when changed.").
				Value(&vals.DBPath),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig persists the wizard answers (best-effort; the session
// continues even if the write fails).
func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()
	cfg.General.DBPath = a.setupVals.DBPath
	cfg.Appearance.Theme = a.setupVals.Theme
	theme.SetActive(a.setupVals.Theme)
	if err := config.Save(cfg); err != nil {
		a.setStatus("Could not save config: "+err.Error(), true)
	}
}
