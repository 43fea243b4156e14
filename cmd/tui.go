package cmd

import (
	"fmt"

	"kasa/internal/config"
	"kasa/internal/tui"
	"kasa/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive ledger",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	app := tui.NewApp(db)
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if a, ok := final.(tui.App); ok && a.Err() != nil {
		return fmt.Errorf("storage error: %w", a.Err())
	}

	return nil
}
