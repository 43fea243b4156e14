package components

import (
	"fmt"

	"kasa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, a
// transient status message in the middle, record count and balance on the
// right. Validation failures surface here instead of vanishing to stdout.
func RenderStatusBar(width int, message string, isErr bool, records int, balance float32) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [h]elp  [a]dd  [enter]edit  [del]ete  [q]uit"
	right := fmt.Sprintf("%d records  balance %.2f ", records, balance)

	mid := ""
	if message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(t.Yellow)
		if isErr {
			msgStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		mid = msgStyle.Render(message)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	bar := left
	for i := 0; i < leftPad; i++ {
		bar += " "
	}
	bar += mid
	for i := 0; i < rightPad; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
