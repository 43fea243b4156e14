package tui

import (
	"fmt"
	"strings"

	"kasa/internal/ledger"
	"kasa/internal/tui/components"
	"kasa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const minTerminalWidth = 60

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  kasa needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	statusBar := components.RenderStatusBar(
		a.width, a.status, a.statusErr, a.manager.Len(), a.manager.Balance())

	contentH := a.height - lipgloss.Height(statusBar)
	if contentH < 5 {
		contentH = 5
	}

	var content string
	if a.input.active() {
		content = a.viewInput()
	} else {
		content = a.viewWidgets(contentH)
	}

	content = lipgloss.Place(a.width, contentH, lipgloss.Left, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	body := a.spinner.View() + " Loading records..."
	card := cardStyle.Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Browsing"))
	b.WriteString("\n")
	browse := []struct{ key, desc string }{
		{"tab / shift+tab", "Cycle widget focus"},
		{"up / down", "Move record selection"},
		{"a", "Add a record"},
		{"enter", "Edit the selected record"},
		{"del / d", "Delete the selected record"},
		{"h ?", "Toggle this help"},
		{"q", "Quit"},
	}
	for _, bind := range browse {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-16s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Entry mode"))
	b.WriteString("\n")
	entry := []struct{ key, desc string }{
		{"tab / shift+tab", "Next / previous field"},
		{"enter", "Confirm"},
		{"esc", "Cancel"},
	}
	for _, bind := range entry {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-16s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press esc or q to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// viewInput renders the four stacked entry fields, active field accented.
func (a App) viewInput() string {
	t := theme.Active

	title := "New record"
	if a.input.mode == modeEditing {
		title = "Edit record"
	}

	fieldW := a.width * 2 / 3
	if fieldW > 100 {
		fieldW = 100
	}

	var b strings.Builder
	for i := range a.input.fields {
		borderColor := t.Border
		titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		if i == a.input.focus {
			borderColor = t.BorderAccent
			titleStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		}

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Width(fieldW).
			Padding(0, 1)

		label := inputTitles[i]
		if len(label) > fieldW-2 {
			label = label[:fieldW-2]
		}

		b.WriteString(titleStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(box.Render(a.input.fields[i].View()))
		b.WriteString("\n")
	}

	return components.ContentCard(title, b.String(), fieldW+4, true)
}

func (a App) viewWidgets(contentH int) string {
	leftW := a.width / 2
	rightW := a.width - leftW

	records := a.viewRecords(leftW, contentH)

	rightH := components.LayoutRow(contentH, 2)
	categories := a.viewCategories(rightW)
	balance := a.viewBalance(rightW, rightH[1])

	right := lipgloss.JoinVertical(lipgloss.Left, categories, balance)

	return lipgloss.JoinHorizontal(lipgloss.Top, records, right)
}

func (a App) viewRecords(outerW, outerH int) string {
	t := theme.Active

	lines := a.manager.FormatAll()
	innerW := components.CardInnerWidth(outerW)
	visible := outerH - 3 // border + title
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor in the visible window.
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	normal := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selected := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Selection).
		Bold(true)

	var b strings.Builder
	if len(lines) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("No records yet. Press 'a' to add one."))
	}
	for i := start; i < end; i++ {
		line := lines[i]
		if len(line) > innerW-2 {
			line = line[:innerW-2]
		}
		if i == a.cursor && a.focus == focusRecords {
			b.WriteString(selected.Render("> " + line))
		} else {
			b.WriteString(normal.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return components.ContentCard("Records", b.String(), outerW, a.focus == focusRecords)
}

func (a App) viewCategories(outerW int) string {
	labels, values := a.manager.CategorySeries()
	innerW := components.CardInnerWidth(outerW)

	rows := make([]components.BarRow, len(labels))
	for i := range labels {
		rows[i] = components.BarRow{
			Label: labels[i],
			Value: values[i],
			Color: theme.CategoryColor(ledger.Categories[i]),
		}
	}

	return components.ContentCard("Expenses by category",
		components.BarChart(rows, innerW), outerW, a.focus == focusCategories)
}

func (a App) viewBalance(outerW, _ int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerW)

	points := a.manager.BalanceSeries()
	var body string
	if len(points) == 0 {
		body = lipgloss.NewStyle().Foreground(t.TextDim).Render("No data yet.")
	} else {
		values := make([]float64, len(points))
		lo, hi := points[0].Balance, points[0].Balance
		for i, p := range points {
			values[i] = p.Balance
			if p.Balance < lo {
				lo = p.Balance
			}
			if p.Balance > hi {
				hi = p.Balance
			}
		}

		rangeStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		var b strings.Builder
		b.WriteString(rangeStyle.Render(fmt.Sprintf("low %.2f   high %.2f", lo, hi)))
		b.WriteString("\n")
		b.WriteString(components.Sparkline(values, innerW, t.AccentBright))
		b.WriteString("\n")
		b.WriteString(components.AxisLabels(a.manager.DateLabels(4), innerW))
		body = b.String()
	}

	return components.ContentCard("Balance over time", body, outerW, a.focus == focusBalance)
}
