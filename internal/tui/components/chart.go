package components

import (
	"fmt"
	"strings"

	"kasa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BarRow is one labeled bar of a horizontal bar chart.
type BarRow struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart renders rows as horizontal bars scaled to the largest value.
// Zero-valued rows keep their label so the chart stays dense.
func BarChart(rows []BarRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	for _, r := range rows {
		if len(r.Label) > labelW {
			labelW = len(r.Label)
		}
	}

	peak := 0.0
	for _, r := range rows {
		if r.Value > peak {
			peak = r.Value
		}
	}
	if peak == 0 {
		peak = 1
	}

	// label + space + bar + space + amount
	valueW := 9
	barW := width - labelW - valueW - 2
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, r := range rows {
		n := int(r.Value / peak * float64(barW))
		if n == 0 && r.Value > 0 {
			n = 1
		}
		barStyle := lipgloss.NewStyle().Foreground(r.Color)

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, r.Label)))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(strings.Repeat(" ", barW-n))
		b.WriteString(valStyle.Render(fmt.Sprintf("%9.2f", r.Value)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Sparkline renders a unicode sparkline from values, normalized between the
// series minimum and maximum so negative balances still chart sensibly.
// Series longer than width are downsampled.
func Sparkline(values []float64, width int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	if len(values) > width {
		if width == 1 {
			values = values[len(values)-1:]
		} else {
			sampled := make([]float64, width)
			for i := range sampled {
				sampled[i] = values[i*(len(values)-1)/(width-1)]
			}
			values = sampled
		}
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// AxisLabels spreads the given labels across width columns, left to right.
// Labels that would overlap their predecessor are dropped.
func AxisLabels(labels []string, width int) string {
	if len(labels) == 0 || width <= 0 {
		return ""
	}
	t := theme.Active

	buf := make([]byte, width)
	for i := range buf {
		buf[i] = ' '
	}

	lastEnd := -1
	for i, lbl := range labels {
		pos := 0
		if len(labels) > 1 {
			pos = i * (width - len(lbl)) / (len(labels) - 1)
		}
		if pos <= lastEnd || pos+len(lbl) > width {
			continue
		}
		copy(buf[pos:], lbl)
		lastEnd = pos + len(lbl)
	}

	style := lipgloss.NewStyle().Foreground(t.TextDim)
	return style.Render(strings.TrimRight(string(buf), " "))
}
