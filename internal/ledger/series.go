package ledger

import (
	"sort"
	"time"
)

// BalancePoint is one point of the running-balance series.
type BalancePoint struct {
	Date    time.Time
	Balance float64
}

// BalanceSeries computes the cumulative balance over time. Records are
// walked in set order; income adds, expense subtracts. When several records
// share a date, the point keeps the balance after the last of them. Points
// come back sorted by date.
func (m *Manager) BalanceSeries() []BalancePoint {
	byDate := make(map[time.Time]float64)
	var balance float64
	for _, r := range m.records {
		if r.Direction == Income {
			balance += float64(r.Amount)
		} else {
			balance -= float64(r.Amount)
		}
		byDate[r.Date] = balance
	}

	points := make([]BalancePoint, 0, len(byDate))
	for d, b := range byDate {
		points = append(points, BalancePoint{Date: d, Balance: b})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// CategorySeries returns per-category expense totals as parallel label and
// value slices in canonical category order, ready for a bar chart.
func (m *Manager) CategorySeries() (labels []string, values []float64) {
	totals := m.CategoryTotals()
	labels = make([]string, len(Categories))
	values = make([]float64, len(Categories))
	for i, c := range Categories {
		labels[i] = c.Label()
		values[i] = float64(totals[c])
	}
	return labels, values
}

// DateLabels picks at most labelCount x-axis labels from the distinct record
// dates, stepping evenly through them. The last date is always included so
// the axis never ends on a gap.
func (m *Manager) DateLabels(labelCount int) []string {
	seen := make(map[time.Time]struct{})
	var dates []time.Time
	for _, r := range m.records {
		if _, ok := seen[r.Date]; ok {
			continue
		}
		seen[r.Date] = struct{}{}
		dates = append(dates, r.Date)
	}
	if len(dates) == 0 {
		return nil
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	if len(dates) <= labelCount {
		labels := make([]string, len(dates))
		for i, d := range dates {
			labels[i] = d.Format(DateLayout)
		}
		return labels
	}

	step := len(dates) / max(labelCount, 1)
	if step < 1 {
		step = 1
	}
	var labels []string
	for i := 0; i < len(dates); i += step {
		labels = append(labels, dates[i].Format(DateLayout))
	}
	last := dates[len(dates)-1].Format(DateLayout)
	if labels[len(labels)-1] != last {
		labels = append(labels, last)
	}
	return labels
}
