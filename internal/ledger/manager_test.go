package ledger

import (
	"testing"
	"time"
)

func sampleManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	m.Add(NewRecord(1, Income, 200, nil, mustDate(t, "22.11.2025")))
	m.Add(NewRecord(2, Expense, 50, catPtr(Fun), mustDate(t, "22.10.2025")))
	return m
}

func TestManagerTotals(t *testing.T) {
	m := sampleManager(t)

	if got := m.TotalIncome(); got != 200 {
		t.Errorf("TotalIncome() = %v, want 200", got)
	}
	if got := m.TotalExpenses(); got != 50 {
		t.Errorf("TotalExpenses() = %v, want 50", got)
	}
	if got := m.Balance(); got != 150 {
		t.Errorf("Balance() = %v, want 150", got)
	}
}

func TestManagerTotalsNeverNegativeExpenses(t *testing.T) {
	m := NewManager()
	m.Add(NewRecord(1, Expense, 500, nil, mustDate(t, "25.12.2025")))
	m.Add(NewRecord(2, Expense, 150, catPtr(Shopping), mustDate(t, "25.12.2025")))

	if got := m.TotalExpenses(); got != 650 {
		t.Errorf("TotalExpenses() = %v, want 650", got)
	}
	if got := m.Balance(); got != -650 {
		t.Errorf("Balance() = %v, want -650", got)
	}
}

func TestManagerCategoryTotals(t *testing.T) {
	m := sampleManager(t)
	totals := m.CategoryTotals()

	if len(totals) != len(Categories) {
		t.Fatalf("CategoryTotals() has %d keys, want %d", len(totals), len(Categories))
	}
	for _, c := range Categories {
		want := float32(0)
		if c == Fun {
			want = 50
		}
		if got := totals[c]; got != want {
			t.Errorf("totals[%s] = %v, want %v", c, got, want)
		}
	}
}

func TestManagerCategoryTotalsIgnoresIncome(t *testing.T) {
	m := NewManager()
	// A categorized income record must not leak into expense totals.
	m.Add(NewRecord(1, Income, 300, catPtr(Fun), mustDate(t, "01.01.2025")))
	m.Add(NewRecord(2, Expense, 20, catPtr(Fun), mustDate(t, "02.01.2025")))

	if got := m.CategoryTotals()[Fun]; got != 20 {
		t.Errorf("totals[Fun] = %v, want 20", got)
	}
}

func TestManagerByID(t *testing.T) {
	m := sampleManager(t)

	r, ok := m.ByID(2)
	if !ok {
		t.Fatal("ByID(2) not found")
	}
	if r.Amount != 50 || r.Direction != Expense {
		t.Errorf("ByID(2) = %+v", r)
	}

	if _, ok := m.ByID(99); ok {
		t.Error("ByID(99) should not be found")
	}
}

func TestManagerAllReturnsCopy(t *testing.T) {
	m := sampleManager(t)
	all := m.All()
	all[0].Amount = 9999

	r, _ := m.ByID(1)
	if r.Amount != 200 {
		t.Errorf("mutating All() result changed the manager: amount = %v", r.Amount)
	}
}

func TestManagerRecordsBetween(t *testing.T) {
	m := NewManager()
	m.Add(NewRecord(1, Expense, 10, nil, mustDate(t, "01.10.2025")))
	m.Add(NewRecord(2, Expense, 20, nil, mustDate(t, "15.10.2025")))
	m.Add(NewRecord(3, Expense, 30, nil, mustDate(t, "31.10.2025")))

	tests := []struct {
		name     string
		from, to string
		wantIDs  []int
	}{
		{"inclusive bounds", "01.10.2025", "31.10.2025", []int{1, 2, 3}},
		{"middle only", "02.10.2025", "30.10.2025", []int{2}},
		{"single day", "15.10.2025", "15.10.2025", []int{2}},
		{"empty window", "01.01.2024", "31.01.2024", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.RecordsBetween(mustDate(t, tt.from), mustDate(t, tt.to))
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, r := range got {
				if r.ID != tt.wantIDs[i] {
					t.Errorf("record %d has id %d, want %d", i, r.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestManagerFormatAll(t *testing.T) {
	m := sampleManager(t)
	lines := m.FormatAll()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	want := "  1  +   200.00  -             22.11.2025"
	if lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
}

func TestManagerBalanceSeries(t *testing.T) {
	m := NewManager()
	m.Add(NewRecord(1, Income, 200, nil, mustDate(t, "22.11.2025")))
	m.Add(NewRecord(2, Expense, 50, catPtr(Fun), mustDate(t, "22.10.2025")))
	m.Add(NewRecord(3, Expense, 30, nil, mustDate(t, "22.11.2025")))

	points := m.BalanceSeries()
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	// Sorted by date; the November point carries the balance after the
	// last record on that date.
	if !points[0].Date.Equal(mustDate(t, "22.10.2025")) {
		t.Errorf("point 0 date = %v", points[0].Date)
	}
	if points[0].Balance != 150 {
		t.Errorf("point 0 balance = %v, want 150", points[0].Balance)
	}
	if points[1].Balance != 120 {
		t.Errorf("point 1 balance = %v, want 120", points[1].Balance)
	}
}

func TestManagerCategorySeries(t *testing.T) {
	m := sampleManager(t)
	labels, values := m.CategorySeries()

	if len(labels) != len(Categories) || len(values) != len(Categories) {
		t.Fatalf("got %d labels, %d values", len(labels), len(values))
	}
	if labels[0] != "Fun" || values[0] != 50 {
		t.Errorf("series[0] = %s %v, want Fun 50", labels[0], values[0])
	}
	if labels[9] != "Other" || values[9] != 0 {
		t.Errorf("series[9] = %s %v, want Other 0", labels[9], values[9])
	}
}

func TestManagerDateLabels(t *testing.T) {
	m := NewManager()
	for i := 1; i <= 8; i++ {
		m.Add(NewRecord(i, Expense, 1, nil,
			time.Date(2025, 10, i, 0, 0, 0, 0, time.UTC)))
	}
	// Duplicate date: must not produce a duplicate label.
	m.Add(NewRecord(9, Income, 1, nil, mustDate(t, "01.10.2025")))

	labels := m.DateLabels(4)
	if len(labels) < 2 {
		t.Fatalf("got %d labels: %v", len(labels), labels)
	}
	if labels[0] != "01.10.2025" {
		t.Errorf("first label = %q, want 01.10.2025", labels[0])
	}
	if labels[len(labels)-1] != "08.10.2025" {
		t.Errorf("last label = %q, want 08.10.2025", labels[len(labels)-1])
	}

	if got := NewManager().DateLabels(4); got != nil {
		t.Errorf("empty manager DateLabels = %v, want nil", got)
	}
}
