package ledger

import "time"

// Manager holds the in-memory record set. It is rebuilt wholesale from
// storage after every mutation and owns no persistence logic; all methods
// other than Add are read-only over the current snapshot.
type Manager struct {
	records []Record
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// NewManagerWith returns a manager seeded with the given records,
// preserving their order.
func NewManagerWith(records []Record) *Manager {
	m := &Manager{records: make([]Record, len(records))}
	copy(m.records, records)
	return m
}

// Add appends a record to the in-memory set. It does not persist.
func (m *Manager) Add(r Record) {
	m.records = append(m.records, r)
}

// Len returns the number of records.
func (m *Manager) Len() int {
	return len(m.records)
}

// ByID returns the record with the given id, if present.
func (m *Manager) ByID(id int) (Record, bool) {
	for _, r := range m.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// All returns a copy of the record set, safe for the caller to mutate.
func (m *Manager) All() []Record {
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// FormatAll returns one formatted line per record, in set order.
func (m *Manager) FormatAll() []string {
	lines := make([]string, len(m.records))
	for i, r := range m.records {
		lines[i] = r.Format()
	}
	return lines
}

// Balance returns total income minus total expenses.
func (m *Manager) Balance() float32 {
	return m.TotalIncome() - m.TotalExpenses()
}

// TotalIncome sums the amounts of all income records.
func (m *Manager) TotalIncome() float32 {
	var sum float32
	for _, r := range m.records {
		if r.Direction == Income {
			sum += r.Amount
		}
	}
	return sum
}

// TotalExpenses sums the amounts of all expense records. Amounts are
// stored as magnitudes, so the result is never negative.
func (m *Manager) TotalExpenses() float32 {
	var sum float32
	for _, r := range m.records {
		if r.Direction == Expense {
			sum += r.Amount
		}
	}
	return sum
}

// RecordsBetween returns records whose date falls in [from, to], inclusive
// on both ends, in set order.
func (m *Manager) RecordsBetween(from, to time.Time) []Record {
	var out []Record
	for _, r := range m.records {
		if !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out
}

// CategoryTotals sums expense amounts per category. The map is dense: all
// ten categories are present, zero when nothing matched. Income records are
// excluded even when they carry a category.
func (m *Manager) CategoryTotals() map[Category]float32 {
	totals := make(map[Category]float32, len(Categories))
	for _, c := range Categories {
		totals[c] = 0
	}
	for _, r := range m.records {
		if r.Direction != Expense || r.Category == nil {
			continue
		}
		totals[*r.Category] += r.Amount
	}
	return totals
}
