package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entry is a validated record-in-waiting: everything but the id.
type Entry struct {
	Direction Direction
	Amount    float32
	Category  *Category
	Date      time.Time
}

// ParseEntry validates the four raw input-mode buffers
// (amount, sign, category, date) into an Entry. Amount, sign, and date are
// hard failures; an unknown category token degrades to "no category", and a
// category is accepted even on income records.
func ParseEntry(amount, sign, category, date string) (Entry, error) {
	a, err := strconv.ParseFloat(strings.TrimSpace(amount), 32)
	if err != nil {
		return Entry{}, fmt.Errorf("amount %q is not a number", amount)
	}

	dir, err := ParseSign(strings.TrimSpace(sign))
	if err != nil {
		return Entry{}, err
	}

	cat, err := ParseCategory(strings.TrimSpace(category))
	if err != nil {
		cat = nil // lenient: unknown text means no category
	}

	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return Entry{}, fmt.Errorf("date %q does not match DD.MM.YYYY", date)
	}

	return Entry{Direction: dir, Amount: float32(a), Category: cat, Date: d}, nil
}

// Record materializes the entry under the given id.
func (e Entry) Record(id int) Record {
	return NewRecord(id, e.Direction, e.Amount, e.Category, e.Date)
}
