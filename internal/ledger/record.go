// Package ledger defines the domain types for kasa: financial records,
// the in-memory record manager, and its aggregation operations.
package ledger

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display format for record dates.
const DateLayout = "02.01.2006"

// Direction says whether a record adds money or spends it.
type Direction int

const (
	Income Direction = iota
	Expense
)

// String returns the storage token for the direction.
func (d Direction) String() string {
	if d == Income {
		return "INCOME"
	}
	return "EXPENSE"
}

// Sign returns "+" for income and "-" for expense.
func (d Direction) Sign() string {
	if d == Income {
		return "+"
	}
	return "-"
}

// ParseDirection maps a storage token back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "INCOME":
		return Income, nil
	case "EXPENSE":
		return Expense, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// ParseSign maps the input-mode sign character to a Direction.
func ParseSign(s string) (Direction, error) {
	switch s {
	case "+":
		return Income, nil
	case "-":
		return Expense, nil
	}
	return 0, fmt.Errorf("direction must be + or -, got %q", s)
}

// Category classifies an expense. It is meaningful only on expense records.
type Category int

const (
	Fun Category = iota
	Restaurant
	Shopping
	Investment
	Freetime
	Home
	Cloth
	Car
	Travel
	Other
)

// Categories lists all categories in canonical order. Dense aggregations
// and charts iterate this slice so their output order is stable.
var Categories = []Category{
	Fun, Restaurant, Shopping, Investment, Freetime,
	Home, Cloth, Car, Travel, Other,
}

// NoneToken is the storage sentinel for "no category".
const NoneToken = "NONE"

var categoryTokens = map[Category]string{
	Fun:        "FUN",
	Restaurant: "RESTAURANT",
	Shopping:   "SHOPPING",
	Investment: "INVESTMENT",
	Freetime:   "FREETIME",
	Home:       "HOME",
	Cloth:      "CLOTH",
	Car:        "CAR",
	Travel:     "TRAVEL",
	Other:      "OTHER",
}

var categoryLabels = map[Category]string{
	Fun:        "Fun",
	Restaurant: "Restaurant",
	Shopping:   "Shopping",
	Investment: "Investment",
	Freetime:   "Freetime",
	Home:       "Home",
	Cloth:      "Cloth",
	Car:        "Car",
	Travel:     "Travel",
	Other:      "Other",
}

// String returns the storage token, e.g. "RESTAURANT".
func (c Category) String() string {
	if tok, ok := categoryTokens[c]; ok {
		return tok
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Label returns the display name, e.g. "Restaurant".
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return c.String()
}

// ParseCategory maps a storage token to a category. NONE maps to (nil, nil).
// Any other token is an error; lenient handling of free-text input is the
// validator's job, not this function's.
func ParseCategory(s string) (*Category, error) {
	if s == NoneToken {
		return nil, nil
	}
	for c, tok := range categoryTokens {
		if tok == s {
			cc := c
			return &cc, nil
		}
	}
	return nil, fmt.Errorf("unknown category %q", s)
}

// CategoryToken returns the storage token for an optional category.
func CategoryToken(c *Category) string {
	if c == nil {
		return NoneToken
	}
	return c.String()
}

// Record is one ledger entry. Amounts are stored as positive magnitudes;
// the direction carries the sign.
type Record struct {
	ID        int
	Direction Direction
	Amount    float32
	Category  *Category
	Date      time.Time
}

// NewRecord builds a record, truncating the date to midnight UTC so two
// records on the same calendar day always compare equal on Date.
func NewRecord(id int, dir Direction, amount float32, cat *Category, date time.Time) Record {
	y, m, d := date.Date()
	return Record{
		ID:        id,
		Direction: dir,
		Amount:    amount,
		Category:  cat,
		Date:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

// Format renders the record as one fixed-width list line:
// right-aligned id, sign, right-aligned amount, category label, date.
func (r Record) Format() string {
	label := "-"
	if r.Category != nil {
		label = r.Category.Label()
	}
	return fmt.Sprintf("%3d  %1s %8.2f  %-12s  %-10s",
		r.ID, r.Direction.Sign(), r.Amount, label, r.Date.Format(DateLayout))
}

// EditFields returns the four input-mode buffer values for this record:
// amount to two decimals, sign, category token (or NONE), and date.
func (r Record) EditFields() [4]string {
	return [4]string{
		fmt.Sprintf("%.2f", r.Amount),
		r.Direction.Sign(),
		CategoryToken(r.Category),
		r.Date.Format(DateLayout),
	}
}
