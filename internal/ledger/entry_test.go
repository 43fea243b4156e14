package ledger

import "testing"

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		sign     string
		category string
		date     string
		wantErr  bool
	}{
		{"valid expense", "50.00", "-", "FUN", "22.10.2025", false},
		{"valid income", "200", "+", "NONE", "22.11.2025", false},
		{"amount not a number", "abc", "-", "FUN", "22.10.2025", true},
		{"amount empty", "", "-", "NONE", "22.10.2025", true},
		{"sign word rejected", "50", "minus", "NONE", "22.10.2025", true},
		{"sign empty", "50", "", "NONE", "22.10.2025", true},
		{"date wrong layout", "50", "-", "NONE", "2025-10-22", true},
		{"date nonsense", "50", "-", "NONE", "32.13.2025", true},
		{"unknown category is lenient", "50", "-", "whatever", "22.10.2025", false},
		{"category on income accepted", "50", "+", "FUN", "22.10.2025", false},
		{"surrounding whitespace", " 50.00 ", " - ", " FUN ", " 22.10.2025 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry(tt.amount, tt.sign, tt.category, tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseEntry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEntryFields(t *testing.T) {
	e, err := ParseEntry("50.00", "-", "FUN", "22.10.2025")
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if e.Direction != Expense {
		t.Errorf("Direction = %v, want Expense", e.Direction)
	}
	if e.Amount != 50 {
		t.Errorf("Amount = %v, want 50", e.Amount)
	}
	if e.Category == nil || *e.Category != Fun {
		t.Errorf("Category = %v, want Fun", e.Category)
	}
	if !e.Date.Equal(mustDate(t, "22.10.2025")) {
		t.Errorf("Date = %v", e.Date)
	}
}

func TestParseEntryUnknownCategoryDropsIt(t *testing.T) {
	e, err := ParseEntry("10", "-", "GROCERIES", "01.01.2025")
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if e.Category != nil {
		t.Errorf("Category = %v, want nil", e.Category)
	}
}

// Editing a record and confirming without changes must reproduce it.
func TestEditFieldsRoundTrip(t *testing.T) {
	records := []Record{
		NewRecord(1, Income, 200, nil, mustDate(t, "22.11.2025")),
		NewRecord(2, Expense, 50, catPtr(Fun), mustDate(t, "22.10.2025")),
		NewRecord(3, Expense, 1234.5, catPtr(Travel), mustDate(t, "01.01.2025")),
	}

	for _, orig := range records {
		f := orig.EditFields()
		e, err := ParseEntry(f[0], f[1], f[2], f[3])
		if err != nil {
			t.Fatalf("round trip of %+v: %v", orig, err)
		}
		got := e.Record(orig.ID)
		if got.Direction != orig.Direction || got.Amount != orig.Amount {
			t.Errorf("round trip changed record: got %+v, want %+v", got, orig)
		}
		if CategoryToken(got.Category) != CategoryToken(orig.Category) {
			t.Errorf("round trip changed category: got %s, want %s",
				CategoryToken(got.Category), CategoryToken(orig.Category))
		}
		if !got.Date.Equal(orig.Date) {
			t.Errorf("round trip changed date: got %v, want %v", got.Date, orig.Date)
		}
	}
}
