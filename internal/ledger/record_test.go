package ledger

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func catPtr(c Category) *Category {
	return &c
}

func TestRecordFormat(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "expense with category",
			rec:  NewRecord(16, Expense, 50.0, catPtr(Fun), mustDate(t, "22.10.2025")),
			want: " 16  -    50.00  Fun           22.10.2025",
		},
		{
			name: "income without category",
			rec:  NewRecord(1, Income, 200.0, nil, mustDate(t, "22.11.2025")),
			want: "  1  +   200.00  -             22.11.2025",
		},
		{
			name: "wide id stays right aligned",
			rec:  NewRecord(123, Expense, 1234.56, catPtr(Restaurant), mustDate(t, "01.01.2025")),
			want: "123  -  1234.56  Restaurant    01.01.2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordEditFields(t *testing.T) {
	rec := NewRecord(4, Expense, 50.0, catPtr(Fun), mustDate(t, "22.10.2025"))
	want := [4]string{"50.00", "-", "FUN", "22.10.2025"}
	if got := rec.EditFields(); got != want {
		t.Errorf("EditFields() = %v, want %v", got, want)
	}

	rec = NewRecord(1, Income, 200.0, nil, mustDate(t, "22.11.2025"))
	want = [4]string{"200.00", "+", "NONE", "22.11.2025"}
	if got := rec.EditFields(); got != want {
		t.Errorf("EditFields() = %v, want %v", got, want)
	}
}

func TestCategoryTokenBijection(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", c.String(), err)
		}
		if got == nil || *got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}

	got, err := ParseCategory(NoneToken)
	if err != nil {
		t.Fatalf("ParseCategory(NONE): %v", err)
	}
	if got != nil {
		t.Errorf("ParseCategory(NONE) = %v, want nil", got)
	}

	if _, err := ParseCategory("GROCERIES"); err == nil {
		t.Error("ParseCategory(GROCERIES) should fail")
	}
	if _, err := ParseCategory("fun"); err == nil {
		t.Error("ParseCategory is case-sensitive; lowercase should fail")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("INCOME"); err != nil || d != Income {
		t.Errorf("ParseDirection(INCOME) = %v, %v", d, err)
	}
	if d, err := ParseDirection("EXPENSE"); err != nil || d != Expense {
		t.Errorf("ParseDirection(EXPENSE) = %v, %v", d, err)
	}
	if _, err := ParseDirection("TRANSFER"); err == nil {
		t.Error("ParseDirection(TRANSFER) should fail")
	}
}

func TestNewRecordTruncatesDate(t *testing.T) {
	noon := time.Date(2025, 10, 22, 12, 30, 45, 0, time.UTC)
	rec := NewRecord(1, Income, 10, nil, noon)
	want := time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)
	if !rec.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", rec.Date, want)
	}
}
