package store

import (
	"testing"

	"kasa/internal/ledger"
)

func TestRenumberClosesGaps(t *testing.T) {
	s := testStore(t)

	// Sparse ids, as left behind by external edits.
	for _, id := range []int{3, 7, 12} {
		rec := ledger.NewRecord(id, ledger.Expense, float32(id), nil, testDate(t, "01.01.2025"))
		if err := s.InsertRecord(rec); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}

	if err := s.Renumber(); err != nil {
		t.Fatalf("renumber: %v", err)
	}

	records, err := s.LoadRecords()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Ids become exactly 1..N; amounts show the original order survived.
	wantAmounts := []float32{3, 7, 12}
	for i, r := range records {
		if r.ID != i+1 {
			t.Errorf("record %d has id %d, want %d", i, r.ID, i+1)
		}
		if r.Amount != wantAmounts[i] {
			t.Errorf("record %d has amount %v, want %v", i, r.Amount, wantAmounts[i])
		}
	}
}

func TestRenumberEmptyIsNoOp(t *testing.T) {
	s := testStore(t)
	if err := s.Renumber(); err != nil {
		t.Fatalf("renumber empty: %v", err)
	}
	count, err := s.CountRecords()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestRenumberIdempotent(t *testing.T) {
	s := testStore(t)
	for i := 1; i <= 3; i++ {
		rec := ledger.NewRecord(i, ledger.Income, float32(i), nil, testDate(t, "01.01.2025"))
		if err := s.InsertRecord(rec); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if err := s.Renumber(); err != nil {
		t.Fatalf("first renumber: %v", err)
	}
	if err := s.Renumber(); err != nil {
		t.Fatalf("second renumber: %v", err)
	}

	records, err := s.LoadRecords()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i, r := range records {
		if r.ID != i+1 {
			t.Errorf("record %d has id %d, want %d", i, r.ID, i+1)
		}
	}
}

func TestNextID(t *testing.T) {
	s := testStore(t)

	id, err := s.NextID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != 1 {
		t.Errorf("NextID on empty store = %d, want 1", id)
	}

	for i := 1; i <= 2; i++ {
		rec := ledger.NewRecord(i, ledger.Expense, 5, nil, testDate(t, "01.01.2025"))
		if err := s.InsertRecord(rec); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	id, err = s.NextID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != 3 {
		t.Errorf("NextID = %d, want 3", id)
	}
}

// Deleting a record leaves a gap; the renumber pass that follows every
// delete closes it, so the surviving record ends up with id 1.
func TestDeleteThenRenumber(t *testing.T) {
	s := testStore(t)

	income := ledger.NewRecord(1, ledger.Income, 200, nil, testDate(t, "22.11.2025"))
	expense := ledger.NewRecord(2, ledger.Expense, 50, catPtr(ledger.Fun), testDate(t, "22.10.2025"))
	for _, r := range []ledger.Record{income, expense} {
		if err := s.InsertRecord(r); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if err := s.DeleteRecord(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Renumber(); err != nil {
		t.Fatalf("renumber: %v", err)
	}

	records, err := s.LoadRecords()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.ID != 1 {
		t.Errorf("surviving record id = %d, want 1", got.ID)
	}
	if got.Direction != ledger.Expense || got.Amount != 50 {
		t.Errorf("surviving record = %+v", got)
	}
}
