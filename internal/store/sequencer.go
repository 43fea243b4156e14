package store

import (
	"fmt"

	"kasa/internal/ledger"
)

// Renumber rewrites the whole record set so ids form the dense sequence
// 1..N in storage order. The delete-and-reinsert runs inside one
// transaction, so a crash mid-renumber rolls back instead of losing rows.
// An empty record set is a no-op.
func (s *Store) Renumber() error {
	records, err := s.LoadRecords()
	if err != nil {
		return fmt.Errorf("renumber: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("renumber: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("renumber: clearing records: %w", err)
	}

	for i, r := range records {
		r.ID = i + 1
		_, err := tx.Exec(
			`INSERT INTO records (id, money_type, amount, expense, time) VALUES (?, ?, ?, ?, ?)`,
			r.ID, r.Direction.String(), r.Amount, ledger.CategoryToken(r.Category), r.Date.Format(ledger.DateLayout),
		)
		if err != nil {
			return fmt.Errorf("renumber: reinserting record %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// NextID returns the next free record id. It assumes a dense id space,
// which is why every insert path renumbers first.
func (s *Store) NextID() (int, error) {
	count, err := s.CountRecords()
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return count + 1, nil
}
