// Package store provides the SQLite-backed persistence gateway for ledger
// records, plus the id-renumbering protocol that keeps record ids densely
// sequential.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kasa/internal/ledger"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the records database. Storage failures come back as errors;
// the caller decides whether they are fatal.
type Store struct {
	db *sql.DB
}

// Open opens or creates the records database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening records db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRecord writes a record under its own id.
func (s *Store) InsertRecord(r ledger.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO records (id, money_type, amount, expense, time) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Direction.String(), r.Amount, ledger.CategoryToken(r.Category), r.Date.Format(ledger.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting record %d: %w", r.ID, err)
	}
	return nil
}

// UpdateRecord overwrites the row with the record's id with its new values.
func (s *Store) UpdateRecord(r ledger.Record) error {
	_, err := s.db.Exec(
		`UPDATE records SET money_type = ?, amount = ?, expense = ?, time = ? WHERE id = ?`,
		r.Direction.String(), r.Amount, ledger.CategoryToken(r.Category), r.Date.Format(ledger.DateLayout), r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating record %d: %w", r.ID, err)
	}
	return nil
}

// DeleteRecord removes the row with the given id.
func (s *Store) DeleteRecord(id int) error {
	if _, err := s.db.Exec(`DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting record %d: %w", id, err)
	}
	return nil
}

// LoadRecords reads the full record set in id order. A row whose
// direction, category, or date falls outside the known vocabulary is an
// error, not a skip.
func (s *Store) LoadRecords() ([]ledger.Record, error) {
	rows, err := s.db.Query(`SELECT id, money_type, amount, expense, time FROM records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []ledger.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountRecords returns the number of stored records.
func (s *Store) CountRecords() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count)
	return count, err
}

func scanRecord(rows *sql.Rows) (ledger.Record, error) {
	var (
		id       int
		dirTok   string
		amount   float64
		expense  sql.NullString
		dateText string
	)
	if err := rows.Scan(&id, &dirTok, &amount, &expense, &dateText); err != nil {
		return ledger.Record{}, fmt.Errorf("scanning record row: %w", err)
	}

	dir, err := ledger.ParseDirection(dirTok)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("record %d: %w", id, err)
	}

	var cat *ledger.Category
	if expense.Valid {
		cat, err = ledger.ParseCategory(expense.String)
		if err != nil {
			return ledger.Record{}, fmt.Errorf("record %d: %w", id, err)
		}
	}

	date, err := time.Parse(ledger.DateLayout, dateText)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("record %d: parsing date %q: %w", id, dateText, err)
	}

	return ledger.NewRecord(id, dir, float32(amount), cat, date), nil
}
