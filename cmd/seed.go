package cmd

import (
	"fmt"
	"time"

	"kasa/internal/ledger"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a handful of sample records",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	shopping := ledger.Shopping
	fun := ledger.Fun

	samples := []ledger.Entry{
		{Direction: ledger.Expense, Amount: 500.0, Date: date(2025, 12, 25)},
		{Direction: ledger.Expense, Amount: 150.0, Category: &shopping, Date: date(2025, 12, 25)},
		{Direction: ledger.Income, Amount: 200.0, Date: date(2025, 11, 22)},
		{Direction: ledger.Expense, Amount: 50.0, Category: &fun, Date: date(2025, 10, 22)},
	}

	for _, e := range samples {
		if err := db.Renumber(); err != nil {
			return err
		}
		id, err := db.NextID()
		if err != nil {
			return err
		}
		if err := db.InsertRecord(e.Record(id)); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d records.\n", len(samples))
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
