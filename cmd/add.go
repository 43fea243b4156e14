package cmd

import (
	"fmt"

	"kasa/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagAmount   string
	flagType     string
	flagCategory string
	flagDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Insert one record without opening the TUI",
	Long:  "Insert a record through the same validation as the TUI entry mode.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAmount, "amount", "", "Amount, e.g. 50.00")
	addCmd.Flags().StringVar(&flagType, "type", "", "Direction: + (income) or - (expense)")
	addCmd.Flags().StringVar(&flagCategory, "category", ledger.NoneToken, "Category token, e.g. FUN (expenses only)")
	addCmd.Flags().StringVar(&flagDate, "date", "", "Date as DD.MM.YYYY")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("type")
	_ = addCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	entry, err := ledger.ParseEntry(flagAmount, flagType, flagCategory, flagDate)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Renumber first so the id space is dense before taking the next id.
	if err := db.Renumber(); err != nil {
		return err
	}
	id, err := db.NextID()
	if err != nil {
		return err
	}
	record := entry.Record(id)
	if err := db.InsertRecord(record); err != nil {
		return err
	}

	fmt.Printf("Added: %s\n", record.Format())
	return nil
}
