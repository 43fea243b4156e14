package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Renumber records so ids run 1..N with no gaps",
	RunE:  runCompact,
}

func init() {
	rootCmd.AddCommand(compactCmd)
}

func runCompact(_ *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Renumber(); err != nil {
		return err
	}

	count, err := db.CountRecords()
	if err != nil {
		return err
	}
	fmt.Printf("Renumbered %d records to ids 1..%d.\n", count, count)
	return nil
}
