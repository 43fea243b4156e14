package cmd

import (
	"fmt"
	"time"

	"kasa/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagFrom string
	flagTo   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all records, optionally filtered by date range",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagFrom, "from", "", "Start date, inclusive (DD.MM.YYYY)")
	listCmd.Flags().StringVar(&flagTo, "to", "", "End date, inclusive (DD.MM.YYYY)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	m, closeDB, err := loadManager()
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	records := m.All()
	if flagFrom != "" || flagTo != "" {
		from := time.Time{}
		to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		if flagFrom != "" {
			if from, err = cli.ParseDate(flagFrom); err != nil {
				return err
			}
		}
		if flagTo != "" {
			if to, err = cli.ParseDate(flagTo); err != nil {
				return err
			}
		}
		records = m.RecordsBetween(from, to)
	}

	if len(records) == 0 {
		fmt.Println("\n  No records in the selected range.")
		return nil
	}

	fmt.Println()
	for _, r := range records {
		line := r.Format()
		if r.Direction.Sign() == "+" {
			fmt.Println("  " + cli.IncomeStyle.Render(line))
		} else {
			fmt.Println("  " + cli.ExpenseStyle.Render(line))
		}
	}
	fmt.Println()
	return nil
}
