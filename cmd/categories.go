package cmd

import (
	"fmt"

	"kasa/internal/cli"
	"kasa/internal/ledger"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Expense totals per category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	m, closeDB, err := loadManager()
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	totals := m.CategoryTotals()

	rows := make([][]string, 0, len(ledger.Categories)+2)
	for _, c := range ledger.Categories {
		rows = append(rows, []string{c.Label(), cli.FormatAmount(totals[c])})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatAmount(m.TotalExpenses())})

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Expenses by category",
		Headers: []string{"Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}
