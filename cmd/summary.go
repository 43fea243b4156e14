package cmd

import (
	"fmt"

	"kasa/internal/cli"
	"kasa/internal/ledger"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Balance, income, and expense totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(m *ledger.Manager) {
	fmt.Println()
	fmt.Println(cli.RenderTitle("KASA LEDGER"))
	fmt.Println()

	rows := [][]string{
		{"Records", fmt.Sprintf("%d", m.Len())},
		{"Income", cli.FormatAmount(m.TotalIncome())},
		{"Expenses", cli.FormatAmount(m.TotalExpenses())},
		{"---"},
		{"Balance", cli.FormatSigned(m.Balance())},
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
}
