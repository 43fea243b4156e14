// Package cmd wires up the kasa command line interface.
package cmd

import (
	"fmt"
	"os"

	"kasa/internal/config"
	"kasa/internal/ledger"
	"kasa/internal/store"

	"github.com/spf13/cobra"
)

var flagDB string

var rootCmd = &cobra.Command{
	Use:   "kasa",
	Short: "Personal finance ledger in the terminal",
	Long:  "Track income and expenses, browse them as a list, per-category breakdown, and running balance.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (overrides config, $KASA_DB, and $DATABASE_URL)")
}

// openStore resolves the database path and opens it. Storage failures are
// fatal at this layer: RunE propagates them and cobra exits non-zero.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.Open(config.ResolveDBPath(cfg, flagDB))
}

// loadManager opens the store and reads the full record set into a manager.
func loadManager() (*ledger.Manager, func() error, error) {
	db, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	records, err := db.LoadRecords()
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return ledger.NewManagerWith(records), db.Close, nil
}

func runSummary(_ *cobra.Command, _ []string) error {
	m, closeDB, err := loadManager()
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	if m.Len() == 0 {
		fmt.Println("\n  No records yet. Run `kasa tui` and press 'a' to add one.")
		return nil
	}

	printSummary(m)
	return nil
}
