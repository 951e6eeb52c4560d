// Package main provides flowerctl, an operator tool for the flower database.
//
// Usage:
//
//	flowerctl seed --persons
//	flowerctl inspect --db-path ~/flowers/flowers.db
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowerlibrary/flower-server/internal/logger"
	"github.com/flowerlibrary/flower-server/internal/store/sqlite"
)

var (
	// dbPath is set by the --db-path flag.
	dbPath string

	// verbose is set by the --verbose flag.
	verbose bool

	// db is opened by PersistentPreRunE and closed after the command.
	db *sqlite.Store
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flowerctl",
	Short: "flowerctl manages the flower library database",
	Long: `flowerctl seeds and inspects the SQLite database used by the flower server.
It opens the same file the server uses, so stop the server or point it at a copy
before seeding production data.`,
	SilenceUsage:      true,
	PersistentPreRunE: openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", defaultDBPath(), "SQLite database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log store activity")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(inspectCmd)
}

func defaultDBPath() string {
	if p := os.Getenv("DB_PATH"); p != "" {
		return p
	}
	return "./data/flowers.db"
}

func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger.New(logger.Config{
		Writer: os.Stderr,
		Level:  slog.LevelDebug,
	}).Logger
}

// openStore opens the database for the command being run.
func openStore(cmd *cobra.Command, args []string) error {
	s, err := sqlite.Open(dbPath, newLogger())
	if err != nil {
		return fmt.Errorf("open database %s: %w", dbPath, err)
	}
	db = s
	return nil
}

// closeStore releases the database handle.
func closeStore() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
