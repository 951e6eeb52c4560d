package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flowerlibrary/flower-server/internal/store"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print table counts",
	Long:  `Inspect prints row counts for the library, persons and flowers tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := db.Counts(cmd.Context())
		if err != nil {
			return fmt.Errorf("count rows: %w", err)
		}
		return printCounts(cmd.OutOrStdout(), dbPath, counts)
	},
}

func printCounts(out io.Writer, path string, c *store.Counts) error {
	fmt.Fprintf(out, "=== Database Inspection: %s ===\n\n", path)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Library entries:\t%d\n", c.LibraryEntries)
	fmt.Fprintf(w, "Persons:\t%d\n", c.Persons)
	fmt.Fprintf(w, "Owned flowers:\t%d\n", c.Flowers)
	fmt.Fprintf(w, "Persons without flowers:\t%d\n", c.PersonsNoFlower)
	return w.Flush()
}
