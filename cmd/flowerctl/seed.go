package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
	"github.com/flowerlibrary/flower-server/internal/service"
	"github.com/flowerlibrary/flower-server/internal/validation"
)

var seedPersons bool

// defaultCatalog is inserted into the flower library by seed.
var defaultCatalog = []string{
	"Rose", "Tulip", "Daisy", "Lily", "Sunflower", "Orchid",
	"Peony", "Lavender", "Iris", "Marigold", "Dahlia", "Magnolia",
}

type samplePerson struct {
	name    string
	flowers []string
}

var samplePersons = []samplePerson{
	{name: "Alice", flowers: []string{"Rose", "Tulip"}},
	{name: "Bob", flowers: []string{"Rose"}},
	{name: "Carol", flowers: []string{"Lavender", "Iris", "Peony"}},
	{name: "Dave"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a default flower catalog",
	Long: `Seed inserts a default catalog of flower names. Names already in the
library are skipped, so seed can be run repeatedly.

Example:
  flowerctl seed
  flowerctl seed --persons`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		v := validation.New()
		return runSeed(cmd.Context(), cmd.OutOrStdout(),
			service.NewLibraryService(db, v, logger),
			service.NewPersonService(db, v, logger),
			seedPersons,
		)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedPersons, "persons", false, "also create sample persons with flowers")
}

// seedResult counts what a seed run did.
type seedResult struct {
	created int
	skipped int
}

func runSeed(ctx context.Context, out io.Writer, library *service.LibraryService, persons *service.PersonService, withPersons bool) error {
	res, err := seedCatalog(ctx, library, defaultCatalog)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Library: %d created, %d already present\n", res.created, res.skipped)

	if !withPersons {
		return nil
	}

	res, err = seedSamplePersons(ctx, persons, samplePersons)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Persons: %d created, %d already present\n", res.created, res.skipped)
	return nil
}

func seedCatalog(ctx context.Context, library *service.LibraryService, names []string) (seedResult, error) {
	var res seedResult
	for _, name := range names {
		_, err := library.Create(ctx, name)
		switch {
		case err == nil:
			res.created++
		case domainerrors.Is(err, domainerrors.ErrConflict):
			res.skipped++
		default:
			return res, fmt.Errorf("seed flower %q: %w", name, err)
		}
	}
	return res, nil
}

func seedSamplePersons(ctx context.Context, persons *service.PersonService, samples []samplePerson) (seedResult, error) {
	var res seedResult
	for _, p := range samples {
		_, err := persons.Create(ctx, p.name, p.flowers)
		switch {
		case err == nil:
			res.created++
		case domainerrors.Is(err, domainerrors.ErrConflict):
			res.skipped++
		default:
			return res, fmt.Errorf("seed person %q: %w", p.name, err)
		}
	}
	return res, nil
}
