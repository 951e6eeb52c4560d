// Package store defines the persistence interface for the flower server.
package store

import (
	"context"

	"github.com/flowerlibrary/flower-server/internal/domain"
)

// Store defines the interface for all persistence operations.
//
// Implementations return ErrNotFound when an addressed row does not exist and
// ErrAlreadyExists when a unique name is taken. Any other error is an
// unclassified storage failure.
type Store interface {
	// Lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Flower library
	ListLibrary(ctx context.Context) ([]domain.LibraryEntry, error)
	CreateLibraryEntry(ctx context.Context, name string) (*domain.LibraryEntry, error)
	UpdateLibraryEntry(ctx context.Context, id int64, name string) (*domain.LibraryEntry, error)
	DeleteLibraryEntry(ctx context.Context, id int64) error

	// Persons
	ListPersons(ctx context.Context) ([]domain.Person, error)
	GetPerson(ctx context.Context, id int64) (*domain.Person, error)
	PersonExists(ctx context.Context, id int64) (bool, error)
	CreatePersonWithFlowers(ctx context.Context, name string, flowers []string) (*domain.PersonFlowers, error)
	UpdatePersonWithFlowers(ctx context.Context, id int64, name string, flowers []string) (*domain.PersonFlowers, error)
	DeletePerson(ctx context.Context, id int64) error

	// Flowers
	ListFlowers(ctx context.Context) ([]domain.Flower, error)
	ListFlowersByPerson(ctx context.Context, personID int64) ([]domain.Flower, error)

	// Search
	SearchPersonsByName(ctx context.Context, term string) ([]domain.Person, error)
	SearchFlowersByName(ctx context.Context, term string) ([]domain.Flower, error)

	// Stats
	Counts(ctx context.Context) (*Counts, error)
}

// Counts reports table sizes for operator tooling.
type Counts struct {
	LibraryEntries  int `db:"library_entries"`
	Persons         int `db:"persons"`
	Flowers         int `db:"flowers"`
	PersonsNoFlower int `db:"persons_without_flowers"`
}
