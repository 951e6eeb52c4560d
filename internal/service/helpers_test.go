package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowerlibrary/flower-server/internal/domain"
	"github.com/flowerlibrary/flower-server/internal/store"
	"github.com/flowerlibrary/flower-server/internal/store/sqlite"
	"github.com/flowerlibrary/flower-server/internal/validation"
)

var errDiskFull = errors.New("disk full")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// faultyStore wraps a real store and overrides selected calls.
type faultyStore struct {
	store.Store

	listFlowersByPerson func(ctx context.Context, personID int64) ([]domain.Flower, error)
	getPerson           func(ctx context.Context, id int64) (*domain.Person, error)
	listLibraryErr      error
	personExists        func(ctx context.Context, id int64) (bool, error)
}

func (f *faultyStore) ListLibrary(ctx context.Context) ([]domain.LibraryEntry, error) {
	if f.listLibraryErr != nil {
		return nil, f.listLibraryErr
	}
	return f.Store.ListLibrary(ctx)
}

func (f *faultyStore) ListFlowersByPerson(ctx context.Context, personID int64) ([]domain.Flower, error) {
	if f.listFlowersByPerson != nil {
		return f.listFlowersByPerson(ctx, personID)
	}
	return f.Store.ListFlowersByPerson(ctx, personID)
}

func (f *faultyStore) GetPerson(ctx context.Context, id int64) (*domain.Person, error) {
	if f.getPerson != nil {
		return f.getPerson(ctx, id)
	}
	return f.Store.GetPerson(ctx, id)
}

func (f *faultyStore) PersonExists(ctx context.Context, id int64) (bool, error) {
	if f.personExists != nil {
		return f.personExists(ctx, id)
	}
	return f.Store.PersonExists(ctx, id)
}

type testServices struct {
	store   store.Store
	library *LibraryService
	persons *PersonService
	search  *SearchService
}

func newTestServices(t *testing.T, s store.Store) *testServices {
	t.Helper()
	v := validation.New()
	log := testLogger()
	return &testServices{
		store:   s,
		library: NewLibraryService(s, v, log),
		persons: NewPersonService(s, v, log),
		search:  NewSearchService(s, v, 2, log),
	}
}

func flowerNames(flowers []domain.Flower) []string {
	names := make([]string, 0, len(flowers))
	for _, f := range flowers {
		names = append(names, f.Name)
	}
	return names
}
