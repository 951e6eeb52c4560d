package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowerlibrary/flower-server/internal/store"
)

func TestLibrary_CreateAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entries, err := s.ListLibrary(ctx)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	for _, name := range []string{"Tulip", "Rose", "Daisy"} {
		e, err := s.CreateLibraryEntry(ctx, name)
		require.NoError(t, err)
		assert.NotZero(t, e.ID)
		assert.Equal(t, name, e.Name)
	}

	entries, err = s.ListLibrary(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Daisy", entries[0].Name)
	assert.Equal(t, "Rose", entries[1].Name)
	assert.Equal(t, "Tulip", entries[2].Name)
}

func TestLibrary_DuplicateName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateLibraryEntry(ctx, "Rose")
	require.NoError(t, err)

	_, err = s.CreateLibraryEntry(ctx, "Rose")
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	// Uniqueness is case-sensitive.
	_, err = s.CreateLibraryEntry(ctx, "rose")
	assert.NoError(t, err)
}

func TestLibrary_Update(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rose, err := s.CreateLibraryEntry(ctx, "Rose")
	require.NoError(t, err)
	tulip, err := s.CreateLibraryEntry(ctx, "Tulip")
	require.NoError(t, err)

	got, err := s.UpdateLibraryEntry(ctx, rose.ID, "Red Rose")
	require.NoError(t, err)
	assert.Equal(t, rose.ID, got.ID)
	assert.Equal(t, "Red Rose", got.Name)

	// Renaming to its own current name succeeds.
	_, err = s.UpdateLibraryEntry(ctx, rose.ID, "Red Rose")
	assert.NoError(t, err)

	// Colliding with another entry fails.
	_, err = s.UpdateLibraryEntry(ctx, tulip.ID, "Red Rose")
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.UpdateLibraryEntry(ctx, 9999, "Orchid")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLibrary_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	e, err := s.CreateLibraryEntry(ctx, "Rose")
	require.NoError(t, err)

	require.NoError(t, s.DeleteLibraryEntry(ctx, e.ID))
	assert.ErrorIs(t, s.DeleteLibraryEntry(ctx, e.ID), store.ErrNotFound)

	entries, err := s.ListLibrary(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
