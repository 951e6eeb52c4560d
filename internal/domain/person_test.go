package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFlowers(t *testing.T) {
	persons := []Person{{ID: 2, Name: "Alice"}, {ID: 1, Name: "Bob"}, {ID: 3, Name: "Carol"}}
	flowers := []Flower{
		{ID: 1, Name: "Rose", PersonID: 1},
		{ID: 2, Name: "Tulip", PersonID: 2},
		{ID: 3, Name: "Daisy", PersonID: 2},
		{ID: 4, Name: "Orphan", PersonID: 99},
	}

	got := GroupFlowers(persons, flowers)
	require.Len(t, got, 3)

	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, []Flower{{ID: 2, Name: "Tulip", PersonID: 2}, {ID: 3, Name: "Daisy", PersonID: 2}}, got[0].Flowers)

	assert.Equal(t, "Bob", got[1].Name)
	assert.Equal(t, []Flower{{ID: 1, Name: "Rose", PersonID: 1}}, got[1].Flowers)

	// Persons without flowers get an empty, non-nil slice.
	assert.Equal(t, "Carol", got[2].Name)
	assert.NotNil(t, got[2].Flowers)
	assert.Empty(t, got[2].Flowers)
}

func TestOwnerIDs_FirstAppearanceOrder(t *testing.T) {
	flowers := []Flower{
		{ID: 10, PersonID: 3},
		{ID: 11, PersonID: 1},
		{ID: 12, PersonID: 3},
		{ID: 13, PersonID: 2},
		{ID: 14, PersonID: 1},
	}

	assert.Equal(t, []int64{3, 1, 2}, OwnerIDs(flowers))
	assert.Empty(t, OwnerIDs(nil))
}
