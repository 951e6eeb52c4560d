package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowerlibrary/flower-server/internal/domain"
	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
	"github.com/flowerlibrary/flower-server/internal/store"
)

// seedAliceBob creates Alice {Rose, Tulip} and Bob {Rose}.
func seedAliceBob(t *testing.T, svc *testServices) (alice, bob *domain.PersonFlowers) {
	t.Helper()
	ctx := context.Background()

	alice, err := svc.persons.Create(ctx, "Alice", []string{"Rose", "Tulip"})
	require.NoError(t, err)
	bob, err = svc.persons.Create(ctx, "Bob", []string{"Rose"})
	require.NoError(t, err)
	return alice, bob
}

func TestSearchService_SearchPersons(t *testing.T) {
	svc := newTestServices(t, newTestStore(t))
	alice, _ := seedAliceBob(t, svc)

	res, err := svc.search.SearchPersons(context.Background(), "lic")
	require.NoError(t, err)
	assert.Empty(t, res.Message)
	require.Len(t, res.Results, 1)
	assert.Equal(t, alice.ID, res.Results[0].ID)
	assert.Equal(t, []string{"Rose", "Tulip"}, flowerNames(res.Results[0].Flowers))
}

func TestSearchService_SearchPersonsPreservesOrder(t *testing.T) {
	svc := newTestServices(t, newTestStore(t))
	ctx := context.Background()

	names := []string{"Ann E", "Anna", "Annabel", "Annette", "Joanne", "Hanna"}
	for i, n := range names {
		_, err := svc.persons.Create(ctx, n, []string{n + " flower", string(rune('A' + i))})
		require.NoError(t, err)
	}

	res, err := svc.search.SearchPersons(ctx, "ann")
	require.NoError(t, err)

	got := make([]string, 0, len(res.Results))
	for _, r := range res.Results {
		got = append(got, r.Name)
		assert.Len(t, r.Flowers, 2)
		assert.Equal(t, r.Name+" flower", r.Flowers[0].Name)
	}
	assert.Equal(t, []string{"Ann E", "Anna", "Annabel", "Annette", "Hanna", "Joanne"}, got)
}

func TestSearchService_SearchPersonsNoMatch(t *testing.T) {
	svc := newTestServices(t, newTestStore(t))
	seedAliceBob(t, svc)

	res, err := svc.search.SearchPersons(context.Background(), "zed")
	require.NoError(t, err)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.Equal(t, "no matching persons found", res.Message)
}

func TestSearchService_EmptyQuery(t *testing.T) {
	svc := newTestServices(t, newTestStore(t))
	ctx := context.Background()

	_, err := svc.search.SearchPersons(ctx, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.search.SearchFlowers(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestSearchService_SearchPersonsFailFast(t *testing.T) {
	fs := &faultyStore{Store: newTestStore(t)}
	svc := newTestServices(t, fs)
	seedAliceBob(t, svc)

	fs.listFlowersByPerson = func(context.Context, int64) ([]domain.Flower, error) {
		return nil, errDiskFull
	}

	_, err := svc.search.SearchPersons(context.Background(), "b")
	assert.ErrorIs(t, err, domainerrors.ErrInternal)
	assert.ErrorIs(t, err, errDiskFull)
}

func TestSearchService_SearchFlowers(t *testing.T) {
	svc := newTestServices(t, newTestStore(t))
	alice, bob := seedAliceBob(t, svc)

	res, err := svc.search.SearchFlowers(context.Background(), "ros")
	require.NoError(t, err)
	require.Len(t, res.Results, 2)

	// Alice's Rose has the lower id, so Alice comes first.
	assert.Equal(t, alice.ID, res.Results[0].ID)
	assert.Equal(t, []string{"Rose"}, flowerNames(res.Results[0].Flowers))
	assert.Equal(t, bob.ID, res.Results[1].ID)
	assert.Equal(t, []string{"Rose"}, flowerNames(res.Results[1].Flowers))
}

func TestSearchService_SearchFlowersOnlyMatched(t *testing.T) {
	svc := newTestServices(t, newTestStore(t))
	alice, _ := seedAliceBob(t, svc)

	res, err := svc.search.SearchFlowers(context.Background(), "tul")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, alice.ID, res.Results[0].ID)
	assert.Equal(t, []string{"Tulip"}, flowerNames(res.Results[0].Flowers))
}

func TestSearchService_SearchFlowersNoMatch(t *testing.T) {
	svc := newTestServices(t, newTestStore(t))
	seedAliceBob(t, svc)

	res, err := svc.search.SearchFlowers(context.Background(), "orchid")
	require.NoError(t, err)
	assert.Empty(t, res.Results)
	assert.Equal(t, "no matching flowers found", res.Message)
}

func TestSearchService_SearchFlowersSkipsMissingOwner(t *testing.T) {
	fs := &faultyStore{Store: newTestStore(t)}
	svc := newTestServices(t, fs)
	alice, bob := seedAliceBob(t, svc)

	fs.getPerson = func(ctx context.Context, id int64) (*domain.Person, error) {
		if id == alice.ID {
			return nil, store.ErrNotFound
		}
		return fs.Store.GetPerson(ctx, id)
	}

	res, err := svc.search.SearchFlowers(context.Background(), "rose")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, bob.ID, res.Results[0].ID)
}

func TestSearchService_SearchFlowersOwnerFailure(t *testing.T) {
	fs := &faultyStore{Store: newTestStore(t)}
	svc := newTestServices(t, fs)
	seedAliceBob(t, svc)

	fs.getPerson = func(context.Context, int64) (*domain.Person, error) {
		return nil, errDiskFull
	}

	_, err := svc.search.SearchFlowers(context.Background(), "rose")
	assert.ErrorIs(t, err, domainerrors.ErrInternal)
}

func TestNewSearchService_DefaultConcurrency(t *testing.T) {
	svc := NewSearchService(nil, nil, 0, testLogger())
	assert.Equal(t, DefaultSearchConcurrency, svc.concurrency)
}
