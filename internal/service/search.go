package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/flowerlibrary/flower-server/internal/domain"
	"github.com/flowerlibrary/flower-server/internal/normalize"
	"github.com/flowerlibrary/flower-server/internal/store"
	"github.com/flowerlibrary/flower-server/internal/validation"
)

// Search messages.
const (
	msgPersonQueryRequired = "person name query is required"
	msgFlowerQueryRequired = "flower name query is required"
	msgNoPersonsFound      = "no matching persons found"
	msgNoFlowersFound      = "no matching flowers found"
)

// DefaultSearchConcurrency bounds fan-out lookups when no limit is configured.
const DefaultSearchConcurrency = 4

type searchInput struct {
	Name string `json:"name" validate:"required"`
}

// SearchResult is the outcome of a substring search.
// Message is set only when nothing matched.
type SearchResult struct {
	Results []*domain.PersonFlowers
	Message string
}

// SearchService answers substring lookups over persons and flowers.
type SearchService struct {
	store       store.Store
	validator   *validation.Validator
	concurrency int
	logger      *slog.Logger
}

// NewSearchService creates a new search service.
// concurrency caps the number of in-flight lookups per search; values below 1 use the default.
func NewSearchService(store store.Store, validator *validation.Validator, concurrency int, logger *slog.Logger) *SearchService {
	if concurrency < 1 {
		concurrency = DefaultSearchConcurrency
	}
	return &SearchService{
		store:       store,
		validator:   validator,
		concurrency: concurrency,
		logger:      logger,
	}
}

// SearchPersons finds persons whose name contains term, each with its full flower list.
// Results keep the name order of the match; the first failed lookup fails the search.
func (s *SearchService) SearchPersons(ctx context.Context, term string) (*SearchResult, error) {
	in := searchInput{Name: normalize.Name(term)}
	if err := s.validator.ValidateWithMessage(in, msgPersonQueryRequired); err != nil {
		return nil, err
	}

	persons, err := s.store.SearchPersonsByName(ctx, in.Name)
	if err != nil {
		return nil, storeError(s.logger, "search persons", err, "", "")
	}
	if len(persons) == 0 {
		return &SearchResult{Results: []*domain.PersonFlowers{}, Message: msgNoPersonsFound}, nil
	}

	results := make([]*domain.PersonFlowers, len(persons))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, p := range persons {
		g.Go(func() error {
			flowers, err := s.store.ListFlowersByPerson(gctx, p.ID)
			if err != nil {
				return err
			}
			results[i] = domain.NewPersonFlowers(p, flowers)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, storeError(s.logger, "search persons: load flowers", err, "", "")
	}

	s.logger.Debug("person search", "term", in.Name, "results", len(results))
	return &SearchResult{Results: results}, nil
}

// SearchFlowers finds flowers whose name contains term, grouped under their owners.
// Each owner carries only its matching flowers. Owners appear in the order their
// first matching flower appears; owners that vanished meanwhile are skipped.
func (s *SearchService) SearchFlowers(ctx context.Context, term string) (*SearchResult, error) {
	in := searchInput{Name: normalize.Name(term)}
	if err := s.validator.ValidateWithMessage(in, msgFlowerQueryRequired); err != nil {
		return nil, err
	}

	flowers, err := s.store.SearchFlowersByName(ctx, in.Name)
	if err != nil {
		return nil, storeError(s.logger, "search flowers", err, "", "")
	}
	if len(flowers) == 0 {
		return &SearchResult{Results: []*domain.PersonFlowers{}, Message: msgNoFlowersFound}, nil
	}

	matched := make(map[int64][]domain.Flower)
	for _, f := range flowers {
		matched[f.PersonID] = append(matched[f.PersonID], f)
	}

	ownerIDs := domain.OwnerIDs(flowers)
	owners := make([]*domain.PersonFlowers, len(ownerIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ownerIDs {
		g.Go(func() error {
			p, err := s.store.GetPerson(gctx, id)
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			owners[i] = domain.NewPersonFlowers(*p, matched[id])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, storeError(s.logger, "search flowers: load owners", err, "", "")
	}

	results := make([]*domain.PersonFlowers, 0, len(owners))
	for _, o := range owners {
		if o != nil {
			results = append(results, o)
		}
	}

	s.logger.Debug("flower search", "term", in.Name, "results", len(results))
	if len(results) == 0 {
		return &SearchResult{Results: results, Message: msgNoFlowersFound}, nil
	}
	return &SearchResult{Results: results}, nil
}
