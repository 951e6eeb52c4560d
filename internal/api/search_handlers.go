package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowerlibrary/flower-server/internal/service"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchPersons",
		Method:      http.MethodGet,
		Path:        "/api/search/person",
		Summary:     "Search persons",
		Description: "Finds persons whose name contains the query, each with all of its flowers",
		Tags:        []string{"Search"},
	}, s.handleSearchPersons)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchFlowers",
		Method:      http.MethodGet,
		Path:        "/api/search/flower",
		Summary:     "Search flowers",
		Description: "Finds flowers whose name contains the query, grouped under their owners",
		Tags:        []string{"Search"},
	}, s.handleSearchFlowers)
}

// SearchInput contains the substring query.
type SearchInput struct {
	Name string `query:"name" doc:"Substring to look for; case-insensitive for ASCII"`
}

// SearchResponse contains search results.
// Message is present only when nothing matched.
type SearchResponse struct {
	Results []PersonResponse `json:"results" doc:"Matching persons with their flowers"`
	Message string           `json:"message,omitempty" doc:"Informational message for empty results"`
}

// SearchOutput wraps search results for Huma.
type SearchOutput struct {
	Body SearchResponse
}

func newSearchOutput(res *service.SearchResult) *SearchOutput {
	return &SearchOutput{Body: SearchResponse{
		Results: newPersonResponses(res.Results),
		Message: res.Message,
	}}
}

func (s *Server) handleSearchPersons(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	res, err := s.services.Search.SearchPersons(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return newSearchOutput(res), nil
}

func (s *Server) handleSearchFlowers(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	res, err := s.services.Search.SearchFlowers(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return newSearchOutput(res), nil
}
