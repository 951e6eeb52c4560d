package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowerlibrary/flower-server/internal/domain"
	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
)

func (s *Server) registerPersonRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listPersons",
		Method:      http.MethodGet,
		Path:        "/api/persons",
		Summary:     "List persons",
		Description: "Returns every person ordered by name with its flowers",
		Tags:        []string{"Persons"},
	}, s.handleListPersons)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPerson",
		Method:      http.MethodGet,
		Path:        "/api/persons/{id}",
		Summary:     "Get person",
		Description: "Returns a person with its flowers",
		Tags:        []string{"Persons"},
	}, s.handleGetPerson)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createPerson",
		Method:        http.MethodPost,
		Path:          "/api/persons",
		Summary:       "Create person",
		Description:   "Creates a person and its flowers in one transaction. Blank flower names are ignored.",
		Tags:          []string{"Persons"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreatePerson)

	huma.Register(s.api, huma.Operation{
		OperationID: "updatePerson",
		Method:      http.MethodPut,
		Path:        "/api/persons/{id}",
		Summary:     "Update person",
		Description: "Renames a person and replaces its whole flower set in one transaction",
		Tags:        []string{"Persons"},
	}, s.handleUpdatePerson)

	huma.Register(s.api, huma.Operation{
		OperationID: "deletePerson",
		Method:      http.MethodDelete,
		Path:        "/api/persons/{id}",
		Summary:     "Delete person",
		Description: "Deletes a person together with its flowers",
		Tags:        []string{"Persons"},
	}, s.handleDeletePerson)
}

// === DTOs ===

// FlowerRequest is one submitted flower.
type FlowerRequest struct {
	_    struct{} `json:"-" additionalProperties:"true"`
	Name string   `json:"name" required:"false" doc:"Flower name; blank entries are ignored"`
}

// PersonRequest is the body for creating or updating a person.
type PersonRequest struct {
	_       struct{}        `json:"-" additionalProperties:"true"`
	Name    string          `json:"name" required:"false" doc:"Person name; trimmed, must not be blank"`
	Flowers []FlowerRequest `json:"flowers,omitempty" doc:"Full flower set; replaces existing flowers on update"`
}

func (r PersonRequest) flowerNames() []string {
	names := make([]string, 0, len(r.Flowers))
	for _, f := range r.Flowers {
		names = append(names, f.Name)
	}
	return names
}

// FlowerResponse contains an owned flower in API responses.
type FlowerResponse struct {
	ID   int64  `json:"id" doc:"Flower ID"`
	Name string `json:"name" doc:"Flower name"`
}

// PersonResponse contains a person with flowers in API responses.
type PersonResponse struct {
	ID      int64            `json:"id" doc:"Person ID"`
	Name    string           `json:"name" doc:"Person name"`
	Flowers []FlowerResponse `json:"flowers" doc:"Owned flowers ordered by ID"`
}

func newPersonResponse(pf *domain.PersonFlowers) PersonResponse {
	flowers := make([]FlowerResponse, 0, len(pf.Flowers))
	for _, f := range pf.Flowers {
		flowers = append(flowers, FlowerResponse{ID: f.ID, Name: f.Name})
	}
	return PersonResponse{ID: pf.ID, Name: pf.Name, Flowers: flowers}
}

func newPersonResponses(list []*domain.PersonFlowers) []PersonResponse {
	resp := make([]PersonResponse, 0, len(list))
	for _, pf := range list {
		resp = append(resp, newPersonResponse(pf))
	}
	return resp
}

// ListPersonsOutput wraps the roster for Huma.
type ListPersonsOutput struct {
	Body []PersonResponse
}

// PersonIDInput addresses a single person.
type PersonIDInput struct {
	ID string `path:"id" doc:"Person ID"`
}

// CreatePersonInput contains parameters for creating a person.
type CreatePersonInput struct {
	Body PersonRequest
}

// UpdatePersonInput contains parameters for updating a person.
type UpdatePersonInput struct {
	ID   string `path:"id" doc:"Person ID"`
	Body PersonRequest
}

// PersonOutput wraps a single person for Huma.
type PersonOutput struct {
	Body PersonResponse
}

// === Handlers ===

func (s *Server) handleListPersons(ctx context.Context, _ *struct{}) (*ListPersonsOutput, error) {
	persons, err := s.services.Persons.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPersonsOutput{Body: newPersonResponses(persons)}, nil
}

func (s *Server) handleGetPerson(ctx context.Context, input *PersonIDInput) (*PersonOutput, error) {
	id, ok := parseID(input.ID)
	if !ok {
		return nil, domainerrors.NotFound("person not found")
	}

	pf, err := s.services.Persons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PersonOutput{Body: newPersonResponse(pf)}, nil
}

func (s *Server) handleCreatePerson(ctx context.Context, input *CreatePersonInput) (*PersonOutput, error) {
	pf, err := s.services.Persons.Create(ctx, input.Body.Name, input.Body.flowerNames())
	if err != nil {
		return nil, err
	}
	return &PersonOutput{Body: newPersonResponse(pf)}, nil
}

func (s *Server) handleUpdatePerson(ctx context.Context, input *UpdatePersonInput) (*PersonOutput, error) {
	id, ok := parseID(input.ID)
	if !ok {
		return nil, domainerrors.NotFound("person not found")
	}

	pf, err := s.services.Persons.Update(ctx, id, input.Body.Name, input.Body.flowerNames())
	if err != nil {
		return nil, err
	}
	return &PersonOutput{Body: newPersonResponse(pf)}, nil
}

func (s *Server) handleDeletePerson(ctx context.Context, input *PersonIDInput) (*MessageOutput, error) {
	id, ok := parseID(input.ID)
	if !ok {
		return nil, domainerrors.NotFound("person not found")
	}

	if err := s.services.Persons.Delete(ctx, id); err != nil {
		return nil, err
	}
	return deletedOutput(), nil
}
