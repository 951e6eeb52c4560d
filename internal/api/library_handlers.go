package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowerlibrary/flower-server/internal/domain"
	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
)

func (s *Server) registerLibraryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listLibrary",
		Method:      http.MethodGet,
		Path:        "/api/flower-library",
		Summary:     "List flower library",
		Description: "Returns every catalog entry ordered by name",
		Tags:        []string{"Flower Library"},
	}, s.handleListLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createLibraryEntry",
		Method:        http.MethodPost,
		Path:          "/api/flower-library",
		Summary:       "Create library entry",
		Description:   "Adds a flower name to the catalog",
		Tags:          []string{"Flower Library"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateLibraryEntry)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateLibraryEntry",
		Method:      http.MethodPut,
		Path:        "/api/flower-library/{id}",
		Summary:     "Update library entry",
		Description: "Renames a catalog entry",
		Tags:        []string{"Flower Library"},
	}, s.handleUpdateLibraryEntry)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteLibraryEntry",
		Method:      http.MethodDelete,
		Path:        "/api/flower-library/{id}",
		Summary:     "Delete library entry",
		Description: "Removes a catalog entry",
		Tags:        []string{"Flower Library"},
	}, s.handleDeleteLibraryEntry)
}

// === DTOs ===

// LibraryEntryRequest is the body for creating or renaming an entry.
type LibraryEntryRequest struct {
	_    struct{} `json:"-" additionalProperties:"true"`
	Name string   `json:"name" required:"false" doc:"Flower name; trimmed, must not be blank"`
}

// LibraryEntryResponse contains a catalog entry in API responses.
type LibraryEntryResponse struct {
	ID   int64  `json:"id" doc:"Entry ID"`
	Name string `json:"name" doc:"Flower name"`
}

func newLibraryEntryResponse(e *domain.LibraryEntry) LibraryEntryResponse {
	return LibraryEntryResponse{ID: e.ID, Name: e.Name}
}

// ListLibraryOutput wraps the catalog for Huma.
type ListLibraryOutput struct {
	Body []LibraryEntryResponse
}

// CreateLibraryEntryInput contains parameters for creating an entry.
type CreateLibraryEntryInput struct {
	Body LibraryEntryRequest
}

// UpdateLibraryEntryInput contains parameters for renaming an entry.
type UpdateLibraryEntryInput struct {
	ID   string `path:"id" doc:"Entry ID"`
	Body LibraryEntryRequest
}

// DeleteLibraryEntryInput contains parameters for deleting an entry.
type DeleteLibraryEntryInput struct {
	ID string `path:"id" doc:"Entry ID"`
}

// LibraryEntryOutput wraps a single entry for Huma.
type LibraryEntryOutput struct {
	Body LibraryEntryResponse
}

// === Handlers ===

func (s *Server) handleListLibrary(ctx context.Context, _ *struct{}) (*ListLibraryOutput, error) {
	entries, err := s.services.Library.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LibraryEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, newLibraryEntryResponse(&entries[i]))
	}
	return &ListLibraryOutput{Body: resp}, nil
}

func (s *Server) handleCreateLibraryEntry(ctx context.Context, input *CreateLibraryEntryInput) (*LibraryEntryOutput, error) {
	entry, err := s.services.Library.Create(ctx, input.Body.Name)
	if err != nil {
		return nil, err
	}
	return &LibraryEntryOutput{Body: newLibraryEntryResponse(entry)}, nil
}

func (s *Server) handleUpdateLibraryEntry(ctx context.Context, input *UpdateLibraryEntryInput) (*LibraryEntryOutput, error) {
	id, ok := parseID(input.ID)
	if !ok {
		return nil, domainerrors.NotFound("flower not found")
	}

	entry, err := s.services.Library.Update(ctx, id, input.Body.Name)
	if err != nil {
		return nil, err
	}
	return &LibraryEntryOutput{Body: newLibraryEntryResponse(entry)}, nil
}

func (s *Server) handleDeleteLibraryEntry(ctx context.Context, input *DeleteLibraryEntryInput) (*MessageOutput, error) {
	id, ok := parseID(input.ID)
	if !ok {
		return nil, domainerrors.NotFound("flower not found")
	}

	if err := s.services.Library.Delete(ctx, id); err != nil {
		return nil, err
	}
	return deletedOutput(), nil
}
