package service

import (
	"context"
	"log/slog"

	"github.com/flowerlibrary/flower-server/internal/domain"
	"github.com/flowerlibrary/flower-server/internal/normalize"
	"github.com/flowerlibrary/flower-server/internal/store"
	"github.com/flowerlibrary/flower-server/internal/validation"
)

// Flower library messages.
const (
	msgLibraryNameRequired = "flower name is required"
	msgLibraryExists       = "flower already exists in the library"
	msgLibraryNameTaken    = "flower name already exists"
	msgLibraryNotFound     = "flower not found"
)

type libraryInput struct {
	Name string `json:"name" validate:"required"`
}

// LibraryService manages the flower catalog.
type LibraryService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewLibraryService creates a new library service.
func NewLibraryService(store store.Store, validator *validation.Validator, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns every catalog entry ordered by name.
func (s *LibraryService) List(ctx context.Context) ([]domain.LibraryEntry, error) {
	entries, err := s.store.ListLibrary(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list library", err, "", "")
	}
	return entries, nil
}

// Create adds a catalog entry with the trimmed name.
func (s *LibraryService) Create(ctx context.Context, name string) (*domain.LibraryEntry, error) {
	in := libraryInput{Name: normalize.Name(name)}
	if err := s.validator.ValidateWithMessage(in, msgLibraryNameRequired); err != nil {
		return nil, err
	}

	entry, err := s.store.CreateLibraryEntry(ctx, in.Name)
	if err != nil {
		return nil, storeError(s.logger, "create library entry", err, msgLibraryExists, "")
	}

	s.logger.Info("library entry created", "entry_id", entry.ID, "name", entry.Name)
	return entry, nil
}

// Update renames a catalog entry.
func (s *LibraryService) Update(ctx context.Context, id int64, name string) (*domain.LibraryEntry, error) {
	in := libraryInput{Name: normalize.Name(name)}
	if err := s.validator.ValidateWithMessage(in, msgLibraryNameRequired); err != nil {
		return nil, err
	}

	entry, err := s.store.UpdateLibraryEntry(ctx, id, in.Name)
	if err != nil {
		return nil, storeError(s.logger, "update library entry", err, msgLibraryNameTaken, msgLibraryNotFound)
	}

	s.logger.Info("library entry updated", "entry_id", entry.ID, "name", entry.Name)
	return entry, nil
}

// Delete removes a catalog entry.
func (s *LibraryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteLibraryEntry(ctx, id); err != nil {
		return storeError(s.logger, "delete library entry", err, "", msgLibraryNotFound)
	}

	s.logger.Info("library entry deleted", "entry_id", id)
	return nil
}
