package service

import (
	"context"
	"log/slog"

	"github.com/flowerlibrary/flower-server/internal/domain"
	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
	"github.com/flowerlibrary/flower-server/internal/normalize"
	"github.com/flowerlibrary/flower-server/internal/store"
	"github.com/flowerlibrary/flower-server/internal/validation"
)

// Person messages.
const (
	msgPersonNameRequired = "person name is required"
	msgPersonNameTaken    = "person name already exists"
	msgPersonNotFound     = "person not found"
)

type personInput struct {
	Name    string   `json:"name" validate:"required"`
	Flowers []string `json:"flowers"`
}

// newPersonInput trims the name and cleans the flower list.
func newPersonInput(name string, flowers []string) personInput {
	return personInput{
		Name:    normalize.Name(name),
		Flowers: normalize.FlowerNames(flowers),
	}
}

// PersonService manages persons and the flowers they own.
type PersonService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewPersonService creates a new person service.
func NewPersonService(store store.Store, validator *validation.Validator, logger *slog.Logger) *PersonService {
	return &PersonService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns every person ordered by name with all of its flowers.
// Flowers are loaded in one query and grouped in memory.
func (s *PersonService) List(ctx context.Context) ([]*domain.PersonFlowers, error) {
	persons, err := s.store.ListPersons(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list persons", err, "", "")
	}

	flowers, err := s.store.ListFlowers(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list flowers", err, "", "")
	}

	return domain.GroupFlowers(persons, flowers), nil
}

// Get returns a person with all of its flowers.
func (s *PersonService) Get(ctx context.Context, id int64) (*domain.PersonFlowers, error) {
	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "get person", err, "", msgPersonNotFound)
	}

	flowers, err := s.store.ListFlowersByPerson(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "list person flowers", err, "", "")
	}

	return domain.NewPersonFlowers(*person, flowers), nil
}

// Create adds a person together with its flowers atomically.
// Blank flower names are dropped; the rest keep their submission order.
func (s *PersonService) Create(ctx context.Context, name string, flowers []string) (*domain.PersonFlowers, error) {
	in := newPersonInput(name, flowers)
	if err := s.validator.ValidateWithMessage(in, msgPersonNameRequired); err != nil {
		return nil, err
	}

	pf, err := s.store.CreatePersonWithFlowers(ctx, in.Name, in.Flowers)
	if err != nil {
		return nil, storeError(s.logger, "create person", err, msgPersonNameTaken, "")
	}

	s.logger.Info("person created",
		"person_id", pf.ID,
		"name", pf.Name,
		"flowers", len(pf.Flowers),
	)
	return pf, nil
}

// Update renames a person and replaces its flower set atomically.
func (s *PersonService) Update(ctx context.Context, id int64, name string, flowers []string) (*domain.PersonFlowers, error) {
	in := newPersonInput(name, flowers)
	if err := s.validator.ValidateWithMessage(in, msgPersonNameRequired); err != nil {
		return nil, err
	}

	if err := s.requireExists(ctx, id); err != nil {
		return nil, err
	}

	// A concurrent delete between the check and the transaction surfaces as ErrNotFound.
	pf, err := s.store.UpdatePersonWithFlowers(ctx, id, in.Name, in.Flowers)
	if err != nil {
		return nil, storeError(s.logger, "update person", err, msgPersonNameTaken, msgPersonNotFound)
	}

	s.logger.Info("person updated",
		"person_id", pf.ID,
		"name", pf.Name,
		"flowers", len(pf.Flowers),
	)
	return pf, nil
}

// Delete removes a person; its flowers are removed by cascade.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	if err := s.requireExists(ctx, id); err != nil {
		return err
	}

	if err := s.store.DeletePerson(ctx, id); err != nil {
		return storeError(s.logger, "delete person", err, "", msgPersonNotFound)
	}

	s.logger.Info("person deleted", "person_id", id)
	return nil
}

func (s *PersonService) requireExists(ctx context.Context, id int64) error {
	exists, err := s.store.PersonExists(ctx, id)
	if err != nil {
		return storeError(s.logger, "check person", err, "", "")
	}
	if !exists {
		return domainerrors.NotFound(msgPersonNotFound)
	}
	return nil
}
