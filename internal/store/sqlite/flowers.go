package sqlite

import (
	"context"
	"fmt"

	"github.com/flowerlibrary/flower-server/internal/domain"
	"github.com/flowerlibrary/flower-server/internal/normalize"
)

type flowerRow struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	PersonID int64  `db:"person_id"`
}

func flowersFromRows(rows []flowerRow) []domain.Flower {
	flowers := make([]domain.Flower, 0, len(rows))
	for _, r := range rows {
		flowers = append(flowers, domain.Flower{ID: r.ID, Name: r.Name, PersonID: r.PersonID})
	}
	return flowers
}

// ListFlowers returns every owned flower ordered by ID.
func (s *Store) ListFlowers(ctx context.Context) ([]domain.Flower, error) {
	var rows []flowerRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, name, person_id FROM flowers ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list flowers: %w", err)
	}
	return flowersFromRows(rows), nil
}

// ListFlowersByPerson returns the flowers owned by personID ordered by ID.
func (s *Store) ListFlowersByPerson(ctx context.Context, personID int64) ([]domain.Flower, error) {
	var rows []flowerRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, name, person_id FROM flowers WHERE person_id = ? ORDER BY id`, personID); err != nil {
		return nil, fmt.Errorf("list flowers for person %d: %w", personID, err)
	}
	return flowersFromRows(rows), nil
}

// SearchPersonsByName returns persons whose name contains term, ordered by name.
// Matching follows SQLite LIKE: ASCII case-insensitive, wildcards in term match literally.
func (s *Store) SearchPersonsByName(ctx context.Context, term string) ([]domain.Person, error) {
	var rows []personRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, name FROM persons WHERE name LIKE ? ESCAPE '\' ORDER BY name, id`,
		normalize.ContainsPattern(term)); err != nil {
		return nil, fmt.Errorf("search persons: %w", err)
	}
	return personsFromRows(rows), nil
}

// SearchFlowersByName returns owned flowers whose name contains term, ordered by name then ID.
func (s *Store) SearchFlowersByName(ctx context.Context, term string) ([]domain.Flower, error) {
	var rows []flowerRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT DISTINCT id, name, person_id FROM flowers WHERE name LIKE ? ESCAPE '\' ORDER BY name, id`,
		normalize.ContainsPattern(term)); err != nil {
		return nil, fmt.Errorf("search flowers: %w", err)
	}
	return flowersFromRows(rows), nil
}
