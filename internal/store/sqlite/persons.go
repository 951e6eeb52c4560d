package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/flowerlibrary/flower-server/internal/domain"
	"github.com/flowerlibrary/flower-server/internal/store"
)

type personRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r personRow) toDomain() domain.Person {
	return domain.Person{ID: r.ID, Name: r.Name}
}

func personsFromRows(rows []personRow) []domain.Person {
	persons := make([]domain.Person, 0, len(rows))
	for _, r := range rows {
		persons = append(persons, r.toDomain())
	}
	return persons
}

// ListPersons returns every person ordered by name.
func (s *Store) ListPersons(ctx context.Context) ([]domain.Person, error) {
	var rows []personRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, name FROM persons ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return personsFromRows(rows), nil
}

// GetPerson retrieves a person by ID.
// Returns store.ErrNotFound if the person does not exist.
func (s *Store) GetPerson(ctx context.Context, id int64) (*domain.Person, error) {
	var r personRow
	err := s.db.GetContext(ctx, &r, `SELECT id, name FROM persons WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	p := r.toDomain()
	return &p, nil
}

// PersonExists reports whether a person with the given ID exists.
func (s *Store) PersonExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM persons WHERE id = ?)`, id); err != nil {
		return false, fmt.Errorf("person exists: %w", err)
	}
	return exists, nil
}

// CreatePersonWithFlowers inserts a person and its flowers in one transaction.
// Flowers are inserted in the given order. On any failure nothing is persisted.
// Returns store.ErrAlreadyExists if the name is taken.
func (s *Store) CreatePersonWithFlowers(ctx context.Context, name string, flowers []string) (*domain.PersonFlowers, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO persons (name) VALUES (?)`, name)
	if err != nil {
		return nil, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("person id: %w", err)
	}

	created, err := insertFlowers(ctx, tx, id, flowers)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.logger.Debug("person created", "person_id", id, "flowers", len(created))
	return domain.NewPersonFlowers(domain.Person{ID: id, Name: name}, created), nil
}

// UpdatePersonWithFlowers renames a person and replaces its whole flower set
// in one transaction. On any failure the name and flowers are left unchanged.
// Returns store.ErrNotFound if no row was renamed and store.ErrAlreadyExists
// if the new name belongs to another person.
func (s *Store) UpdatePersonWithFlowers(ctx context.Context, id int64, name string, flowers []string) (*domain.PersonFlowers, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE persons SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return nil, classify(err)
	}
	if err := rowsAffectedOrNotFound(res.RowsAffected()); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM flowers WHERE person_id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete flowers: %w", err)
	}

	created, err := insertFlowers(ctx, tx, id, flowers)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.logger.Debug("person updated", "person_id", id, "flowers", len(created))
	return domain.NewPersonFlowers(domain.Person{ID: id, Name: name}, created), nil
}

// DeletePerson removes a person. Owned flowers go with it via ON DELETE CASCADE.
func (s *Store) DeletePerson(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return rowsAffectedOrNotFound(res.RowsAffected())
}

// insertFlowers adds flowers for personID within tx and returns them with their new IDs.
func insertFlowers(ctx context.Context, tx *sqlx.Tx, personID int64, names []string) ([]domain.Flower, error) {
	created := make([]domain.Flower, 0, len(names))
	if len(names) == 0 {
		return created, nil
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO flowers (name, person_id) VALUES (?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare flower insert: %w", err)
	}
	defer stmt.Close()

	for _, name := range names {
		res, err := stmt.ExecContext(ctx, name, personID)
		if err != nil {
			return nil, fmt.Errorf("insert flower %q: %w", name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("flower id: %w", err)
		}
		created = append(created, domain.Flower{ID: id, Name: name, PersonID: personID})
	}
	return created, nil
}
