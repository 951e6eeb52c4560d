package sqlite

import (
	"context"
	"fmt"

	"github.com/flowerlibrary/flower-server/internal/domain"
)

type libraryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r libraryRow) toDomain() domain.LibraryEntry {
	return domain.LibraryEntry{ID: r.ID, Name: r.Name}
}

// ListLibrary returns every catalog entry ordered by name.
func (s *Store) ListLibrary(ctx context.Context) ([]domain.LibraryEntry, error) {
	var rows []libraryRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, name FROM flower_library ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}

	entries := make([]domain.LibraryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toDomain())
	}
	return entries, nil
}

// CreateLibraryEntry inserts a catalog entry.
// Returns store.ErrAlreadyExists if the name is taken.
func (s *Store) CreateLibraryEntry(ctx context.Context, name string) (*domain.LibraryEntry, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO flower_library (name) VALUES (?)`, name)
	if err != nil {
		return nil, classify(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("library entry id: %w", err)
	}
	return &domain.LibraryEntry{ID: id, Name: name}, nil
}

// UpdateLibraryEntry renames a catalog entry.
// Renaming an entry to its current name succeeds.
func (s *Store) UpdateLibraryEntry(ctx context.Context, id int64, name string) (*domain.LibraryEntry, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE flower_library SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return nil, classify(err)
	}
	if err := rowsAffectedOrNotFound(res.RowsAffected()); err != nil {
		return nil, err
	}
	return &domain.LibraryEntry{ID: id, Name: name}, nil
}

// DeleteLibraryEntry removes a catalog entry.
func (s *Store) DeleteLibraryEntry(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM flower_library WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete library entry: %w", err)
	}
	return rowsAffectedOrNotFound(res.RowsAffected())
}
