package repository

import (
	"context"
	"database/sql"

	"github.com/juanfer112/reservaPlaza-back-end/internal/model"
)

// SpacetypeRepo persists space categories.
type SpacetypeRepo struct{ DB *sql.DB }

func NewSpacetypeRepo(db *sql.DB) *SpacetypeRepo { return &SpacetypeRepo{DB: db} }

// Create inserts a spacetype and returns its ID.
func (r *SpacetypeRepo) Create(ctx context.Context, description string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO spacetypes (description) VALUES (?)", description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a spacetype by id.
func (r *SpacetypeRepo) GetByID(ctx context.Context, id uint64) (model.Spacetype, error) {
	var st model.Spacetype
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, description FROM spacetypes WHERE id=? LIMIT 1",
		id).Scan(&st.ID, &st.Description)
	if err == sql.ErrNoRows {
		return model.Spacetype{}, ErrNotFound
	}
	return st, err
}

// List returns all spacetypes ordered by id.
func (r *SpacetypeRepo) List(ctx context.Context) ([]model.Spacetype, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, description FROM spacetypes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Spacetype, 0)
	for rows.Next() {
		var st model.Spacetype
		if err := rows.Scan(&st.ID, &st.Description); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Update rewrites a spacetype's description.
func (r *SpacetypeRepo) Update(ctx context.Context, id uint64, description string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE spacetypes SET description=? WHERE id=?", description, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a spacetype. Deletion fails while spaces still
// reference it; the restrict foreign key keeps categories from
// disappearing under their spaces.
func (r *SpacetypeRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM spacetypes WHERE id=?", id)
	if err != nil {
		if isRowReferenced(err) {
			return ErrInUse
		}
		return err
	}
	return requireAffected(res)
}
