package repository

import (
	"context"
	"database/sql"

	"github.com/juanfer112/reservaPlaza-back-end/internal/model"
)

// SpaceRepo persists bookable spaces.
type SpaceRepo struct{ DB *sql.DB }

func NewSpaceRepo(db *sql.DB) *SpaceRepo { return &SpaceRepo{DB: db} }

// Create inserts a space and returns its ID. The referenced spacetype
// must exist; a failed foreign key is surfaced as-is.
func (r *SpaceRepo) Create(ctx context.Context, name string, spacetypeID uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO spaces (name, spacetype_id) VALUES (?,?)", name, spacetypeID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a space by id.
func (r *SpaceRepo) GetByID(ctx context.Context, id uint64) (model.Space, error) {
	var s model.Space
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, spacetype_id, created_at, updated_at FROM spaces WHERE id=? LIMIT 1",
		id).Scan(&s.ID, &s.Name, &s.SpacetypeID, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Space{}, ErrNotFound
	}
	return s, err
}

// List returns all spaces, optionally filtered by spacetype when
// spacetypeID is non-zero.
func (r *SpaceRepo) List(ctx context.Context, spacetypeID uint64) ([]model.Space, error) {
	query := "SELECT id, name, spacetype_id, created_at, updated_at FROM spaces"
	args := []any{}
	if spacetypeID != 0 {
		query += " WHERE spacetype_id=?"
		args = append(args, spacetypeID)
	}
	query += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Space, 0)
	for rows.Next() {
		var s model.Space
		if err := rows.Scan(&s.ID, &s.Name, &s.SpacetypeID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update rewrites a space's attributes.
func (r *SpaceRepo) Update(ctx context.Context, id uint64, name string, spacetypeID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE spaces SET name=?, spacetype_id=? WHERE id=?", name, spacetypeID, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a space; equipment and schedules cascade.
func (r *SpaceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM spaces WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
