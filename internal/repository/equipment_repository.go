package repository

import (
	"context"
	"database/sql"

	"github.com/juanfer112/reservaPlaza-back-end/internal/model"
)

// EquipmentRepo persists equipment installed in spaces.
type EquipmentRepo struct{ DB *sql.DB }

func NewEquipmentRepo(db *sql.DB) *EquipmentRepo { return &EquipmentRepo{DB: db} }

// Create inserts an equipment item and returns its ID.
func (r *EquipmentRepo) Create(ctx context.Context, e model.Equipment) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO equipments (quantity, name, description, space_id) VALUES (?,?,?,?)",
		e.Quantity, e.Name, e.Description, e.SpaceID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches an equipment item by id.
func (r *EquipmentRepo) GetByID(ctx context.Context, id uint64) (model.Equipment, error) {
	var e model.Equipment
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, quantity, name, description, space_id FROM equipments WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.Quantity, &e.Name, &e.Description, &e.SpaceID)
	if err == sql.ErrNoRows {
		return model.Equipment{}, ErrNotFound
	}
	return e, err
}

// List returns equipment items, optionally scoped to one space when
// spaceID is non-zero.
func (r *EquipmentRepo) List(ctx context.Context, spaceID uint64) ([]model.Equipment, error) {
	query := "SELECT id, quantity, name, description, space_id FROM equipments"
	args := []any{}
	if spaceID != 0 {
		query += " WHERE space_id=?"
		args = append(args, spaceID)
	}
	query += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Equipment, 0)
	for rows.Next() {
		var e model.Equipment
		if err := rows.Scan(&e.ID, &e.Quantity, &e.Name, &e.Description, &e.SpaceID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update rewrites an equipment item.
func (r *EquipmentRepo) Update(ctx context.Context, id uint64, quantity int, name, description string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE equipments SET quantity=?, name=?, description=? WHERE id=?",
		quantity, name, description, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes an equipment item.
func (r *EquipmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM equipments WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
