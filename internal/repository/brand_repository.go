package repository

import (
	"context"
	"database/sql"

	"github.com/juanfer112/reservaPlaza-back-end/internal/model"
)

// BrandRepo persists enterprise brands. Ownership checks live here so
// handlers can rely on ErrForbidden instead of re-querying.
type BrandRepo struct{ DB *sql.DB }

func NewBrandRepo(db *sql.DB) *BrandRepo { return &BrandRepo{DB: db} }

// Create inserts a brand under the given enterprise and returns its ID.
func (r *BrandRepo) Create(ctx context.Context, b model.Brand) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO brands (name, description, logo, enterprise_id) VALUES (?,?,?,?)",
		b.Name, b.Description, b.Logo, b.EnterpriseID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a brand by id.
func (r *BrandRepo) GetByID(ctx context.Context, id uint64) (model.Brand, error) {
	var b model.Brand
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, description, logo, enterprise_id FROM brands WHERE id=? LIMIT 1",
		id).Scan(&b.ID, &b.Name, &b.Description, &b.Logo, &b.EnterpriseID)
	if err == sql.ErrNoRows {
		return model.Brand{}, ErrNotFound
	}
	return b, err
}

// ListByEnterprise returns an enterprise's brands ordered by id.
func (r *BrandRepo) ListByEnterprise(ctx context.Context, enterpriseID uint64) ([]model.Brand, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, description, logo, enterprise_id FROM brands WHERE enterprise_id=? ORDER BY id",
		enterpriseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Brand, 0)
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Logo, &b.EnterpriseID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update rewrites a brand owned by the given enterprise. ErrForbidden
// is returned when the brand belongs to someone else.
func (r *BrandRepo) Update(ctx context.Context, id, enterpriseID uint64, name, description, logo string) error {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.EnterpriseID != enterpriseID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE brands SET name=?, description=?, logo=? WHERE id=?",
		name, description, logo, id)
	return err
}

// Delete removes a brand owned by the given enterprise.
func (r *BrandRepo) Delete(ctx context.Context, id, enterpriseID uint64) error {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.EnterpriseID != enterpriseID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM brands WHERE id=?", id)
	return err
}
