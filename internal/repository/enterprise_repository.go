package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/juanfer112/reservaPlaza-back-end/internal/model"
	"github.com/juanfer112/reservaPlaza-back-end/internal/utils"
)

// EnterpriseRepo persists enterprise accounts.
type EnterpriseRepo struct{ DB *sql.DB }

func NewEnterpriseRepo(db *sql.DB) *EnterpriseRepo { return &EnterpriseRepo{DB: db} }

const enterpriseCols = "id, name, last_name, email, password_hash, cif, phone, tot_hours, current_hours, is_admin, created_at, updated_at"

// Create inserts an enterprise and returns its ID. The hours balance
// starts equal to the purchased entitlement; only confirmed bookings
// ever decrement it.
func (r *EnterpriseRepo) Create(ctx context.Context, e model.Enterprise, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO enterprises (name, last_name, email, password_hash, cif, phone, tot_hours, current_hours, is_admin)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		e.Name, e.LastName, strings.ToLower(strings.TrimSpace(e.Email)), hash,
		e.CIF, e.Phone, e.TotHours, e.TotHours, e.IsAdmin)
	if err != nil {
		if isDuplicateKey(err) {
			if strings.Contains(err.Error(), "phone") {
				return 0, ErrPhoneExists
			}
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an enterprise by normalized email.
func (r *EnterpriseRepo) GetByEmail(ctx context.Context, email string) (model.Enterprise, error) {
	return r.get(ctx, "email=?", strings.ToLower(strings.TrimSpace(email)))
}

// GetByID fetches an enterprise by id.
func (r *EnterpriseRepo) GetByID(ctx context.Context, id uint64) (model.Enterprise, error) {
	return r.get(ctx, "id=?", id)
}

func (r *EnterpriseRepo) get(ctx context.Context, where string, arg any) (model.Enterprise, error) {
	var e model.Enterprise
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+enterpriseCols+" FROM enterprises WHERE "+where+" LIMIT 1", arg).
		Scan(&e.ID, &e.Name, &e.LastName, &e.Email, &e.PasswordHash, &e.CIF, &e.Phone,
			&e.TotHours, &e.CurrentHours, &e.IsAdmin, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Enterprise{}, ErrNotFound
	}
	return e, err
}

// List returns all enterprises ordered by id.
func (r *EnterpriseRepo) List(ctx context.Context) ([]model.Enterprise, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+enterpriseCols+" FROM enterprises ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Enterprise, 0)
	for rows.Next() {
		var e model.Enterprise
		if err := rows.Scan(&e.ID, &e.Name, &e.LastName, &e.Email, &e.PasswordHash, &e.CIF, &e.Phone,
			&e.TotHours, &e.CurrentHours, &e.IsAdmin, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateProfile rewrites the mutable profile fields. The hours columns
// are deliberately not touched here: tot_hours is immutable and
// current_hours belongs to the booking path.
func (r *EnterpriseRepo) UpdateProfile(ctx context.Context, id uint64, name, lastName, cif, phone string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE enterprises SET name=?, last_name=?, cif=?, phone=? WHERE id=?",
		name, lastName, cif, phone, id)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrPhoneExists
		}
		return err
	}
	return requireAffected(res)
}

// Delete removes an enterprise; its brands and schedules are removed by
// foreign key cascade.
func (r *EnterpriseRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM enterprises WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
