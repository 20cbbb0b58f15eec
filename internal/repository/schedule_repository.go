package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/juanfer112/reservaPlaza-back-end/internal/booking"
)

// ScheduleRepo provides access to schedule rows and implements
// booking.Store. The schedules table carries a unique key on
// (space_id, date); a lost insert race surfaces as MySQL error 1062
// and is translated into booking.ErrSlotTaken so the coordinator can
// reject the batch instead of failing generically.
type ScheduleRepo struct{ DB *sql.DB }

// NewScheduleRepo returns a ScheduleRepo bound to the given database.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo { return &ScheduleRepo{DB: db} }

const scheduleViewCols = `s.id, s.date, s.space_id, s.enterprise_id, e.name, sp.name
			   FROM schedules s
			   JOIN enterprises e ON e.id = s.enterprise_id
			   JOIN spaces sp ON sp.id = s.space_id`

// WithTx runs fn inside one database transaction. Store methods called
// with the context fn receives join that transaction.
func (r *ScheduleRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.DB, fn)
}

// EnterpriseHoursForUpdate loads the enterprise's remaining hours under
// a row write lock, serializing concurrent debits against the same
// balance until the surrounding transaction ends.
func (r *ScheduleRepo) EnterpriseHoursForUpdate(ctx context.Context, enterpriseID uint64) (int, error) {
	var hours int
	err := q(ctx, r.DB).QueryRowContext(ctx,
		"SELECT current_hours FROM enterprises WHERE id=? FOR UPDATE",
		enterpriseID).Scan(&hours)
	if err == sql.ErrNoRows {
		return 0, booking.ErrEnterpriseNotFound
	}
	if err != nil {
		return 0, err
	}
	return hours, nil
}

// SlotTaken reports whether any schedule occupies the exact
// (space, date) pair. Equality, not overlap: slots have no end field,
// so two bookings conflict only when their start instants coincide.
func (r *ScheduleRepo) SlotTaken(ctx context.Context, spaceID uint64, date time.Time) (bool, error) {
	var taken bool
	err := q(ctx, r.DB).QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schedules WHERE space_id=? AND date=?)",
		spaceID, date).Scan(&taken)
	return taken, err
}

// SlotTakenExcept is SlotTaken ignoring one schedule, used when editing
// a record so it does not conflict with itself.
func (r *ScheduleRepo) SlotTakenExcept(ctx context.Context, spaceID uint64, date time.Time, scheduleID uint64) (bool, error) {
	var taken bool
	err := q(ctx, r.DB).QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schedules WHERE space_id=? AND date=? AND id<>?)",
		spaceID, date, scheduleID).Scan(&taken)
	return taken, err
}

// DebitHours decrements the enterprise's balance. Callers must have
// authorized the amount via EnterpriseHoursForUpdate inside the same
// transaction.
func (r *ScheduleRepo) DebitHours(ctx context.Context, enterpriseID uint64, amount int) error {
	res, err := q(ctx, r.DB).ExecContext(ctx,
		"UPDATE enterprises SET current_hours = current_hours - ? WHERE id=?",
		amount, enterpriseID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return booking.ErrEnterpriseNotFound
	}
	return nil
}

// InsertSchedules persists every slot for the enterprise and returns
// the created records with denormalized names. Must run inside the
// booking transaction so a failed insert rolls back earlier ones.
func (r *ScheduleRepo) InsertSchedules(ctx context.Context, enterpriseID uint64, slots []booking.Slot) ([]booking.View, error) {
	views := make([]booking.View, 0, len(slots))
	for _, slot := range slots {
		res, err := q(ctx, r.DB).ExecContext(ctx,
			"INSERT INTO schedules (date, space_id, enterprise_id) VALUES (?,?,?)",
			slot.Date, slot.SpaceID, enterpriseID)
		if err != nil {
			if isDuplicateKey(err) {
				return nil, booking.ErrSlotTaken
			}
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		view, err := r.viewByID(ctx, uint64(id))
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetSchedule loads one schedule row.
func (r *ScheduleRepo) GetSchedule(ctx context.Context, id uint64) (booking.Record, error) {
	var rec booking.Record
	err := q(ctx, r.DB).QueryRowContext(ctx,
		"SELECT id, space_id, enterprise_id, date FROM schedules WHERE id=?",
		id).Scan(&rec.ID, &rec.SpaceID, &rec.EnterpriseID, &rec.Date)
	if err == sql.ErrNoRows {
		return booking.Record{}, booking.ErrScheduleNotFound
	}
	if err != nil {
		return booking.Record{}, err
	}
	return rec, nil
}

// UpdateScheduleSlot rewrites a schedule's slot fields. The unique key
// remains the backstop for races between the conflict check and this
// write.
func (r *ScheduleRepo) UpdateScheduleSlot(ctx context.Context, id uint64, spaceID uint64, date time.Time) (booking.View, error) {
	_, err := q(ctx, r.DB).ExecContext(ctx,
		"UPDATE schedules SET space_id=?, date=? WHERE id=?",
		spaceID, date, id)
	if err != nil {
		if isDuplicateKey(err) {
			return booking.View{}, booking.ErrSlotTaken
		}
		return booking.View{}, err
	}
	return r.viewByID(ctx, id)
}

// ListRange returns the schedules with start <= date < end ordered by
// date then id for deterministic paging.
func (r *ScheduleRepo) ListRange(ctx context.Context, start, end time.Time) ([]booking.View, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx,
		`SELECT `+scheduleViewCols+`
		 WHERE s.date >= ? AND s.date < ?
		 ORDER BY s.date, s.id`,
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	views := make([]booking.View, 0)
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

// ListByEnterprise returns an enterprise's schedules ordered by date.
func (r *ScheduleRepo) ListByEnterprise(ctx context.Context, enterpriseID uint64) ([]booking.View, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx,
		`SELECT `+scheduleViewCols+`
		 WHERE s.enterprise_id = ?
		 ORDER BY s.date, s.id`,
		enterpriseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	views := make([]booking.View, 0)
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (r *ScheduleRepo) viewByID(ctx context.Context, id uint64) (booking.View, error) {
	row := q(ctx, r.DB).QueryRowContext(ctx,
		`SELECT `+scheduleViewCols+` WHERE s.id = ?`, id)
	return scanView(row)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanView(row rowScanner) (booking.View, error) {
	var v booking.View
	var date time.Time
	if err := row.Scan(&v.ID, &date, &v.SpaceID, &v.EnterpriseID, &v.EnterpriseName, &v.SpaceName); err != nil {
		return booking.View{}, err
	}
	v.Date = date.Format(booking.DateLayout)
	return v, nil
}
