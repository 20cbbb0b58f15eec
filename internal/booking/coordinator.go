package booking

import (
	"context"
	"time"
)

// Item is one requested slot inside a booking batch. EnterpriseID is
// optional; when present it must match the batch enterprise.
type Item struct {
	Date         string `json:"date"`
	SpaceID      uint64 `json:"space_id"`
	EnterpriseID uint64 `json:"enterprise_id,omitempty"`
}

// Request is a batch of slots to book for a single enterprise. The
// batch commits atomically: either every slot is persisted and the
// enterprise's hours are debited by the batch size, or nothing is.
type Request struct {
	EnterpriseID uint64
	Items        []Item
}

// Patch is the allow-listed partial update for a schedule. Only the
// slot fields may be edited; nil fields keep their current value.
type Patch struct {
	Date    *string `json:"date,omitempty"`
	SpaceID *uint64 `json:"space_id,omitempty"`
}

// Slot is a (space, start instant) pair, the unit of booking.
type Slot struct {
	SpaceID uint64
	Date    time.Time
}

// Record is a stored schedule row as the coordinator needs to see it.
type Record struct {
	ID           uint64
	SpaceID      uint64
	EnterpriseID uint64
	Date         time.Time
}

// View is the serialized schedule shape returned at the boundary.
// EnterpriseName and SpaceName are join-denormalized for display, not
// stored fields.
type View struct {
	ID             uint64 `json:"id"`
	Date           string `json:"date"`
	SpaceID        uint64 `json:"space_id"`
	EnterpriseID   uint64 `json:"enterprise_id"`
	EnterpriseName string `json:"enterprise_name"`
	SpaceName      string `json:"space_name"`
}

// Store is the durable storage the coordinator works against. WithTx
// runs fn inside a single transaction; every other method honors the
// transaction carried by the context it receives. Implementations must
// hold a write lock on the enterprise row from
// EnterpriseHoursForUpdate until the transaction ends, and must return
// ErrSlotTaken when an insert or update loses the (space_id, date)
// unique key race.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	EnterpriseHoursForUpdate(ctx context.Context, enterpriseID uint64) (int, error)
	SlotTaken(ctx context.Context, spaceID uint64, date time.Time) (bool, error)
	SlotTakenExcept(ctx context.Context, spaceID uint64, date time.Time, scheduleID uint64) (bool, error)
	DebitHours(ctx context.Context, enterpriseID uint64, amount int) error
	InsertSchedules(ctx context.Context, enterpriseID uint64, slots []Slot) ([]View, error)
	GetSchedule(ctx context.Context, id uint64) (Record, error)
	UpdateScheduleSlot(ctx context.Context, id uint64, spaceID uint64, date time.Time) (View, error)
	ListRange(ctx context.Context, start, end time.Time) ([]View, error)
}

// Coordinator orchestrates batch validation and the atomic
// commit-or-reject of booking requests.
type Coordinator struct {
	store Store
	now   func() time.Time
}

// NewCoordinator builds a Coordinator over the given store. now may be
// nil, in which case the operating-timezone clock is used.
func NewCoordinator(store Store, now func() time.Time) *Coordinator {
	if now == nil {
		now = Now
	}
	return &Coordinator{store: store, now: now}
}

// Book validates and commits a booking batch. Rejections carry zero
// side effects: the schedule table and the enterprise's hours balance
// are untouched unless every item is accepted.
//
// Validation order: batch shape (empty, mixed enterprises, date
// format) is checked before touching the store; then, inside one
// transaction, the enterprise is resolved under lock and its balance
// authorized for the whole batch, each item is conflict-checked in
// input order (against existing rows and against earlier items of the
// same batch), and items not strictly after the reference clock mark
// the batch as rejectable. Only when all items survive are the hours
// debited and the rows inserted.
func (c *Coordinator) Book(ctx context.Context, req Request) ([]View, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyBatch
	}
	slots := make([]Slot, 0, len(req.Items))
	for _, it := range req.Items {
		if it.EnterpriseID != 0 && it.EnterpriseID != req.EnterpriseID {
			return nil, ErrMixedEnterprises
		}
		date, err := ParseDate(it.Date)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{SpaceID: it.SpaceID, Date: date})
	}

	var created []View
	err := c.store.WithTx(ctx, func(txCtx context.Context) error {
		hours, err := c.store.EnterpriseHoursForUpdate(txCtx, req.EnterpriseID)
		if err != nil {
			return err
		}
		if hours < len(slots) {
			return ErrInsufficientHours
		}

		now := c.now()
		pastDated := false
		seen := make(map[Slot]struct{}, len(slots))
		for _, slot := range slots {
			if _, dup := seen[slot]; dup {
				return ErrSlotTaken
			}
			taken, err := c.store.SlotTaken(txCtx, slot.SpaceID, slot.Date)
			if err != nil {
				return err
			}
			if taken {
				return ErrSlotTaken
			}
			seen[slot] = struct{}{}
			if !slot.Date.After(now) {
				pastDated = true
			}
		}
		if pastDated {
			return ErrPastDate
		}

		if err := c.store.DebitHours(txCtx, req.EnterpriseID, len(slots)); err != nil {
			return err
		}
		created, err = c.store.InsertSchedules(txCtx, req.EnterpriseID, slots)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update edits a schedule's slot fields. The new (space, date) pair is
// re-checked for conflicts, excluding the record itself, before the
// edit commits; on conflict the original record is left unchanged.
func (c *Coordinator) Update(ctx context.Context, id uint64, patch Patch) (View, error) {
	var updated View
	err := c.store.WithTx(ctx, func(txCtx context.Context) error {
		rec, err := c.store.GetSchedule(txCtx, id)
		if err != nil {
			return err
		}
		spaceID := rec.SpaceID
		date := rec.Date
		if patch.SpaceID != nil {
			spaceID = *patch.SpaceID
		}
		if patch.Date != nil {
			date, err = ParseDate(*patch.Date)
			if err != nil {
				return err
			}
		}
		taken, err := c.store.SlotTakenExcept(txCtx, spaceID, date, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
		updated, err = c.store.UpdateScheduleSlot(txCtx, id, spaceID, date)
		return err
	})
	if err != nil {
		return View{}, err
	}
	return updated, nil
}

// Window lists the schedules inside the week window anchored at the
// given date string, ordered by date. The anchor must match DateLayout.
func (c *Coordinator) Window(ctx context.Context, anchor string) ([]View, error) {
	at, err := ParseDate(anchor)
	if err != nil {
		return nil, err
	}
	start, end := WeekWindow(at)
	return c.store.ListRange(ctx, start, end)
}
