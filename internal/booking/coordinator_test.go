package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"
)

// stubStore is an in-memory Store. WithTx snapshots all state before
// running fn and restores it when fn fails, mirroring a rolled-back
// database transaction.
type stubStore struct {
	hours    map[uint64]int
	existing map[Slot]uint64 // slot -> schedule id
	records  map[uint64]Record
	nextID   uint64
}

func newStubStore(hours map[uint64]int) *stubStore {
	return &stubStore{
		hours:    hours,
		existing: make(map[Slot]uint64),
		records:  make(map[uint64]Record),
		nextID:   1,
	}
}

func (s *stubStore) seed(enterpriseID, spaceID uint64, date time.Time) uint64 {
	id := s.nextID
	s.nextID++
	rec := Record{ID: id, SpaceID: spaceID, EnterpriseID: enterpriseID, Date: date}
	s.records[id] = rec
	s.existing[Slot{SpaceID: spaceID, Date: date}] = id
	return id
}

func (s *stubStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	hours := make(map[uint64]int, len(s.hours))
	for k, v := range s.hours {
		hours[k] = v
	}
	existing := make(map[Slot]uint64, len(s.existing))
	for k, v := range s.existing {
		existing[k] = v
	}
	records := make(map[uint64]Record, len(s.records))
	for k, v := range s.records {
		records[k] = v
	}
	nextID := s.nextID

	if err := fn(ctx); err != nil {
		s.hours, s.existing, s.records, s.nextID = hours, existing, records, nextID
		return err
	}
	return nil
}

func (s *stubStore) EnterpriseHoursForUpdate(ctx context.Context, enterpriseID uint64) (int, error) {
	h, ok := s.hours[enterpriseID]
	if !ok {
		return 0, ErrEnterpriseNotFound
	}
	return h, nil
}

func (s *stubStore) SlotTaken(ctx context.Context, spaceID uint64, date time.Time) (bool, error) {
	_, ok := s.existing[Slot{SpaceID: spaceID, Date: date}]
	return ok, nil
}

func (s *stubStore) SlotTakenExcept(ctx context.Context, spaceID uint64, date time.Time, scheduleID uint64) (bool, error) {
	id, ok := s.existing[Slot{SpaceID: spaceID, Date: date}]
	return ok && id != scheduleID, nil
}

func (s *stubStore) DebitHours(ctx context.Context, enterpriseID uint64, amount int) error {
	if s.hours[enterpriseID] < amount {
		return ErrInsufficientHours
	}
	s.hours[enterpriseID] -= amount
	return nil
}

func (s *stubStore) InsertSchedules(ctx context.Context, enterpriseID uint64, slots []Slot) ([]View, error) {
	views := make([]View, 0, len(slots))
	for _, slot := range slots {
		if _, ok := s.existing[slot]; ok {
			return nil, ErrSlotTaken
		}
		id := s.nextID
		s.nextID++
		rec := Record{ID: id, SpaceID: slot.SpaceID, EnterpriseID: enterpriseID, Date: slot.Date}
		s.records[id] = rec
		s.existing[slot] = id
		views = append(views, viewOf(rec))
	}
	return views, nil
}

func (s *stubStore) GetSchedule(ctx context.Context, id uint64) (Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return Record{}, ErrScheduleNotFound
	}
	return rec, nil
}

func (s *stubStore) UpdateScheduleSlot(ctx context.Context, id uint64, spaceID uint64, date time.Time) (View, error) {
	rec, ok := s.records[id]
	if !ok {
		return View{}, ErrScheduleNotFound
	}
	delete(s.existing, Slot{SpaceID: rec.SpaceID, Date: rec.Date})
	rec.SpaceID = spaceID
	rec.Date = date
	s.records[id] = rec
	s.existing[Slot{SpaceID: spaceID, Date: date}] = id
	return viewOf(rec), nil
}

func (s *stubStore) ListRange(ctx context.Context, start, end time.Time) ([]View, error) {
	out := make([]View, 0)
	for _, rec := range s.records {
		if rec.Date.Before(start) || !rec.Date.Before(end) {
			continue
		}
		out = append(out, viewOf(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func viewOf(rec Record) View {
	return View{
		ID:             rec.ID,
		Date:           rec.Date.Format(DateLayout),
		SpaceID:        rec.SpaceID,
		EnterpriseID:   rec.EnterpriseID,
		EnterpriseName: fmt.Sprintf("enterprise-%d", rec.EnterpriseID),
		SpaceName:      fmt.Sprintf("space-%d", rec.SpaceID),
	}
}

var testNow = time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

func newTestCoordinator(hours map[uint64]int) (*Coordinator, *stubStore) {
	store := newStubStore(hours)
	co := NewCoordinator(store, func() time.Time { return testNow })
	return co, store
}

func TestCoordinator_Book(t *testing.T) {
	t.Parallel()

	t.Run("commits a full batch and debits one hour per slot", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})

		views, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-14 09:00:00", SpaceID: 1},
				{Date: "2024-03-14 10:00:00", SpaceID: 1},
				{Date: "2024-03-14 09:00:00", SpaceID: 2},
			},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("expected 3 views, got %d", len(views))
		}
		if store.hours[7] != 2 {
			t.Fatalf("expected balance 2 after debit, got %d", store.hours[7])
		}
		if len(store.records) != 3 {
			t.Fatalf("expected 3 stored schedules, got %d", len(store.records))
		}
		if views[0].Date != "2024-03-14 09:00:00" {
			t.Fatalf("unexpected serialized date %q", views[0].Date)
		}
		if views[0].EnterpriseID != 7 {
			t.Fatalf("expected enterprise 7, got %d", views[0].EnterpriseID)
		}
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		co, _ := newTestCoordinator(map[uint64]int{7: 5})

		if _, err := co.Book(context.Background(), Request{EnterpriseID: 7}); !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("rejects items naming a different enterprise", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5, 8: 5})

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-14 09:00:00", SpaceID: 1, EnterpriseID: 7},
				{Date: "2024-03-14 10:00:00", SpaceID: 1, EnterpriseID: 8},
			},
		})
		if !errors.Is(err, ErrMixedEnterprises) {
			t.Fatalf("expected ErrMixedEnterprises, got %v", err)
		}
		if len(store.records) != 0 || store.hours[7] != 5 {
			t.Fatalf("expected store untouched after rejection")
		}
	})

	t.Run("rejects the whole batch on one malformed date", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-14 09:00:00", SpaceID: 1},
				{Date: "14/03/2024 10:00", SpaceID: 1},
			},
		})
		if !errors.Is(err, ErrMalformedDate) {
			t.Fatalf("expected ErrMalformedDate, got %v", err)
		}
		if len(store.records) != 0 || store.hours[7] != 5 {
			t.Fatalf("expected store untouched after rejection")
		}
	})

	t.Run("rejects when the balance cannot cover the batch", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 2})

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-14 09:00:00", SpaceID: 1},
				{Date: "2024-03-14 10:00:00", SpaceID: 1},
				{Date: "2024-03-14 11:00:00", SpaceID: 1},
			},
		})
		if !errors.Is(err, ErrInsufficientHours) {
			t.Fatalf("expected ErrInsufficientHours, got %v", err)
		}
		if store.hours[7] != 2 {
			t.Fatalf("expected balance untouched, got %d", store.hours[7])
		}
		if len(store.records) != 0 {
			t.Fatalf("expected no schedules persisted, got %d", len(store.records))
		}
	})

	t.Run("rejects an unknown enterprise", func(t *testing.T) {
		co, _ := newTestCoordinator(map[uint64]int{7: 5})

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 99,
			Items:        []Item{{Date: "2024-03-14 09:00:00", SpaceID: 1}},
		})
		if !errors.Is(err, ErrEnterpriseNotFound) {
			t.Fatalf("expected ErrEnterpriseNotFound, got %v", err)
		}
	})

	t.Run("rejects a slot already booked", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5, 8: 5})
		store.seed(8, 1, time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC))

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-14 09:00:00", SpaceID: 1},
				{Date: "2024-03-14 10:00:00", SpaceID: 1},
			},
		})
		if !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
		if store.hours[7] != 5 || len(store.records) != 1 {
			t.Fatalf("expected rejection without side effects")
		}
	})

	t.Run("rejects duplicates inside the batch", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-14 09:00:00", SpaceID: 1},
				{Date: "2024-03-14 09:00:00", SpaceID: 1},
			},
		})
		if !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
		if len(store.records) != 0 {
			t.Fatalf("expected no schedules persisted")
		}
	})

	t.Run("voids the batch when any item is not in the future", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-14 09:00:00", SpaceID: 1},
				{Date: "2024-03-12 09:00:00", SpaceID: 2},
			},
		})
		if !errors.Is(err, ErrPastDate) {
			t.Fatalf("expected ErrPastDate, got %v", err)
		}
		if store.hours[7] != 5 || len(store.records) != 0 {
			t.Fatalf("expected rejection without side effects")
		}
	})

	t.Run("a slot exactly at the reference clock is past", func(t *testing.T) {
		co, _ := newTestCoordinator(map[uint64]int{7: 5})

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items:        []Item{{Date: testNow.Format(DateLayout), SpaceID: 1}},
		})
		if !errors.Is(err, ErrPastDate) {
			t.Fatalf("expected ErrPastDate, got %v", err)
		}
	})

	t.Run("a conflict on a later item wins over an earlier past date", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5, 8: 5})
		store.seed(8, 1, time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC))

		_, err := co.Book(context.Background(), Request{
			EnterpriseID: 7,
			Items: []Item{
				{Date: "2024-03-12 09:00:00", SpaceID: 2},  // past
				{Date: "2024-03-14 10:00:00", SpaceID: 1},  // conflicts
			},
		})
		if !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken to take precedence, got %v", err)
		}
	})
}

func TestCoordinator_Update(t *testing.T) {
	t.Parallel()

	t.Run("moves a schedule to a free slot", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})
		id := store.seed(7, 1, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC))

		newDate := "2024-03-15 09:00:00"
		view, err := co.Update(context.Background(), id, Patch{Date: &newDate})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if view.Date != newDate {
			t.Fatalf("expected date %q, got %q", newDate, view.Date)
		}
		if view.SpaceID != 1 {
			t.Fatalf("expected space untouched, got %d", view.SpaceID)
		}
	})

	t.Run("moves a schedule to another space", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})
		id := store.seed(7, 1, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC))

		space := uint64(3)
		view, err := co.Update(context.Background(), id, Patch{SpaceID: &space})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if view.SpaceID != 3 {
			t.Fatalf("expected space 3, got %d", view.SpaceID)
		}
		if view.Date != "2024-03-14 09:00:00" {
			t.Fatalf("expected date untouched, got %q", view.Date)
		}
	})

	t.Run("rejects a move onto an occupied slot", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})
		id := store.seed(7, 1, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC))
		store.seed(7, 1, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

		newDate := "2024-03-15 09:00:00"
		if _, err := co.Update(context.Background(), id, Patch{Date: &newDate}); !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
		rec, err := store.GetSchedule(context.Background(), id)
		if err != nil {
			t.Fatalf("expected record still present, got %v", err)
		}
		if !rec.Date.Equal(time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected original date kept, got %v", rec.Date)
		}
	})

	t.Run("keeping the same slot is not a conflict", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})
		id := store.seed(7, 1, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC))

		sameDate := "2024-03-14 09:00:00"
		if _, err := co.Update(context.Background(), id, Patch{Date: &sameDate}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})
		id := store.seed(7, 1, time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC))

		bad := "2024-03-15"
		if _, err := co.Update(context.Background(), id, Patch{Date: &bad}); !errors.Is(err, ErrMalformedDate) {
			t.Fatalf("expected ErrMalformedDate, got %v", err)
		}
	})

	t.Run("rejects an unknown schedule", func(t *testing.T) {
		co, _ := newTestCoordinator(map[uint64]int{7: 5})

		date := "2024-03-15 09:00:00"
		if _, err := co.Update(context.Background(), 42, Patch{Date: &date}); !errors.Is(err, ErrScheduleNotFound) {
			t.Fatalf("expected ErrScheduleNotFound, got %v", err)
		}
	})
}

func TestCoordinator_Window(t *testing.T) {
	t.Parallel()

	t.Run("lists only schedules inside the window, ordered", func(t *testing.T) {
		co, store := newTestCoordinator(map[uint64]int{7: 5})
		// Window for 2024-03-13 10:00:00 is [2024-03-03 10:00, 2024-03-25 10:00).
		store.seed(7, 1, time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC))   // before start
		inA := store.seed(7, 1, time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC))  // exactly at start
		inB := store.seed(7, 2, time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)) // inside
		store.seed(7, 1, time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC)) // exactly at end, excluded

		views, err := co.Window(context.Background(), "2024-03-13 10:00:00")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("expected 2 schedules in window, got %d", len(views))
		}
		if views[0].ID != inA || views[1].ID != inB {
			t.Fatalf("expected ordered ids [%d %d], got [%d %d]", inA, inB, views[0].ID, views[1].ID)
		}
	})

	t.Run("rejects a malformed anchor", func(t *testing.T) {
		co, _ := newTestCoordinator(map[uint64]int{7: 5})

		if _, err := co.Window(context.Background(), "03/13/2024"); !errors.Is(err, ErrMalformedDate) {
			t.Fatalf("expected ErrMalformedDate, got %v", err)
		}
	})
}
