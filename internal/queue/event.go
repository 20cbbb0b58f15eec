// Package queue defines message payloads exchanged over the message broker.
package queue

// ScheduleBookedEvent is published once per successfully committed booking
// batch. It carries enough information for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type ScheduleBookedEvent struct {
	BatchID        string   `json:"batch_id"`
	EnterpriseID   uint64   `json:"enterprise_id"`
	EnterpriseName string   `json:"enterprise_name"`
	ScheduleIDs    []uint64 `json:"schedule_ids"`
	Slots          []Slot   `json:"slots"`
	HoursDebited   int      `json:"hours_debited"`
	BookedAt       string   `json:"booked_at"`
}

// Slot identifies one booked space at one instant within a batch.
type Slot struct {
	SpaceID   uint64 `json:"space_id"`
	SpaceName string `json:"space_name"`
	Date      string `json:"date"`
}
