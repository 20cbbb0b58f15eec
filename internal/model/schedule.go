package model

import "time"

// Schedule is a booking record: one enterprise holds one space for one
// hour-length slot starting at Date. No two schedules may share the same
// (space, date) pair; the schedules table enforces this with a unique
// key and the booking coordinator checks it before committing.
//
// Fields:
//  ID           – primary key identifier.
//  Date         – start instant of the one-unit slot.
//  SpaceID      – space being booked.
//  EnterpriseID – enterprise the slot belongs to.
//  CreatedAt    – creation timestamp.
type Schedule struct {
	ID           uint64    // schedules.id
	Date         time.Time // schedules.date
	SpaceID      uint64    // schedules.space_id
	EnterpriseID uint64    // schedules.enterprise_id
	CreatedAt    time.Time // schedules.created_at
}
