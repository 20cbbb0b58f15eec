// Package booking implements the reservation core: slot conflict
// detection, the enterprise hours ledger and the all-or-nothing batch
// booking transaction. Handlers translate the sentinel errors defined
// here into HTTP responses; every failure is a business-rule violation
// the caller must resolve by changing its request, never a transient
// condition worth retrying as-is.
package booking

import "errors"

// ErrMalformedDate is returned when a timestamp does not match
// DateLayout exactly. Handlers map it to HTTP 400.
var ErrMalformedDate = errors.New("malformed date")

// ErrEmptyBatch is returned when a booking request carries no items.
// Handlers map it to HTTP 400.
var ErrEmptyBatch = errors.New("empty booking batch")

// ErrMixedEnterprises is returned when batch items reference more than
// one enterprise. Batches are debited against a single hours balance,
// so mixing owners is rejected up front. Handlers map it to HTTP 400.
var ErrMixedEnterprises = errors.New("batch items reference different enterprises")

// ErrEnterpriseNotFound is returned when the booking enterprise does
// not exist. Handlers map it to HTTP 404.
var ErrEnterpriseNotFound = errors.New("enterprise not found")

// ErrInsufficientHours is returned when the enterprise's remaining
// hours cannot cover the whole batch. Handlers map it to HTTP 424; the
// caller needs an external top-up before retrying.
var ErrInsufficientHours = errors.New("insufficient hours")

// ErrSlotTaken is returned when a requested (space, date) slot is
// already booked, either by an existing record, by an earlier item in
// the same batch, or by a concurrent transaction that won the unique
// key on commit. Handlers map it to HTTP 409.
var ErrSlotTaken = errors.New("slot already taken")

// ErrPastDate is returned when any item in a batch is not strictly in
// the future; the whole batch is voided. Handlers map it to HTTP 422.
var ErrPastDate = errors.New("past date not selectable")

// ErrScheduleNotFound is returned when editing a schedule that does not
// exist. Handlers map it to HTTP 404.
var ErrScheduleNotFound = errors.New("schedule not found")
