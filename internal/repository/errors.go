// Package repository provides the MySQL persistence layer. Sentinel
// errors defined here let handlers distinguish between failure
// scenarios without inspecting driver errors; slot and hours failures
// use the booking package sentinels instead so the coordinator and the
// storage backstop surface the same taxonomy.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering an enterprise with an
// email already in use. Handlers should translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrPhoneExists is returned when registering an enterprise with a
// phone already in use. Handlers should translate this into HTTP 409.
var ErrPhoneExists = errors.New("phone already exists")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by another enterprise. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrInUse is returned when deleting a record still referenced by
// others, such as a spacetype with spaces. Handlers should translate
// this into an HTTP 409 response.
var ErrInUse = errors.New("record in use")
