package store

import "errors"

// Sentinel errors returned by store operations. Handlers map these to
// response codes with errors.Is.
var (
	// ErrNotFound is returned when no record matches the given id.
	// Updates and deletes of unknown ids surface this instead of being
	// silent no-ops.
	ErrNotFound = errors.New("record not found")

	// ErrInvalid wraps validation failures at the store boundary.
	ErrInvalid = errors.New("invalid field")

	// ErrLocationInUse is returned when deleting a location that is still
	// referenced by inventory items.
	ErrLocationInUse = errors.New("location still holds inventory items")
)
