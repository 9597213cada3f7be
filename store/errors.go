// Sentinel errors shared by all store methods. Handlers translate
// these into HTTP status codes: ErrNotFound to 404, ErrForbidden to
// 403, ErrDuplicateEmail to 400.
package store

import "errors"

// ErrNotFound is returned when no record exists for the given id.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the record exists but is owned by a
// different user.
var ErrForbidden = errors.New("forbidden")

// ErrDuplicateEmail is returned when a registration collides with the
// unique email index.
var ErrDuplicateEmail = errors.New("email already registered")
