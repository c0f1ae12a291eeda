package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Note that parsing markup
// is never a failure: malformed input degrades to plainer block types.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrTagServiceUnavailable indicates the tag suggestion service is not
	// configured. Tag suggestions are disabled without it.
	ErrTagServiceUnavailable = errors.New("tag suggestion service unavailable")
)
