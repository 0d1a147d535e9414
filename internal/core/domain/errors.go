package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSeedData indicates no seed document is available.
	// Startup seeding treats this as "nothing to do"; an explicit
	// reseed reports it to the operator.
	ErrNoSeedData = errors.New("no seed data available")
)
