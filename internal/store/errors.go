package store

import "errors"

var (
	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound is returned when an ID or username does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrIDsExhausted is returned when the shared ID space has no value left
	// above the highest ID held.
	ErrIDsExhausted = errors.New("no post ids left")

	// ErrInitialization is returned by New when the seed data is missing or malformed.
	ErrInitialization = errors.New("feed store initialization failed")
)
