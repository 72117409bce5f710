package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicateID is returned when a record id collides within a batch or with stored rows
	ErrDuplicateID = errors.New("duplicate record id")
	// ErrInvalidGenerationParams is returned when dataset generation is asked for non-positive counts
	ErrInvalidGenerationParams = errors.New("invalid generation parameters")
	// ErrInvalidLimit is returned when a listing is requested with a negative limit
	ErrInvalidLimit = errors.New("limit must be a non-negative integer")
	// ErrStoreUnavailable is returned when the backing store cannot be reached
	ErrStoreUnavailable = errors.New("store unavailable")
)
