package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a
	// duplicate of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrDrugNotFound indicates the requested drug does not exist.
	ErrDrugNotFound = fmt.Errorf("%w: drug", ErrNotFound)

	// ErrEmailExists indicates a user with the given email already
	// exists (matched case-insensitively).
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrDrugNameExists indicates a drug with the given name already
	// exists (matched case-insensitively).
	ErrDrugNameExists = fmt.Errorf("%w: drug name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
