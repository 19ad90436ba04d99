package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it so errors.Is matches both.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity (e.g. a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the underlying database cannot
	// complete a read or write. Callers decide whether to retry; the stores
	// never retry themselves.
	ErrUnavailable = errors.New("store unavailable")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrMnemonicNotFound indicates that the requested mnemonic does not exist.
	ErrMnemonicNotFound = fmt.Errorf("%w: mnemonic", ErrNotFound)

	// ErrStatsNotFound indicates that the requested mnemonic stats record
	// does not exist. Absence of stats is a defined zero-state for the
	// scheduling core, so most callers treat this as a default rather than
	// a failure.
	ErrStatsNotFound = fmt.Errorf("%w: mnemonic stats", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
