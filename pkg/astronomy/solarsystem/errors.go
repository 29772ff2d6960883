package solarsystem

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace groups the errors registered by this package
const Codespace = "solarsystem"

var (
	// ErrInvalidArgument is returned for negative masses and blank identifiers
	ErrInvalidArgument = errorsmod.Register(Codespace, 2, "invalid argument")
	// ErrCapacityExceeded is returned when a star or planet cannot take another child
	ErrCapacityExceeded = errorsmod.Register(Codespace, 3, "capacity exceeded")
	// ErrDuplicateIdentifier is returned when an identifier is already used in the system
	ErrDuplicateIdentifier = errorsmod.Register(Codespace, 4, "duplicate identifier")
	// ErrNotFound is returned when an identifier does not resolve to a body
	ErrNotFound = errorsmod.Register(Codespace, 5, "celestial body not found")
)
