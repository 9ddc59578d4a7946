package tfdriver

import "github.com/nomadops/tfdriver/internal/errors"

// Re-export error types from internal package

// ArgumentError indicates compiled flags contain keys outside the declared
// flag vocabulary. It carries every offending key.
type ArgumentError = errors.ArgumentError

// BinaryNotFoundError indicates the target binary does not exist or is not
// executable.
type BinaryNotFoundError = errors.BinaryNotFoundError

// LaunchError indicates the external process could not be started.
type LaunchError = errors.LaunchError

// DriverError is the base interface for all driver errors.
type DriverError = errors.DriverError

// Re-export sentinel errors from internal package.
var (
	// ErrNoBinary indicates no binary path was supplied at construction.
	ErrNoBinary = errors.ErrNoBinary

	// ErrUnknownVariant indicates the command variant is not registered.
	ErrUnknownVariant = errors.ErrUnknownVariant
)
