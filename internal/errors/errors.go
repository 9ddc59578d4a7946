package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DriverError is the base interface for all driver errors.
type DriverError interface {
	error
	IsDriverError() bool
}

// Compile-time verification that all error types implement DriverError.
var (
	_ DriverError = (*ArgumentError)(nil)
	_ DriverError = (*BinaryNotFoundError)(nil)
	_ DriverError = (*LaunchError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNoBinary indicates no binary path was supplied at construction.
	ErrNoBinary = errors.New("no binary path supplied")

	// ErrUnknownVariant indicates the command variant is not registered.
	ErrUnknownVariant = errors.New("unknown command variant")
)

// ArgumentError indicates compiled flags contain keys outside the declared
// flag vocabulary. It is raised before any process is spawned and carries
// every offending key.
type ArgumentError struct {
	Keys []string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments: %s", strings.Join(e.Keys, ", "))
}

// IsDriverError implements DriverError.
func (e *ArgumentError) IsDriverError() bool { return true }

// BinaryNotFoundError indicates the target binary does not exist or is not
// executable.
type BinaryNotFoundError struct {
	Path string
	Err  error
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("binary not found: %s: %v", e.Path, e.Err)
}

func (e *BinaryNotFoundError) Unwrap() error {
	return e.Err
}

// IsDriverError implements DriverError.
func (e *BinaryNotFoundError) IsDriverError() bool { return true }

// LaunchError indicates the external process could not be started.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch process: %v", e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsDriverError implements DriverError.
func (e *LaunchError) IsDriverError() bool { return true }
