// Package errors defines error types for the driver.
//
// This package provides structured error types for the failure scenarios of
// building and executing commands against the external binary. All error
// types support error unwrapping and can be checked using errors.Is,
// errors.As, and errors.AsType.
package errors
