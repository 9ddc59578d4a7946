// Package config holds the option and settings types shared between the
// root package and the internal packages.
package config

import (
	"io"
	"log/slog"
)

// Options configures one command instance.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Vars maps flag names to values. Keys may use underscores; they are
	// rewritten to hyphens during compilation.
	Vars map[string]any

	// Environment holds extra environment variables for the spawned
	// process. Applied after the data-directory variable, so they can
	// override it.
	Environment map[string]string

	// Defaults, when non-nil, replaces the bound capability set's flag
	// vocabulary and baseline values for this instance.
	Defaults map[string]any

	// Switches, when non-nil, replaces the bound capability set's
	// presence-only flags for this instance.
	Switches []string

	// Echo prints the full command line before execution.
	Echo bool

	// EchoSet records whether Echo was set explicitly, so the
	// TFDRIVER_ECHO setting only applies when it was not.
	EchoSet bool

	// Quiet suppresses stdout forwarding in stream mode. Stderr is always
	// forwarded.
	Quiet bool

	// Stdout receives echoed command lines and streamed stdout.
	// Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives streamed stderr. Defaults to os.Stderr.
	Stderr io.Writer
}
