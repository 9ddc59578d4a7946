package tfdriver

import (
	"io"
	"log/slog"
	"maps"
)

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithVar sets one flag value. Underscores in the name are rewritten to
// hyphens during compilation, so "detailed_exitcode" and
// "detailed-exitcode" name the same flag.
func WithVar(name string, value any) Option {
	return func(o *Options) {
		if o.Vars == nil {
			o.Vars = make(map[string]any)
		}

		o.Vars[name] = value
	}
}

// WithVars sets multiple flag values at once.
func WithVars(vars map[string]any) Option {
	return func(o *Options) {
		if o.Vars == nil {
			o.Vars = make(map[string]any, len(vars))
		}

		maps.Copy(o.Vars, vars)
	}
}

// WithEnv provides additional environment variables for the spawned
// process. They are applied after the data-directory variable, so they can
// override it.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Environment = env
	}
}

// WithDefaults replaces the bound capability set's flag vocabulary and
// baseline values for this instance. The keys of the map declare every
// flag the command understands; the values are baselines that are omitted
// from the command line when unchanged.
func WithDefaults(defaults map[string]any) Option {
	return func(o *Options) {
		o.Defaults = defaults
	}
}

// WithSwitches replaces the bound capability set's presence-only flags for
// this instance. Switches render as bare "-flag" tokens.
func WithSwitches(switches []string) Option {
	return func(o *Options) {
		o.Switches = switches
	}
}

// WithEcho controls printing the full command line before execution.
// Overrides the TFDRIVER_ECHO setting.
func WithEcho(echo bool) Option {
	return func(o *Options) {
		o.Echo = echo
		o.EchoSet = true
	}
}

// WithQuiet suppresses stdout forwarding in stream mode. Stderr is always
// forwarded.
func WithQuiet(quiet bool) Option {
	return func(o *Options) {
		o.Quiet = quiet
	}
}

// WithStdout redirects echoed command lines and streamed stdout.
// Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(o *Options) {
		o.Stdout = w
	}
}

// WithStderr redirects streamed stderr. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(o *Options) {
		o.Stderr = w
	}
}
