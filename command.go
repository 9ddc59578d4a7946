package tfdriver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nomadops/tfdriver/internal/args"
	"github.com/nomadops/tfdriver/internal/capability"
	"github.com/nomadops/tfdriver/internal/config"
	"github.com/nomadops/tfdriver/internal/errors"
	"github.com/nomadops/tfdriver/internal/revision"
	"github.com/nomadops/tfdriver/internal/subprocess"
	"github.com/nomadops/tfdriver/internal/workspace"
)

// Command is one invocation of the external binary: a target path, a bound
// capability set, options, and the computed process environment.
//
// Construction resolves the revision tag, binds the capability set, and
// builds the environment. Execution compiles and validates the arguments,
// assembles the argument vector, and runs the process. The bound capability
// set and environment never change after construction.
//
// Commands are safe to construct and execute concurrently: the environment
// is an explicit slice handed to the spawned process, never a mutation of
// the driver's own environment.
type Command struct {
	log        *slog.Logger
	binary     string
	target     string
	variant    Variant
	rev        string
	capability capability.Set
	opts       *Options
	settings   config.Settings
	env        []string
}

// NewCommand constructs a command for the given variant.
//
// binary is the path to the external binary, supplied by the caller's
// version management. version is the binary's version string; empty means
// the latest known revision. target is the path or plan argument appended
// to the command line, empty for variants that take none.
//
// The capability set is looked up under (revision tag, variant) with a
// fallback to the variant's version-agnostic definition. The base variant
// binds no capability set; its flag vocabulary comes from WithDefaults.
func NewCommand(binary, version, target string, variant Variant, opts ...Option) (*Command, error) {
	if binary == "" {
		return nil, errors.ErrNoBinary
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	log = log.With("component", "command")

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	if !options.EchoSet {
		options.Echo = settings.Echo
	}

	rev := revision.Revision(version)

	set := capability.Select(rev, string(variant))
	if set == nil && variant != Base && options.Defaults == nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownVariant, variant)
	}

	env, err := workspace.BuildEnvironment(target, options.Environment)
	if err != nil {
		return nil, err
	}

	log.Debug("Constructed command",
		"variant", string(variant),
		"revision", rev,
		"binary", binary,
		"target", target,
	)

	return &Command{
		log:        log,
		binary:     binary,
		target:     target,
		variant:    variant,
		rev:        rev,
		capability: set,
		opts:       options,
		settings:   settings,
		env:        env,
	}, nil
}

// NewPlan constructs a plan command.
func NewPlan(binary, version, target string, opts ...Option) (*Command, error) {
	return NewCommand(binary, version, target, Plan, opts...)
}

// NewApply constructs an apply command.
func NewApply(binary, version, target string, opts ...Option) (*Command, error) {
	return NewCommand(binary, version, target, Apply, opts...)
}

// NewInit constructs an init command.
func NewInit(binary, version, target string, opts ...Option) (*Command, error) {
	return NewCommand(binary, version, target, Init, opts...)
}

// NewDestroy constructs a destroy command.
func NewDestroy(binary, version, target string, opts ...Option) (*Command, error) {
	return NewCommand(binary, version, target, Destroy, opts...)
}

// NewOutput constructs an output command.
func NewOutput(binary, version, target string, opts ...Option) (*Command, error) {
	return NewCommand(binary, version, target, Output, opts...)
}

// Revision returns the revision tag resolved at construction.
func (c *Command) Revision() string {
	return c.rev
}

// Variant returns the command's variant.
func (c *Command) Variant() Variant {
	return c.variant
}

// Env returns a copy of the environment computed for the spawned process.
func (c *Command) Env() []string {
	out := make([]string, len(c.env))
	copy(out, c.env)

	return out
}

// defaults returns the effective flag vocabulary and baseline values:
// WithDefaults when supplied, otherwise the bound capability set's.
func (c *Command) defaults() map[string]any {
	if c.opts.Defaults != nil {
		return c.opts.Defaults
	}

	if c.capability != nil {
		return c.capability.Defaults()
	}

	return map[string]any{}
}

// switches returns the effective presence-only flags.
func (c *Command) switches() []string {
	if c.opts.Switches != nil {
		return c.opts.Switches
	}

	if c.capability != nil {
		return c.capability.Switches()
	}

	return nil
}

// subcommand returns the subcommand name, empty for the base variant.
func (c *Command) subcommand() string {
	if c.capability != nil {
		return c.capability.Subcommand()
	}

	return ""
}

// Compile merges the baseline defaults with the supplied flag values and
// drops entries equal to their baseline. The result is what Args renders
// as flag tokens. Exposed so callers can inspect the compiled set, also
// after a validation failure.
func (c *Command) Compile() map[string]any {
	return args.Compile(c.defaults(), c.opts.Vars)
}

// Args compiles, validates, and assembles the full argument vector:
// binary, subcommand, flag tokens, target. Returns an ArgumentError naming
// every compiled key outside the declared flag vocabulary. No process is
// spawned.
func (c *Command) Args() ([]string, error) {
	defaults := c.defaults()
	compiled := args.Compile(defaults, c.opts.Vars)

	if err := args.Validate(compiled, defaults, c.switches()); err != nil {
		return nil, err
	}

	argv := args.Assemble(c.binary, c.subcommand(), compiled, defaults, c.switches(), c.target)

	c.log.Debug("Assembled command", "argv", argv)

	return argv, nil
}

// Execute runs the command in capture mode: the process runs to completion
// and all of stdout, stderr, and the exit status are returned in one
// Result. A non-zero exit status is data, not an error.
func (c *Command) Execute(ctx context.Context) (*Result, error) {
	argv, err := c.Args()
	if err != nil {
		return nil, err
	}

	c.echo(argv)

	runner := subprocess.NewRunner(c.log, c.stdout(), c.stderr(), c.settings.MaxLineSize)

	return runner.Capture(ctx, argv, c.env)
}

// Stream runs the command in stream mode: stdout and stderr are forwarded
// line by line as the process produces them, stdout suppressed when quiet
// is set. Blocks until the process terminates and returns its raw exit
// code.
func (c *Command) Stream(ctx context.Context) (int, error) {
	argv, err := c.Args()
	if err != nil {
		return 0, err
	}

	c.echo(argv)

	runner := subprocess.NewRunner(c.log, c.stdout(), c.stderr(), c.settings.MaxLineSize)

	return runner.Stream(ctx, argv, c.env, c.opts.Quiet)
}

// echo prints the full command line before execution when enabled. Always
// happens before any process output.
func (c *Command) echo(argv []string) {
	if !c.opts.Echo {
		return
	}

	fmt.Fprintln(c.stdout(), strings.Join(argv, " "))
}

func (c *Command) stdout() io.Writer {
	if c.opts.Stdout != nil {
		return c.opts.Stdout
	}

	return os.Stdout
}

func (c *Command) stderr() io.Writer {
	if c.opts.Stderr != nil {
		return c.opts.Stderr
	}

	return os.Stderr
}
