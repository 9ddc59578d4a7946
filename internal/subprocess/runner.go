package subprocess

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/nomadops/tfdriver/internal/errors"
)

// defaultMaxLineSize is the maximum buffer size for reading one output line
// in stream mode.
const defaultMaxLineSize = 1024 * 1024 // 1MB

// Result holds everything a capture-mode execution produced. A non-zero
// ExitStatus is ordinary data, not an error.
type Result struct {
	// Stdout is the complete standard output text.
	Stdout string

	// Stderr is the complete standard error text.
	Stderr string

	// ExitStatus is the process exit code.
	ExitStatus int
}

// Runner executes external processes. Each call is synchronous and
// represents one process lifecycle; there is no queuing or retry.
type Runner struct {
	log         *slog.Logger
	stdout      io.Writer
	stderr      io.Writer
	maxLineSize int
}

// NewRunner creates a runner. stdout and stderr receive forwarded output in
// stream mode and default to os.Stdout and os.Stderr. maxLineSize bounds
// one scanned output line; zero means the default of 1MB.
func NewRunner(log *slog.Logger, stdout, stderr io.Writer, maxLineSize int) *Runner {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	if maxLineSize <= 0 {
		maxLineSize = defaultMaxLineSize
	}

	return &Runner{
		log:         log.With("component", "runner"),
		stdout:      stdout,
		stderr:      stderr,
		maxLineSize: maxLineSize,
	}
}

// Capture runs the command to completion and collects all of stdout, all of
// stderr, and the exit status into one Result.
//
// Returns BinaryNotFoundError if the binary cannot be located and
// LaunchError for any other spawn failure. A non-zero exit code is returned
// in the Result with a nil error.
func (r *Runner) Capture(ctx context.Context, argv, env []string) (*Result, error) {
	log := r.log.With("run_id", ulid.Make().String())
	log.Debug("Running in capture mode", "argv", argv)

	//nolint:gosec // G204: spawning a caller-supplied binary is the point of this package
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = env

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitStatus := 0

	if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
		exitStatus = exitErr.ExitCode()
	} else if err != nil {
		log.Error("Failed to run process", "error", err)

		return nil, classifyLaunch(argv[0], err)
	}

	log.Debug("Process finished", "exit_status", exitStatus)

	return &Result{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		ExitStatus: exitStatus,
	}, nil
}

// Stream launches the command with piped input and output, closes stdin
// immediately (no interactive input is ever sent), and forwards output as
// it arrives: each stdout line unless quiet is set, each stderr line
// always. It blocks until the process terminates and returns its raw exit
// code.
//
// Stdout and stderr are drained concurrently on separate goroutines.
// Draining them sequentially risks a pipe-buffer deadlock: the process
// blocks writing one stream while the reader is parked on the other.
func (r *Runner) Stream(ctx context.Context, argv, env []string, quiet bool) (int, error) {
	log := r.log.With("run_id", ulid.Make().String())
	log.Debug("Running in stream mode", "argv", argv, "quiet", quiet)

	//nolint:gosec // G204: spawning a caller-supplied binary is the point of this package
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = env

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return 0, &errors.LaunchError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, &errors.LaunchError{Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 0, &errors.LaunchError{Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		log.Error("Failed to start process", "error", err)

		return 0, classifyLaunch(argv[0], err)
	}

	log.Debug("Process started", "pid", cmd.Process.Pid)

	// No interactive input is ever sent.
	if err := stdin.Close(); err != nil {
		log.Debug("Failed to close stdin", "error", err)
	}

	stdoutSink := r.stdout
	if quiet {
		stdoutSink = io.Discard
	}

	var g errgroup.Group

	g.Go(func() error {
		return r.forward(stdout, stdoutSink)
	})

	g.Go(func() error {
		return r.forward(stderr, r.stderr)
	})

	// Pipes must be fully drained before Wait.
	// See: https://pkg.go.dev/os/exec#Cmd.StdoutPipe
	drainErr := g.Wait()

	err = cmd.Wait()

	if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
		log.Debug("Process exited", "exit_code", exitErr.ExitCode())

		return exitErr.ExitCode(), nil
	}

	if err != nil {
		return 0, &errors.LaunchError{Err: fmt.Errorf("wait for process: %w", err)}
	}

	if drainErr != nil {
		return 0, fmt.Errorf("drain output: %w", drainErr)
	}

	log.Debug("Process exited", "exit_code", 0)

	return 0, nil
}

// forward copies lines from a process pipe to a sink as they arrive.
func (r *Runner) forward(from io.Reader, to io.Writer) error {
	scanner := bufio.NewScanner(from)
	scanner.Buffer(make([]byte, r.maxLineSize), r.maxLineSize)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(to, scanner.Text()); err != nil {
			return fmt.Errorf("forward output line: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan output: %w", err)
	}

	return nil
}

// classifyLaunch maps a spawn failure to the driver error taxonomy.
func classifyLaunch(binary string, err error) error {
	if stderrors.Is(err, exec.ErrNotFound) || stderrors.Is(err, fs.ErrNotExist) {
		return &errors.BinaryNotFoundError{Path: binary, Err: err}
	}

	return &errors.LaunchError{Err: err}
}
