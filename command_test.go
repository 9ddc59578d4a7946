package tfdriver

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFakeTool writes an executable shell script into a temp dir and
// returns its path.
func writeFakeTool(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fake-tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))

	return path
}

// TestNewCommand_NoBinary tests that construction requires a binary path.
func TestNewCommand_NoBinary(t *testing.T) {
	_, err := NewCommand("", "1.2.0", "", Plan)

	require.ErrorIs(t, err, ErrNoBinary)
}

// TestNewCommand_UnknownVariant tests that a variant with no registered
// capability set and no caller-supplied defaults is rejected.
func TestNewCommand_UnknownVariant(t *testing.T) {
	_, err := NewCommand("/usr/bin/tool", "1.2.0", "", Variant("teleport"))

	require.ErrorIs(t, err, ErrUnknownVariant)
}

// TestCommand_EndToEnd tests the full construction-to-argv pipeline from
// the driver contract: revision resolution, default merge, switch
// rendering, and token order.
func TestCommand_EndToEnd(t *testing.T) {
	cmd, err := NewPlan("/usr/bin/tool", "1.2.0", "/work",
		WithDefaults(map[string]any{"out": "plan.bin"}),
		WithSwitches([]string{"detailed-exitcode"}),
		WithVar("out", "x.bin"),
		WithVar("detailed_exitcode", true),
	)

	require.NoError(t, err)
	require.Equal(t, "Rev1_02", cmd.Revision())

	require.Equal(t, map[string]any{
		"out":               "x.bin",
		"detailed-exitcode": true,
	}, cmd.Compile())

	argv, err := cmd.Args()

	require.NoError(t, err)
	require.Equal(t, []string{"/usr/bin/tool", "plan", "-out=x.bin", "-detailed-exitcode", "/work"}, argv)
}

// TestCommand_ValidationFailure tests that a key outside the declared
// vocabulary fails before any process is spawned, naming the key, and the
// compiled set stays inspectable.
func TestCommand_ValidationFailure(t *testing.T) {
	cmd, err := NewPlan("/usr/bin/tool", "1.2.0", "/work",
		WithDefaults(map[string]any{"out": "plan.bin"}),
		WithVar("bogus", "x"),
	)
	require.NoError(t, err)

	_, err = cmd.Args()

	argErr, ok := stderrors.AsType[*ArgumentError](err)
	require.True(t, ok)
	require.Equal(t, []string{"bogus"}, argErr.Keys)

	require.Equal(t, map[string]any{"bogus": "x"}, cmd.Compile())

	_, err = cmd.Execute(context.Background())
	require.Error(t, err)
}

// TestCommand_PerVersionFlagSets tests that the same variant built against
// different binary versions exposes different accepted flags.
func TestCommand_PerVersionFlagSets(t *testing.T) {
	newPlan := func(version string) *Command {
		cmd, err := NewPlan("/usr/bin/tool", version, "/work",
			WithVar("refresh_only", true),
		)
		require.NoError(t, err)

		return cmd
	}

	_, err := newPlan("1.2.0").Args()
	require.NoError(t, err)

	_, err = newPlan("0.13.7").Args()

	argErr, ok := stderrors.AsType[*ArgumentError](err)
	require.True(t, ok)
	require.Equal(t, []string{"refresh-only"}, argErr.Keys)
}

// TestCommand_BaseVariant tests that the base variant emits no subcommand
// and draws its vocabulary entirely from WithDefaults.
func TestCommand_BaseVariant(t *testing.T) {
	cmd, err := NewCommand("/usr/bin/tool", "1.2.0", "", Base,
		WithDefaults(map[string]any{"chdir": ""}),
		WithVar("chdir", "/work"),
	)
	require.NoError(t, err)

	argv, err := cmd.Args()

	require.NoError(t, err)
	require.Equal(t, []string{"/usr/bin/tool", "-chdir=/work"}, argv)
}

// TestCommand_EnvDataDirFromFileTarget tests that a file target resolves
// the data directory to its containing directory.
func TestCommand_EnvDataDirFromFileTarget(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "saved.plan")
	require.NoError(t, os.WriteFile(file, []byte("plan"), 0o644))

	cmd, err := NewApply("/usr/bin/tool", "1.2.0", file)
	require.NoError(t, err)

	require.Contains(t, cmd.Env(), "TF_DATA_DIR="+filepath.Join(dir, ".terraform"))
}

// TestCommand_ExecuteCapture tests capture mode end to end against a fake
// binary: the process receives the assembled argv and its output and exit
// status come back in the result.
func TestCommand_ExecuteCapture(t *testing.T) {
	tool := writeFakeTool(t, "echo \"$@\"\nexit 2")
	target := t.TempDir()

	cmd, err := NewPlan(tool, "1.2.0", target,
		WithVar("out", "x.bin"),
		WithVar("detailed_exitcode", true),
	)
	require.NoError(t, err)

	result, err := cmd.Execute(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, result.ExitStatus)
	require.Equal(t, "plan -out=x.bin -detailed-exitcode "+target+"\n", result.Stdout)
}

// TestCommand_ExecuteEcho tests that the echoed command line is printed
// before execution.
func TestCommand_ExecuteEcho(t *testing.T) {
	tool := writeFakeTool(t, "exit 0")
	target := t.TempDir()

	var stdout bytes.Buffer

	cmd, err := NewPlan(tool, "1.2.0", target,
		WithEcho(true),
		WithStdout(&stdout),
	)
	require.NoError(t, err)

	argv, err := cmd.Args()
	require.NoError(t, err)

	_, err = cmd.Execute(context.Background())

	require.NoError(t, err)
	require.Equal(t, strings.Join(argv, " ")+"\n", stdout.String())
}

// TestCommand_Stream tests stream mode end to end: stdout forwarded unless
// quiet, stderr always, raw exit code returned.
func TestCommand_Stream(t *testing.T) {
	tool := writeFakeTool(t, "echo applying\necho warning >&2\nexit 4")
	target := t.TempDir()

	var stdout, stderr bytes.Buffer

	cmd, err := NewApply(tool, "1.2.0", target,
		WithStdout(&stdout),
		WithStderr(&stderr),
	)
	require.NoError(t, err)

	code, err := cmd.Stream(context.Background())

	require.NoError(t, err)
	require.Equal(t, 4, code)
	require.Equal(t, "applying\n", stdout.String())
	require.Equal(t, "warning\n", stderr.String())
}

// TestCommand_StreamQuiet tests that quiet suppresses forwarded stdout but
// never stderr.
func TestCommand_StreamQuiet(t *testing.T) {
	tool := writeFakeTool(t, "echo noise\necho kept >&2")
	target := t.TempDir()

	var stdout, stderr bytes.Buffer

	cmd, err := NewApply(tool, "1.2.0", target,
		WithQuiet(true),
		WithStdout(&stdout),
		WithStderr(&stderr),
	)
	require.NoError(t, err)

	code, err := cmd.Stream(context.Background())

	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Empty(t, stdout.String())
	require.Equal(t, "kept\n", stderr.String())
}

// TestCommand_BinaryNotFound tests that a missing binary surfaces as
// BinaryNotFoundError from execution, not construction: resolving the
// binary is the caller's job, the driver only reports the launch failure.
func TestCommand_BinaryNotFound(t *testing.T) {
	cmd, err := NewPlan("/nonexistent/fake-tool", "1.2.0", t.TempDir())
	require.NoError(t, err)

	_, err = cmd.Execute(context.Background())

	_, ok := stderrors.AsType[*BinaryNotFoundError](err)
	require.True(t, ok)
}

// TestCommand_EchoSetting tests that TFDRIVER_ECHO enables echo when the
// command does not set it explicitly.
func TestCommand_EchoSetting(t *testing.T) {
	t.Setenv("TFDRIVER_ECHO", "true")

	tool := writeFakeTool(t, "exit 0")
	target := t.TempDir()

	var stdout bytes.Buffer

	cmd, err := NewPlan(tool, "1.2.0", target, WithStdout(&stdout))
	require.NoError(t, err)

	_, err = cmd.Execute(context.Background())

	require.NoError(t, err)
	require.Contains(t, stdout.String(), tool+" plan")
}
