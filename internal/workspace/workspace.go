// Package workspace computes the working context the external binary
// expects: its private data directory and the environment of the spawned
// process. The environment is always built as an explicit slice handed to
// the process; the driver never mutates its own ambient environment, so
// concurrent command constructions stay safe against each other.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// DataDirName is the fixed name of the binary's private data directory.
	DataDirName = ".terraform"

	// EnvDataDir is the environment variable pointing the binary at its
	// data directory.
	EnvDataDir = "TF_DATA_DIR"
)

// pathVars are the path-valued environment variables rewritten to absolute
// form when present. Expansion runs after caller overrides are applied so
// it also normalizes any path the caller just supplied.
var pathVars = []string{
	"TF_CLI_CONFIG_FILE",
	"TF_LOG_PATH",
	"TF_PLUGIN_CACHE_DIR",
}

// DataDir resolves the data directory for a target path. An existing
// directory is used as-is; anything else (a file, a missing path, an empty
// target) resolves to its containing directory. The result is the absolute
// form of that directory joined with DataDirName.
func DataDir(target string) (string, error) {
	if target == "" {
		target = "."
	}

	dir := target

	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		dir = filepath.Dir(target)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve data dir for %q: %w", target, err)
	}

	return filepath.Join(abs, DataDirName), nil
}

// BuildEnvironment constructs the environment slice for the spawned
// process. Order matters:
//
//  1. Start from the current process environment.
//  2. Set EnvDataDir from DataDir(target), so caller overrides can still
//     replace it.
//  3. Apply every caller-supplied variable.
//  4. Rewrite the path-valued variables to absolute form in place.
func BuildEnvironment(target string, overrides map[string]string) ([]string, error) {
	env := environMap()

	dataDir, err := DataDir(target)
	if err != nil {
		return nil, err
	}

	env[EnvDataDir] = dataDir

	for k, v := range overrides {
		env[k] = v
	}

	for _, name := range pathVars {
		value, ok := env[name]
		if !ok || value == "" {
			continue
		}

		abs, err := filepath.Abs(value)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", name, err)
		}

		env[name] = abs
	}

	return render(env), nil
}

// environMap parses os.Environ into a map. Later duplicates win, matching
// how exec resolves them.
func environMap() map[string]string {
	out := make(map[string]string)

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}

	return out
}

// render flattens the map back to KEY=VALUE form, sorted for deterministic
// command construction.
func render(env map[string]string) []string {
	out := make([]string, 0, len(env))

	for k, v := range env {
		out = append(out, k+"="+v)
	}

	slices.Sort(out)

	return out
}
