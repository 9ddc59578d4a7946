// Package args compiles structured options into the flag tokens of the
// external binary. Compilation merges a variant's baseline defaults with the
// caller's values, drops redundant entries, validates against the declared
// flag vocabulary, and renders the final argument vector.
package args

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nomadops/tfdriver/internal/errors"
)

// Compute normalizes caller-supplied flag values for compilation. Every
// key's underscores are rewritten to hyphens, the external flag naming
// convention of the binary.
func Compute(vars map[string]any) map[string]any {
	out := make(map[string]any, len(vars))

	for k, v := range vars {
		out[strings.ReplaceAll(k, "_", "-")] = v
	}

	return out
}

// Compile merges defaults with the normalized caller values. Caller values
// win on key collision. Entries whose value equals the default for that key
// are dropped: the binary already behaves that way, so emitting the flag
// only lengthens the command line.
func Compile(defaults, vars map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(vars))

	for k, v := range defaults {
		merged[k] = v
	}

	for k, v := range Compute(vars) {
		merged[k] = v
	}

	for k, v := range merged {
		if dv, ok := defaults[k]; ok && fmt.Sprint(v) == fmt.Sprint(dv) {
			delete(merged, k)
		}
	}

	return merged
}

// Validate checks that every compiled key belongs to the declared flag
// vocabulary: the keys of defaults plus the registered switches. On failure
// it returns an ArgumentError naming every offending key in sorted order.
// The compiled map is untouched either way, so callers can still inspect it
// for diagnostics.
func Validate(compiled, defaults map[string]any, switches []string) error {
	var invalid []string

	for k := range compiled {
		if _, ok := defaults[k]; ok {
			continue
		}

		if slices.Contains(switches, k) {
			continue
		}

		invalid = append(invalid, k)
	}

	if len(invalid) > 0 {
		slices.Sort(invalid)

		return &errors.ArgumentError{Keys: invalid}
	}

	return nil
}

// Assemble builds the final argument vector:
//
//	[binary, subcommand, flag tokens..., target]
//
// Switches render as bare "-key" tokens and are emitted only when their
// value is truthy. Every other key renders as "-key=value". Flags declared
// in defaults come first in sorted order, then the remaining keys sorted.
// Empty tokens (no subcommand for the base variant, no target, empty flag
// values) are dropped.
func Assemble(binary, subcommand string, compiled, defaults map[string]any, switches []string, target string) []string {
	argv := []string{binary}

	if subcommand != "" {
		argv = append(argv, subcommand)
	}

	var declared, extra []string

	for k := range compiled {
		if _, ok := defaults[k]; ok {
			declared = append(declared, k)
		} else {
			extra = append(extra, k)
		}
	}

	slices.Sort(declared)
	slices.Sort(extra)

	for _, k := range slices.Concat(declared, extra) {
		if tok := renderFlag(k, compiled[k], slices.Contains(switches, k)); tok != "" {
			argv = append(argv, tok)
		}
	}

	if target != "" {
		argv = append(argv, target)
	}

	return argv
}

// renderFlag renders one compiled entry as a command-line token. Returns
// the empty string when the entry produces no token.
func renderFlag(key string, value any, isSwitch bool) string {
	if isSwitch {
		if truthy(value) {
			return "-" + key
		}

		return ""
	}

	rendered := fmt.Sprint(value)
	if rendered == "" {
		return ""
	}

	return fmt.Sprintf("-%s=%s", key, rendered)
}

// truthy reports whether a switch value means "emit the switch".
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "false" && v != "0"
	default:
		return true
	}
}
