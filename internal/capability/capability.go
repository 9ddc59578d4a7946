// Package capability holds the behavior definitions for command variants:
// the flags a variant accepts, their baseline values, which flags are
// presence-only switches, and the subcommand name passed to the binary.
//
// Definitions are registered per (revision tag, variant) with a
// version-agnostic fallback per variant. Selection happens once at command
// construction; the selected set is attached to that one command instance
// and never changes afterward.
package capability

import (
	"maps"
	"slices"
)

// Set is the behavior bundle bound to a command instance.
type Set interface {
	// Defaults declares the full flag vocabulary of the variant and the
	// baseline value for each flag.
	Defaults() map[string]any

	// Switches lists the flags emitted as bare "-flag" tokens with no value.
	Switches() []string

	// Subcommand is the subcommand name passed to the binary, empty for the
	// base variant.
	Subcommand() string
}

// Definition is a static capability set.
type Definition struct {
	defaults   map[string]any
	switches   []string
	subcommand string
}

// Compile-time verification that Definition implements Set.
var _ Set = (*Definition)(nil)

// Defaults implements Set. The returned map is a copy; callers may mutate it.
func (d *Definition) Defaults() map[string]any {
	out := make(map[string]any, len(d.defaults))
	maps.Copy(out, d.defaults)

	return out
}

// Switches implements Set.
func (d *Definition) Switches() []string {
	return slices.Clone(d.switches)
}

// Subcommand implements Set.
func (d *Definition) Subcommand() string {
	return d.subcommand
}

// key identifies a registry entry. An empty revision means the entry is the
// version-agnostic fallback for its variant.
type key struct {
	revision string
	variant  string
}

// Select resolves the capability set for a revision tag and variant name.
// Lookup order:
//  1. Exact match on (revision, variant)
//  2. Fallback match on variant alone
//
// Returns nil for the base variant and for variants with no registered
// behavior at all.
func Select(revisionTag, variant string) Set {
	if variant == "" {
		return nil
	}

	if def, ok := registry[key{revision: revisionTag, variant: variant}]; ok {
		return def
	}

	if def, ok := registry[key{variant: variant}]; ok {
		return def
	}

	return nil
}

// Variants returns the sorted variant names with at least one registered
// capability set.
func Variants() []string {
	seen := make(map[string]struct{})

	for k := range registry {
		seen[k.variant] = struct{}{}
	}

	out := slices.Collect(maps.Keys(seen))
	slices.Sort(out)

	return out
}
