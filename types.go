package tfdriver

import (
	"github.com/nomadops/tfdriver/internal/config"
	"github.com/nomadops/tfdriver/internal/subprocess"
)

// Options configures one command instance. Use the With* functional options
// to populate it.
type Options = config.Options

// Result holds everything a capture-mode execution produced. A non-zero
// ExitStatus is ordinary data, not an error.
type Result = subprocess.Result

// Variant is the concrete kind of command being built. It determines which
// capability set applies and the subcommand passed to the binary.
type Variant string

const (
	// Base is the generic variant: no subcommand and no bound capability
	// set. Flag vocabulary comes entirely from WithDefaults.
	Base Variant = ""

	// Plan builds a "plan" command.
	Plan Variant = "plan"

	// Apply builds an "apply" command.
	Apply Variant = "apply"

	// Init builds an "init" command.
	Init Variant = "init"

	// Destroy builds a "destroy" command.
	Destroy Variant = "destroy"

	// Output builds an "output" command.
	Output Variant = "output"

	// Validate builds a "validate" command.
	Validate Variant = "validate"
)
