// Package tfdriver builds and executes commands against an external
// Terraform-style versioned binary.
//
// The driver turns a structured set of options into a validated argument
// list, selects the accepted flags and subcommand name from the target
// binary's version, computes the environment the binary expects, and runs
// the binary either capturing its output or streaming it live.
//
// # Basic Usage
//
// Construct a command for a variant, then execute it:
//
//	cmd, err := tfdriver.NewPlan("/usr/local/bin/terraform", "1.2.0", "/work/stack",
//	    tfdriver.WithVar("out", "plan.bin"),
//	    tfdriver.WithVar("detailed_exitcode", true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := cmd.Execute(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.ExitStatus, result.Stdout)
//
// # Stream Mode
//
// Stream forwards output line by line while the process runs and returns
// the raw exit code:
//
//	code, err := cmd.Stream(context.Background())
//
// # Version-Specific Behavior
//
// The binary's version string resolves to a revision tag (for example
// "1.2.0" resolves to "Rev1_02"). Each command variant looks up its
// behavior under (revision tag, variant) first and falls back to a
// version-agnostic definition, so two commands of the same variant built
// against different binary versions may accept different flags.
//
// # Errors
//
// Argument validation failure yields an ArgumentError naming every invalid
// key and happens before any process is spawned. Spawn failures surface as
// BinaryNotFoundError or LaunchError. A non-zero exit code from the process
// is returned as data, never as an error.
//
// # Logging
//
// By default logging is disabled. Pass a logger to enable it:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	cmd, err := tfdriver.NewApply(binary, version, target,
//	    tfdriver.WithLogger(logger),
//	)
package tfdriver
