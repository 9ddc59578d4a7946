package capability

// registry maps (revision tag, variant) to the behavior definition for that
// combination. Entries with an empty revision are the version-agnostic
// fallback for their variant. Only combinations whose accepted flags differ
// from the fallback need a revision-specific entry.
var registry = map[key]*Definition{
	// Version-agnostic fallbacks.
	{variant: "plan"}: {
		subcommand: "plan",
		defaults: map[string]any{
			"input":        "false",
			"lock":         "true",
			"lock-timeout": "0s",
			"out":          "",
			"parallelism":  "10",
			"refresh":      "true",
			"state":        "",
			"var-file":     "",
		},
		switches: []string{"compact-warnings", "destroy", "detailed-exitcode", "no-color"},
	},
	{variant: "apply"}: {
		subcommand: "apply",
		defaults: map[string]any{
			"backup":       "",
			"input":        "false",
			"lock":         "true",
			"lock-timeout": "0s",
			"parallelism":  "10",
			"refresh":      "true",
			"state":        "",
			"state-out":    "",
			"var-file":     "",
		},
		switches: []string{"auto-approve", "compact-warnings", "no-color"},
	},
	{variant: "init"}: {
		subcommand: "init",
		defaults: map[string]any{
			"backend":        "true",
			"backend-config": "",
			"from-module":    "",
			"input":          "false",
			"plugin-dir":     "",
		},
		switches: []string{"migrate-state", "no-color", "reconfigure", "upgrade"},
	},
	{variant: "destroy"}: {
		subcommand: "destroy",
		defaults: map[string]any{
			"input":        "false",
			"lock":         "true",
			"lock-timeout": "0s",
			"parallelism":  "10",
			"refresh":      "true",
			"state":        "",
			"var-file":     "",
		},
		switches: []string{"auto-approve", "compact-warnings", "no-color"},
	},
	{variant: "output"}: {
		subcommand: "output",
		defaults: map[string]any{
			"state": "",
		},
		switches: []string{"json", "no-color", "raw"},
	},
	{variant: "validate"}: {
		subcommand: "validate",
		defaults:   map[string]any{},
		switches:   []string{"json", "no-color"},
	},

	// 0.12 still accepts the flags 0.15 removed.
	{revision: "Rev012", variant: "init"}: {
		subcommand: "init",
		defaults: map[string]any{
			"backend":        "true",
			"backend-config": "",
			"from-module":    "",
			"get-plugins":    "true",
			"input":          "false",
			"plugin-dir":     "",
			"verify-plugins": "true",
		},
		switches: []string{"no-color", "reconfigure", "upgrade"},
	},
	{revision: "Rev012", variant: "destroy"}: {
		subcommand: "destroy",
		defaults: map[string]any{
			"input":        "false",
			"lock":         "true",
			"lock-timeout": "0s",
			"parallelism":  "10",
			"refresh":      "true",
			"state":        "",
			"var-file":     "",
		},
		switches: []string{"auto-approve", "force", "no-color"},
	},

	// 1.x adds plan/apply modes that do not exist in the 0.x line.
	{revision: "Rev1_02", variant: "plan"}: {
		subcommand: "plan",
		defaults: map[string]any{
			"input":        "false",
			"lock":         "true",
			"lock-timeout": "0s",
			"out":          "",
			"parallelism":  "10",
			"refresh":      "true",
			"replace":      "",
			"state":        "",
			"var-file":     "",
		},
		switches: []string{"compact-warnings", "destroy", "detailed-exitcode", "json", "no-color", "refresh-only"},
	},
	{revision: "Rev1_02", variant: "apply"}: {
		subcommand: "apply",
		defaults: map[string]any{
			"backup":       "",
			"input":        "false",
			"lock":         "true",
			"lock-timeout": "0s",
			"parallelism":  "10",
			"refresh":      "true",
			"replace":      "",
			"state":        "",
			"state-out":    "",
			"var-file":     "",
		},
		switches: []string{"auto-approve", "compact-warnings", "json", "no-color", "refresh-only"},
	},
}
