// Package revision derives canonical revision tags from version strings of
// the target binary. Tags are the lookup keys for version-specific command
// behavior.
package revision

import (
	"slices"
	"strconv"
	"strings"
)

// registry is the ascending list of revision tags the driver knows about.
// Tag strings sort lexicographically in release order: the "1_" major
// marker compares greater than any zero-major tag.
var registry = []string{
	"Rev011",
	"Rev012",
	"Rev013",
	"Rev014",
	"Rev015",
	"Rev1_00",
	"Rev1_01",
	"Rev1_02",
}

// CalcRevision computes the revision tag for a version string.
//
// The version is split on "." or "-" and the first two components become
// major and minor. A zero major stays literal ("0"); any other major gets
// an underscore suffix. The minor component is left-padded to width 2.
//
//	CalcRevision("0.15.5") == "Rev015"
//	CalcRevision("1.2.0")  == "Rev1_02"
func CalcRevision(version string) string {
	parts := strings.FieldsFunc(version, func(r rune) bool {
		return r == '.' || r == '-'
	})

	var major, minor string

	if len(parts) > 0 {
		major = parts[0]
	}

	if len(parts) > 1 {
		minor = parts[1]
	}

	// Non-numeric majors collapse to 0, matching integer coercion of the
	// version scheme this mirrors.
	majorNum, _ := strconv.Atoi(major)

	if majorNum == 0 {
		major = "0"
	} else {
		major = strconv.Itoa(majorNum) + "_"
	}

	for len(minor) < 2 {
		minor = "0" + minor
	}

	return "Rev" + major + minor
}

// Revision resolves a version string to a revision tag. An empty version
// means "latest known": the lexicographically greatest registered tag.
func Revision(version string) string {
	if version != "" {
		return CalcRevision(version)
	}

	return slices.Max(registry)
}

// Revisions returns all registered revision tags in ascending order.
func Revisions() []string {
	out := make([]string, len(registry))
	copy(out, registry)
	slices.Sort(out)

	return out
}

// Known reports whether tag is a registered revision tag.
func Known(tag string) bool {
	return slices.Contains(registry, tag)
}
