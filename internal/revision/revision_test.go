package revision

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCalcRevision tests the version-to-tag computation across the major
// boundary rules: zero majors stay literal, other majors get the underscore
// suffix, minors are padded to width 2.
func TestCalcRevision(t *testing.T) {
	cases := []struct {
		version string
		want    string
	}{
		{"0.15.5", "Rev015"},
		{"1.2.0", "Rev1_02"},
		{"1.2", "Rev1_02"},
		{"0.11.14", "Rev011"},
		{"0.12.31", "Rev012"},
		{"1.0.11", "Rev1_00"},
		{"1.2.0-rc1", "Rev1_02"},
		{"2.0", "Rev2_00"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, CalcRevision(tc.version), "version %q", tc.version)
	}
}

// TestCalcRevision_Deterministic tests that repeated computation yields the
// same tag.
func TestCalcRevision_Deterministic(t *testing.T) {
	require.Equal(t, CalcRevision("0.13.7"), CalcRevision("0.13.7"))
}

// TestRevision_Explicit tests that a supplied version is computed, not
// looked up.
func TestRevision_Explicit(t *testing.T) {
	require.Equal(t, "Rev015", Revision("0.15.5"))
}

// TestRevision_LatestFallback tests that an empty version resolves to the
// greatest registered tag.
func TestRevision_LatestFallback(t *testing.T) {
	revs := Revisions()

	require.NotEmpty(t, revs)
	require.Equal(t, slices.Max(revs), Revision(""))
}

// TestRevisions_SortedUnique tests that the registered tags come back
// strictly ascending with no duplicates.
func TestRevisions_SortedUnique(t *testing.T) {
	revs := Revisions()

	require.True(t, slices.IsSorted(revs))
	require.Equal(t, slices.Compact(slices.Clone(revs)), revs)
}

// TestKnown tests registered-tag membership.
func TestKnown(t *testing.T) {
	require.True(t, Known("Rev015"))
	require.False(t, Known("Rev999"))
}
