package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("units mm\nrapid X0 Y0 Z5\nlinear X10 Y0 Z0 F300\n")
	result, stats := GenerateUnifiedDiff(content, content, "a.gcode", "b.yaml")

	require.Empty(t, result)
	require.True(t, stats.Identical())
	require.Equal(t, 3, stats.Unchanged)
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	expected := []byte("units mm\nrapid X0 Y0 Z5\nlinear X10 Y0 Z0 F300\n")
	actual := []byte("units mm\nrapid X0 Y0 Z5\nlinear X12 Y0 Z0 F300\n")

	result, stats := GenerateUnifiedDiff(expected, actual, "a.gcode", "b.yaml")

	require.Equal(t, "--- a.gcode\n+++ b.yaml\n@@ -1,3 +1,3 @@\n"+
		" units mm\n"+
		" rapid X0 Y0 Z5\n"+
		"-linear X10 Y0 Z0 F300\n"+
		"+linear X12 Y0 Z0 F300\n", result)
	require.Equal(t, Stats{Added: 1, Removed: 1, Unchanged: 2}, stats)
	require.False(t, stats.Identical())
	require.Equal(t, "+1 -1 =2", stats.String())
}

func TestGenerateUnifiedDiff_WholeLinesOnly(t *testing.T) {
	t.Parallel()

	// A character diff would keep the shared "linear X1" prefix.
	expected := []byte("linear X10\n")
	actual := []byte("linear X15\n")

	result, _ := GenerateUnifiedDiff(expected, actual, "a", "b")
	require.Contains(t, result, "-linear X10\n")
	require.Contains(t, result, "+linear X15\n")
}

func TestGenerateUnifiedDiff_InsertAndDelete(t *testing.T) {
	t.Parallel()

	expected := []byte("units mm\nrapid X0 Y0 Z5\nlinear X10 Y0 Z0 F300\n")
	actual := []byte("units mm\nlinear X10 Y0 Z0 F300\narc_cw X20 Y0 Z0 C[X15 Y0 Z0] F300\n")

	result, stats := GenerateUnifiedDiff(expected, actual, "a", "b")
	require.Contains(t, result, "-rapid X0 Y0 Z5\n")
	require.Contains(t, result, "+arc_cw X20 Y0 Z0 C[X15 Y0 Z0] F300\n")
	require.Equal(t, Stats{Added: 1, Removed: 1, Unchanged: 2}, stats)
}

func TestGenerateUnifiedDiff_EmptySide(t *testing.T) {
	t.Parallel()

	result, stats := GenerateUnifiedDiff(nil, []byte("units mm\n"), "a", "b")
	require.Contains(t, result, "@@ -1,0 +1,1 @@\n")
	require.Contains(t, result, "+units mm\n")
	require.Equal(t, Stats{Added: 1}, stats)
}

func TestGenerateUnifiedDiff_MissingTrailingNewline(t *testing.T) {
	t.Parallel()

	result, stats := GenerateUnifiedDiff([]byte("a\nb"), []byte("a\nc"), "x", "y")
	require.Contains(t, result, "-b\n")
	require.Contains(t, result, "+c\n")
	require.Equal(t, 1, stats.Unchanged)
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	const n = maxDiffLines/2 + 1
	for i := 0; i < n; i++ {
		fmt.Fprintf(&expected, "rapid X%d\n", i)
		fmt.Fprintf(&actual, "linear X%d\n", i)
	}

	result, stats := GenerateUnifiedDiff([]byte(expected.String()), []byte(actual.String()), "a", "b")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	require.Equal(t, n, stats.Added)
	require.Equal(t, n, stats.Removed)
}
