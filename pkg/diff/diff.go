package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts lines by how they differ between the two inputs.
type Stats struct {
	Added     int
	Removed   int
	Unchanged int
}

// Identical reports whether the inputs had no differing lines.
func (s Stats) Identical() bool {
	return s.Added == 0 && s.Removed == 0
}

func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d =%d", s.Added, s.Removed, s.Unchanged)
}

// GenerateUnifiedDiff compares expected and actual line by line and returns a
// single-hunk unified diff together with line counts. The diff is empty when
// the content is identical. Diffs exceeding 10,000 lines are truncated with a
// marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) (string, Stats) {
	if bytes.Equal(expected, actual) {
		return "", Stats{Unchanged: countLines(string(expected))}
	}

	dmp := diffmatchpatch.New()
	// Line mode: each distinct line becomes one rune, so the diff never splits
	// a move in the middle.
	a, b, lineArray := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(string(expected)), countLines(string(actual)))

	var stats Stats
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			default:
				stats.Unchanged++
			}
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n", stats
	}

	return result, stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
