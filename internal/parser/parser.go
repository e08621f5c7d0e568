package parser

import (
	"path/filepath"
	"strings"

	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

// Parser defines the contract every file format decoder must satisfy.
//
// A Parser knows exactly one file format. Implementations must be stateless
// values: the registry shares one instance across concurrent loads.
//
// To add a format, implement Parser and add an instance to builtin.Parsers;
// no other code changes.
type Parser interface {
	// Load decodes file into tp. A nil error means tp has been fully
	// populated. On any error tp must not be trusted by the caller;
	// implementations decode into a private Toolpath and assign *tp only on
	// success, so a failed load leaves tp as it was.
	//
	// The file is not pre-validated: checking that it exists and can be read
	// is the implementation's job, reported as *UnreadableError. Content the
	// format rejects is reported as *MalformedError.
	Load(file File, tp *toolpath.Toolpath) error

	// Extension returns the glob pattern of files this parser claims, such
	// as "*.gcode". It never changes for a given Parser.
	Extension() string

	// Filter returns the display and dispatch key for this parser. It must
	// equal FormatFilter(label, Extension()) for a fixed label.
	Filter() string
}

// FormatFilter builds the "<label> (<extension>)" string used for display
// and dispatch.
func FormatFilter(label, extension string) string {
	return label + " (" + extension + ")"
}

// SplitFilter inverts FormatFilter. It reports false when filter does not
// have the "<label> (<extension>)" shape.
func SplitFilter(filter string) (label, extension string, ok bool) {
	if !strings.HasSuffix(filter, ")") {
		return "", "", false
	}
	idx := strings.LastIndex(filter, " (")
	if idx <= 0 {
		return "", "", false
	}
	label = filter[:idx]
	extension = filter[idx+2 : len(filter)-1]
	if strings.TrimSpace(label) == "" || extension == "" {
		return "", "", false
	}
	return label, extension, true
}

// MatchExtension reports whether the base name of path matches the glob
// extension, ignoring case.
func MatchExtension(extension, path string) bool {
	if extension == "" || path == "" {
		return false
	}
	matched, err := filepath.Match(strings.ToLower(extension), strings.ToLower(filepath.Base(path)))
	return err == nil && matched
}
