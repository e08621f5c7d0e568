package main

import (
	"errors"
	"fmt"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

// newLoadError reports a failed Registry.Load without distinguishing the
// cause in the headline; the cause and suggestion follow.
func newLoadError(path, filter string, cause error) error {
	return &commandError{
		headline:   fmt.Sprintf("could not load file %s as %q", path, filter),
		cause:      cause,
		suggestion: suggestionFor(cause),
	}
}

type commandError struct {
	headline   string
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.headline != "" {
		return fmt.Sprintf("%s\n\nError: %v\n\nSuggestion: %s", e.headline, e.cause, e.suggestion)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

var (
	// errDiffFound is returned by `diff --exit-code` when the dumps differ.
	errDiffFound = errors.New("toolpaths differ")
	// errNoFormatMatch means no --filter was given and no extension matched.
	errNoFormatMatch = errors.New("no registered format matches the file extension")
)

// exitCode maps a command failure onto a process exit status.
func exitCode(err error) int {
	if errors.Is(err, errDiffFound) {
		return 1
	}
	if errors.Is(err, errNoFormatMatch) {
		return 2
	}
	switch parser.Kind(err) {
	case parser.KindUnsupported:
		return 2
	case parser.KindUnreadable:
		return 3
	case parser.KindMalformed:
		return 4
	default:
		return 1
	}
}

func suggestionFor(err error) string {
	switch parser.Kind(err) {
	case parser.KindUnsupported:
		return "Run 'toolpathviz formats' to list the exact filter strings."
	case parser.KindUnreadable:
		return "Check that the path names a readable file."
	case parser.KindMalformed:
		return "Check that the file matches the chosen format; the error names the offending line."
	default:
		return "Re-run with --verbose for details."
	}
}
