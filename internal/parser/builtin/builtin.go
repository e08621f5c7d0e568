// Package builtin assembles the parsers shipped with toolpathviz.
package builtin

import (
	"fmt"

	"github.com/ADVALAIN596/ToolPathViz/internal/logger"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser/gcode"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser/yamlpath"
)

// Options selects and tunes the built-in parsers.
type Options struct {
	// MaxFileSize bounds each read; zero uses parser.DefaultMaxFileSize.
	MaxFileSize int64
	// Formats restricts and orders the registered parsers by filter. Empty
	// registers every built-in parser in default order.
	Formats []string
}

// Parsers returns one instance of every built-in parser in default order.
func Parsers(maxFileSize int64) []parser.Parser {
	return []parser.Parser{
		gcode.NewExample().WithMaxFileSize(maxFileSize),
		gcode.NewNGC().WithMaxFileSize(maxFileSize),
		yamlpath.New().WithMaxFileSize(maxFileSize),
	}
}

// Filters returns the filters of every built-in parser in default order.
func Filters() []string {
	all := Parsers(0)
	filters := make([]string, len(all))
	for i, p := range all {
		filters[i] = p.Filter()
	}
	return filters
}

// Select returns the built-in parsers named by formats, in that order.
func Select(opts Options) ([]parser.Parser, error) {
	all := Parsers(opts.MaxFileSize)
	if len(opts.Formats) == 0 {
		return all, nil
	}

	byFilter := make(map[string]parser.Parser, len(all))
	for _, p := range all {
		byFilter[p.Filter()] = p
	}

	selected := make([]parser.Parser, 0, len(opts.Formats))
	for _, filter := range opts.Formats {
		p, ok := byFilter[filter]
		if !ok {
			return nil, &parser.UnsupportedFormatError{Filter: filter}
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// NewRegistry builds a registry of the built-in parsers chosen by opts.
func NewRegistry(cfg *parser.RegistryConfig, log *logger.Logger, opts Options) (*parser.Registry, error) {
	parsers, err := Select(opts)
	if err != nil {
		return nil, fmt.Errorf("select parsers: %w", err)
	}
	return parser.NewRegistry(cfg, log, parsers...)
}
