// Package gcode decodes line-based G-code programs into toolpaths.
//
// Two parsers share the grammar: the example parser for *.gcode files and
// an RS-274 NGC variant for *.ngc files. See Decode for the accepted subset.
package gcode

import (
	"bytes"
	"fmt"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

const (
	exampleLabel     = "Example GCode Parser"
	exampleExtension = "*.gcode"

	ngcLabel     = "RS-274 NGC Program"
	ngcExtension = "*.ngc"
)

// Parser is a parser.Parser for one G-code file extension.
type Parser struct {
	label       string
	extension   string
	maxFileSize int64
}

// New returns a G-code parser registered under label and extension.
func New(label, extension string) *Parser {
	return &Parser{label: label, extension: extension}
}

// NewExample returns the "Example GCode Parser (*.gcode)" parser.
func NewExample() *Parser {
	return New(exampleLabel, exampleExtension)
}

// NewNGC returns the "RS-274 NGC Program (*.ngc)" parser.
func NewNGC() *Parser {
	return New(ngcLabel, ngcExtension)
}

// WithMaxFileSize returns a copy of p that refuses files larger than n bytes.
func (p *Parser) WithMaxFileSize(n int64) *Parser {
	clone := *p
	clone.maxFileSize = n
	return &clone
}

// Extension implements parser.Parser.
func (p *Parser) Extension() string {
	return p.extension
}

// Filter implements parser.Parser.
func (p *Parser) Filter() string {
	return parser.FormatFilter(p.label, p.extension)
}

// Load implements parser.Parser.
func (p *Parser) Load(file parser.File, tp *toolpath.Toolpath) error {
	if tp == nil {
		return fmt.Errorf("gcode: toolpath is nil")
	}

	data, err := file.ReadAll(p.maxFileSize)
	if err != nil {
		return err
	}

	decoded, err := Decode(bytes.NewReader(data), file.Path)
	if err != nil {
		return parser.NewMalformedError(file.Path, err)
	}

	*tp = *decoded
	return nil
}

var _ parser.Parser = (*Parser)(nil)
