// Package yamlpath decodes explicit move lists written as YAML.
//
//	version: 1
//	units: mm
//	moves:
//	  - {kind: rapid, x: 0, y: 0, z: 5}
//	  - {kind: linear, x: 10, feed: 300}
//	  - {kind: arc_cw, x: 20, i: 5}
package yamlpath

import (
	"fmt"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

const (
	label     = "YAML Toolpath"
	extension = "*.yaml"
)

// Parser implements parser.Parser for YAML toolpath documents.
type Parser struct {
	maxFileSize int64
}

// New returns the "YAML Toolpath (*.yaml)" parser.
func New() *Parser {
	return &Parser{}
}

// WithMaxFileSize returns a copy of p that refuses files larger than n bytes.
func (p *Parser) WithMaxFileSize(n int64) *Parser {
	return &Parser{maxFileSize: n}
}

// Extension implements parser.Parser.
func (p *Parser) Extension() string {
	return extension
}

// Filter implements parser.Parser.
func (p *Parser) Filter() string {
	return parser.FormatFilter(label, extension)
}

// Load implements parser.Parser.
func (p *Parser) Load(file parser.File, tp *toolpath.Toolpath) error {
	if tp == nil {
		return fmt.Errorf("yamlpath: toolpath is nil")
	}

	data, err := file.ReadAll(p.maxFileSize)
	if err != nil {
		return err
	}

	decoded, err := DecodeBytes(data, file.Path)
	if err != nil {
		return parser.NewMalformedError(file.Path, err)
	}

	*tp = *decoded
	return nil
}

var _ parser.Parser = (*Parser)(nil)
