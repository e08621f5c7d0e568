package parsertest

import (
	"sync/atomic"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

// Stub is a configurable parser.Parser double that counts Load calls.
type Stub struct {
	Label string
	Ext   string
	// LoadFunc runs on Load; nil appends a single rapid move tagged with ID.
	LoadFunc func(file parser.File, tp *toolpath.Toolpath) error
	// ID distinguishes stubs that share a filter.
	ID int

	calls atomic.Int64
}

// NewStub returns a Stub that succeeds with one move.
func NewStub(label, ext string) *Stub {
	return &Stub{Label: label, Ext: ext}
}

// Extension implements parser.Parser.
func (s *Stub) Extension() string {
	return s.Ext
}

// Filter implements parser.Parser.
func (s *Stub) Filter() string {
	return parser.FormatFilter(s.Label, s.Ext)
}

// Load implements parser.Parser.
func (s *Stub) Load(file parser.File, tp *toolpath.Toolpath) error {
	s.calls.Add(1)
	if s.LoadFunc != nil {
		return s.LoadFunc(file, tp)
	}
	out := toolpath.New()
	out.Append(toolpath.Move{Kind: toolpath.MoveRapid, To: toolpath.Point{X: float64(s.ID)}})
	*tp = *out
	return nil
}

// Calls returns how many times Load ran.
func (s *Stub) Calls() int {
	return int(s.calls.Load())
}

var _ parser.Parser = (*Stub)(nil)
