package yamlpath

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
	tperrors "github.com/ADVALAIN596/ToolPathViz/pkg/errors"
)

const mmPerInch = 25.4

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// document is the on-disk layout of a YAML toolpath.
type document struct {
	Version int        `yaml:"version" validate:"required,eq=1"`
	Units   string     `yaml:"units,omitempty" validate:"omitempty,oneof=mm inch"`
	Moves   []moveSpec `yaml:"moves" validate:"required,min=1,dive"`
}

// moveSpec is one entry of the moves list. Omitted axes keep the previous
// coordinate; I, J and K are arc centre offsets from the move's start.
type moveSpec struct {
	Kind string   `yaml:"kind" validate:"required,oneof=rapid linear arc_cw arc_ccw"`
	X    *float64 `yaml:"x,omitempty"`
	Y    *float64 `yaml:"y,omitempty"`
	Z    *float64 `yaml:"z,omitempty"`
	I    *float64 `yaml:"i,omitempty"`
	J    *float64 `yaml:"j,omitempty"`
	K    *float64 `yaml:"k,omitempty"`
	Feed float64  `yaml:"feed,omitempty" validate:"gte=0"`
}

func (m moveSpec) hasCenter() bool {
	return m.I != nil || m.J != nil || m.K != nil
}

// nonFinite names the first value holding an infinity or NaN.
func (m moveSpec) nonFinite() (string, bool) {
	values := []struct {
		name string
		v    *float64
	}{
		{"x", m.X}, {"y", m.Y}, {"z", m.Z},
		{"i", m.I}, {"j", m.J}, {"k", m.K},
		{"feed", &m.Feed},
	}
	for _, f := range values {
		if f.v != nil && (math.IsInf(*f.v, 0) || math.IsNaN(*f.v)) {
			return f.name, true
		}
	}
	return "", false
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Decode reads a YAML toolpath document from r. name is used in error
// messages. Unknown keys are rejected.
func Decode(r io.Reader, name string) (*toolpath.Toolpath, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, tperrors.NewParseErrorf(name, 0, "document is empty")
		}
		return nil, tperrors.NewParseError(name, tperrors.YAMLLine(err), err)
	}
	if err := expectEnd(dec, name); err != nil {
		return nil, err
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	return doc.toolpath(), nil
}

// expectEnd fails unless dec holds nothing but empty documents after the
// first one.
func expectEnd(dec *yaml.Decoder, name string) error {
	for {
		var extra yaml.Node
		err := dec.Decode(&extra)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return tperrors.NewParseError(name, tperrors.YAMLLine(err), err)
		case !isEmptyDocument(&extra):
			return tperrors.NewParseErrorf(name, extra.Content[0].Line, "unexpected additional document")
		}
	}
}

func isEmptyDocument(n *yaml.Node) bool {
	if len(n.Content) == 0 {
		return true
	}
	if len(n.Content) > 1 {
		return false
	}
	c := n.Content[0]
	return c.Kind == yaml.ScalarNode && c.Tag == "!!null"
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, name string) (*toolpath.Toolpath, error) {
	return Decode(bytes.NewReader(data), name)
}

func validateDocument(doc *document) error {
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for i, m := range doc.Moves {
		if field, ok := m.nonFinite(); ok {
			return tperrors.NewValidationError(fieldForMove(i, field), "must be a finite number", nil)
		}
		isArc := toolpath.MoveKind(m.Kind).IsArc()
		switch {
		case isArc && !m.hasCenter():
			return tperrors.NewValidationError(fieldForMove(i, "kind"), "arc requires at least one of i, j, k", nil)
		case !isArc && m.hasCenter():
			return tperrors.NewValidationError(fieldForMove(i, "i"), "centre offsets are only allowed on arcs", nil)
		}
	}
	return nil
}

func (doc *document) toolpath() *toolpath.Toolpath {
	scale := 1.0
	if doc.Units == "inch" {
		scale = mmPerInch
	}

	tp := toolpath.New()
	var pos toolpath.Point
	pick := func(v *float64, cur float64) float64 {
		if v == nil {
			return cur
		}
		return *v * scale
	}
	offset := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v * scale
	}

	for _, m := range doc.Moves {
		target := toolpath.Point{X: pick(m.X, pos.X), Y: pick(m.Y, pos.Y), Z: pick(m.Z, pos.Z)}
		mv := toolpath.Move{Kind: toolpath.MoveKind(m.Kind), To: target}
		if mv.Kind != toolpath.MoveRapid {
			mv.Feed = m.Feed * scale
		}
		if mv.Kind.IsArc() {
			center := pos.Add(toolpath.Point{X: offset(m.I), Y: offset(m.J), Z: offset(m.K)})
			mv.Center = &center
		}
		tp.Append(mv)
		pos = target
	}
	return tp
}

// convertValidationError normalizes validator errors into field-level errors.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tperrors.NewValidationError(field, msg, err)
	}
	return tperrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns "document.Moves[1].Kind" into "moves[1].kind".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForMove(index int, field string) string {
	return fmt.Sprintf("moves[%d].%s", index, field)
}
