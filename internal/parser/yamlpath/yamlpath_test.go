package yamlpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser/parsertest"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
	tperrors "github.com/ADVALAIN596/ToolPathViz/pkg/errors"
)

const validDocument = `version: 1
units: mm
moves:
  - {kind: rapid, x: 0, y: 0, z: 5}
  - {kind: linear, x: 10, z: 0, feed: 300}
  - {kind: arc_cw, x: 20, i: 5}
`

func pt(x, y, z float64) toolpath.Point {
	return toolpath.Point{X: x, Y: y, Z: z}
}

func TestParserContract(t *testing.T) {
	parsertest.RunContract(t, New(), parsertest.Fixtures{
		Valid:     []byte(validDocument),
		Malformed: []byte("version: 1\nmoves:\n  - {kind: rapid, x: [1\n"),
	})
}

func TestParserIdentity(t *testing.T) {
	t.Parallel()

	require.Equal(t, "*.yaml", New().Extension())
	require.Equal(t, "YAML Toolpath (*.yaml)", New().Filter())
	require.Equal(t, New().Filter(), New().WithMaxFileSize(10).Filter())
}

func TestDecodeKeepsOmittedAxes(t *testing.T) {
	t.Parallel()

	tp, err := DecodeBytes([]byte(validDocument), "plan.yaml")
	require.NoError(t, err)

	center := pt(15, 0, 0)
	require.Equal(t, []toolpath.Move{
		{Kind: toolpath.MoveRapid, To: pt(0, 0, 5)},
		{Kind: toolpath.MoveLinear, To: pt(10, 0, 0), Feed: 300},
		{Kind: toolpath.MoveArcCW, To: pt(20, 0, 0), Center: &center},
	}, tp.Moves)
	require.Equal(t, toolpath.UnitsMillimeters, tp.Units)
}

func TestDecodeConvertsInches(t *testing.T) {
	t.Parallel()

	doc := "version: 1\nunits: inch\nmoves:\n  - {kind: linear, x: 1, feed: 10}\n"
	tp, err := DecodeBytes([]byte(doc), "plan.yaml")
	require.NoError(t, err)
	require.Equal(t, pt(25.4, 0, 0), tp.Moves[0].To)
	require.Equal(t, 254.0, tp.Moves[0].Feed)
	require.Equal(t, toolpath.UnitsMillimeters, tp.Units)
}

func TestDecodeValidationFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing version", "moves:\n  - {kind: rapid, x: 1}\n", "version"},
		{"wrong version", "version: 2\nmoves:\n  - {kind: rapid, x: 1}\n", "version"},
		{"bad units", "version: 1\nunits: furlong\nmoves:\n  - {kind: rapid, x: 1}\n", "units"},
		{"no moves", "version: 1\nmoves: []\n", "moves"},
		{"bad kind", "version: 1\nmoves:\n  - {kind: rapid, x: 1}\n  - {kind: teleport, x: 2}\n", "moves[1].kind"},
		{"negative feed", "version: 1\nmoves:\n  - {kind: linear, x: 1, feed: -1}\n", "moves[0].feed"},
		{"arc without centre", "version: 1\nmoves:\n  - {kind: arc_ccw, x: 1}\n", "moves[0].kind"},
		{"centre on rapid", "version: 1\nmoves:\n  - {kind: rapid, x: 1, j: 2}\n", "moves[0].i"},
		{"infinite coordinate", "version: 1\nmoves:\n  - {kind: linear, x: .inf, feed: 1}\n", "moves[0].x"},
		{"nan coordinate", "version: 1\nmoves:\n  - {kind: linear, x: 1, y: .nan, feed: 1}\n", "moves[0].y"},
		{"infinite offset", "version: 1\nmoves:\n  - {kind: arc_cw, x: 2, i: -.inf}\n", "moves[0].i"},
		{"infinite feed", "version: 1\nmoves:\n  - {kind: linear, x: 1, feed: .inf}\n", "moves[0].feed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeBytes([]byte(tc.doc), "plan.yaml")
			var validationErr *tperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestDecodeSyntaxErrorsCarryLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		line int
	}{
		{"unknown key", "version: 1\nmoves:\n  - kind: rapid\n    speed: 3\n", 4},
		{"wrong type", "version: one\nmoves:\n  - {kind: rapid}\n", 1},
		{"empty", "", 0},
		{"second document", "version: 1\nmoves:\n  - {kind: linear, x: 1}\n---\nversion: 1\n", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeBytes([]byte(tc.doc), "plan.yaml")
			var parseErr *tperrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tc.line, parseErr.Line)
			require.Equal(t, "plan.yaml", parseErr.Path)
		})
	}
}

func TestLoadWrapsFailuresAsMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 3\nmoves:\n  - {kind: rapid}\n"), 0o644))

	tp := parsertest.Sentinel()
	err := New().Load(parser.NewFile(path), tp)
	require.Equal(t, parser.KindMalformed, parser.Kind(err))
	require.Equal(t, parsertest.Sentinel(), tp)
}

func TestLoadRespectsMaxFileSize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDocument), 0o644))

	err := New().WithMaxFileSize(16).Load(parser.NewFile(path), toolpath.New())
	require.Equal(t, parser.KindUnreadable, parser.Kind(err))
}

func TestDecodeRejectsBrokenTrailingDocument(t *testing.T) {
	t.Parallel()

	doc := "version: 1\nmoves:\n  - {kind: linear, x: 1}\n---\n{ this is : [ broken\n"
	tp, err := DecodeBytes([]byte(doc), "plan.yaml")
	require.Nil(t, tp)

	var parseErr *tperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Greater(t, parseErr.Line, 3)
}

func TestDecodeAllowsEmptyTrailingDocument(t *testing.T) {
	t.Parallel()

	tp, err := DecodeBytes([]byte("version: 1\nmoves:\n  - {kind: linear, x: 1}\n---\n"), "plan.yaml")
	require.NoError(t, err)
	require.Equal(t, 1, tp.Len())
}
