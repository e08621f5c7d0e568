// Package parsertest provides a reusable contract suite and test doubles for
// parser.Parser implementations.
package parsertest

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

// Fixtures are file contents a contract run writes to disk.
type Fixtures struct {
	// Valid must decode successfully into at least one move.
	Valid []byte
	// Malformed must be rejected as malformed content.
	Malformed []byte
}

// Sentinel returns a toolpath callers can compare against after a failed load.
func Sentinel() *toolpath.Toolpath {
	tp := toolpath.New()
	tp.Append(toolpath.Move{Kind: toolpath.MoveRapid, To: toolpath.Point{X: -999, Y: -999, Z: -999}, Line: -1})
	return tp
}

// WriteFixture writes data into dir under a name matching extension and
// returns its path.
func WriteFixture(t *testing.T, dir, extension string, data []byte) string {
	t.Helper()

	name := strings.Replace(extension, "*", "fixture", 1)
	if name == extension {
		name = "fixture" + extension
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// RunContract checks the behaviour every parser.Parser must share.
func RunContract(t *testing.T, p parser.Parser, fixtures Fixtures) {
	t.Helper()

	t.Run("Filter is stable", func(t *testing.T) {
		assert.Equal(t, p.Filter(), p.Filter(), "Filter() should return the same value on every call")
		assert.Equal(t, p.Extension(), p.Extension(), "Extension() should return the same value on every call")
	})

	t.Run("Filter embeds extension", func(t *testing.T) {
		label, ext, ok := parser.SplitFilter(p.Filter())
		require.True(t, ok, "Filter() should have the '<label> (<extension>)' shape")
		assert.Equal(t, p.Extension(), ext)
		assert.Equal(t, parser.FormatFilter(label, p.Extension()), p.Filter())
	})

	t.Run("Extension matches its own fixtures", func(t *testing.T) {
		path := WriteFixture(t, t.TempDir(), p.Extension(), fixtures.Valid)
		assert.True(t, parser.MatchExtension(p.Extension(), path))
	})

	t.Run("Valid input populates toolpath", func(t *testing.T) {
		path := WriteFixture(t, t.TempDir(), p.Extension(), fixtures.Valid)
		tp := Sentinel()
		require.NoError(t, p.Load(parser.NewFile(path), tp))
		require.Positive(t, tp.Len())
		assert.NotEqual(t, Sentinel().Moves, tp.Moves, "Load() should replace previous toolpath content")
	})

	t.Run("Malformed input fails without touching toolpath", func(t *testing.T) {
		path := WriteFixture(t, t.TempDir(), p.Extension(), fixtures.Malformed)
		tp := Sentinel()
		err := p.Load(parser.NewFile(path), tp)
		require.Error(t, err)
		assert.Equal(t, parser.KindMalformed, parser.Kind(err), "got %v", err)
		assert.Equal(t, Sentinel(), tp)
	})

	t.Run("Missing file is unreadable", func(t *testing.T) {
		tp := Sentinel()
		err := p.Load(parser.NewFile(filepath.Join(t.TempDir(), "absent")), tp)
		require.Error(t, err)
		assert.Equal(t, parser.KindUnreadable, parser.Kind(err), "got %v", err)
		assert.Equal(t, Sentinel(), tp)
	})

	t.Run("Directory is unreadable", func(t *testing.T) {
		tp := Sentinel()
		err := p.Load(parser.NewFile(t.TempDir()), tp)
		require.Error(t, err)
		assert.Equal(t, parser.KindUnreadable, parser.Kind(err), "got %v", err)
	})

	t.Run("Nil toolpath fails", func(t *testing.T) {
		path := WriteFixture(t, t.TempDir(), p.Extension(), fixtures.Valid)
		require.Error(t, p.Load(parser.NewFile(path), nil))
	})

	t.Run("Concurrent loads match sequential", func(t *testing.T) {
		path := WriteFixture(t, t.TempDir(), p.Extension(), fixtures.Valid)
		expected := toolpath.New()
		require.NoError(t, p.Load(parser.NewFile(path), expected))

		const workers = 8
		results := make([]*toolpath.Toolpath, workers)
		errs := make([]error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = toolpath.New()
				errs[i] = p.Load(parser.NewFile(path), results[i])
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, expected, results[i])
		}
	})
}
