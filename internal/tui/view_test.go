package tui

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

func TestViewRendersFilters(t *testing.T) {
	t.Parallel()

	view := NewModel("/tmp/work/part.ngc", testFilters, "RS-274 NGC Program (*.ngc)").View()
	require.Contains(t, view, "Open part.ngc")
	require.NotContains(t, view, "/tmp/work")
	require.Contains(t, view, "1. ")
	require.Contains(t, view, "Example GCode Parser")
	require.Contains(t, view, "(*.gcode)")
	require.Contains(t, view, "› ")
	require.Contains(t, view, "3. ")
	require.Contains(t, view, "load")
	require.Contains(t, view, "cancel")
}

func TestViewWithoutFilters(t *testing.T) {
	t.Parallel()

	require.Contains(t, NewModel("part.gcode", nil, "").View(), "No formats registered")
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	tp := toolpath.New()
	tp.Append(toolpath.Move{Kind: toolpath.MoveLinear, To: toolpath.Point{X: 3, Y: 4}, Feed: 100})

	out := RenderSummary("/data/part.gcode", "Example GCode Parser (*.gcode)", tp)
	require.Contains(t, out, "ToolPathViz • part.gcode")
	require.Contains(t, out, "/data/part.gcode")
	require.Contains(t, out, "Example GCode Parser (*.gcode)")
	require.Contains(t, out, "linear 1")
	require.Contains(t, out, "5.000 mm")
}

func TestPickWithoutFilters(t *testing.T) {
	t.Parallel()

	_, err := Pick(context.Background(), "part.gcode", nil, "", PickOptions{})
	require.EqualError(t, err, "no formats registered")
}

func TestPickReadsKeysFromInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	selected, err := Pick(context.Background(), "part.yaml", testFilters, "", PickOptions{
		Input:  bytes.NewBufferString("3\r"),
		Output: &out,
	})
	require.NoError(t, err)
	require.Equal(t, "YAML Toolpath (*.yaml)", selected)
}

func TestPickCancelled(t *testing.T) {
	t.Parallel()

	_, err := Pick(context.Background(), "part.yaml", testFilters, "", PickOptions{
		Input:  bytes.NewBufferString("q"),
		Output: &bytes.Buffer{},
	})
	require.ErrorIs(t, err, ErrCancelled)
}
