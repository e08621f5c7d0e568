package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/ADVALAIN596/ToolPathViz/internal/tui"
)

const (
	sampleGCode = "G0 X0 Y0 Z5\nG1 X10 Z0 F300\nG2 X20 I5\n"
	sampleYAML  = `version: 1
moves:
  - {kind: rapid, x: 0, y: 0, z: 5}
  - {kind: linear, x: 10, z: 0, feed: 300}
  - {kind: arc_cw, x: 20, i: 5, feed: 300}
`
)

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := newRootCmd()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeInput(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

type pickCall struct {
	path      string
	filters   []string
	preselect string
}

// stubPicker makes commands believe they run on a terminal and answers the
// format picker with choice.
func stubPicker(t *testing.T, choice string, err error) *[]pickCall {
	t.Helper()

	originalInteractive := isInteractive
	originalPick := pickFormat
	t.Cleanup(func() {
		isInteractive = originalInteractive
		pickFormat = originalPick
	})

	calls := &[]pickCall{}
	isInteractive = func(*cobra.Command) bool { return true }
	pickFormat = func(_ context.Context, path string, filters []string, preselect string, _ tui.PickOptions) (string, error) {
		*calls = append(*calls, pickCall{path: path, filters: filters, preselect: preselect})
		return choice, err
	}
	return calls
}
