package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	tperrors "github.com/ADVALAIN596/ToolPathViz/pkg/errors"
)

func TestFormatsCommand_TableOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "formats")
	require.NoError(t, err)

	require.Contains(t, stdout, "FORMAT")
	require.Contains(t, stdout, "EXTENSION")
	require.Contains(t, stdout, "Example GCode Parser (*.gcode)")
	require.Contains(t, stdout, "RS-274 NGC Program")
	require.Contains(t, stdout, "*.yaml")
}

func TestFormatsCommand_JSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "formats", "--json")
	require.NoError(t, err)

	var payload formatsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 3, payload.Count)
	require.Equal(t, formatJSON{
		Filter:    "Example GCode Parser (*.gcode)",
		Label:     "Example GCode Parser",
		Extension: "*.gcode",
	}, payload.Formats[0])
	require.Equal(t, "RS-274 NGC Program (*.ngc)", payload.Formats[1].Filter)
	require.Equal(t, "YAML Toolpath (*.yaml)", payload.Formats[2].Filter)
}

func TestFormatsCommand_HonoursSettings(t *testing.T) {
	settings := writeInput(t, t.TempDir(), "toolpathviz.yaml", "registry:\n  formats:\n    - \"YAML Toolpath (*.yaml)\"\n")

	stdout, _, err := executeCommand(t, "--config", settings, "formats", "--json")
	require.NoError(t, err)

	var payload formatsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 1, payload.Count)
	require.Equal(t, "YAML Toolpath (*.yaml)", payload.Formats[0].Filter)
}

func TestFormatsCommand_InvalidSettings(t *testing.T) {
	settings := writeInput(t, t.TempDir(), "toolpathviz.yaml", "registry:\n  duplicate_policy: sometimes\n")

	_, _, err := executeCommand(t, "--config", settings, "formats")
	var validationErr *tperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "registry.duplicate_policy", validationErr.Field)
	require.Contains(t, err.Error(), "Failed to read settings")
	require.Equal(t, 1, exitCode(err))
}
