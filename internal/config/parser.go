package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	tperrors "github.com/ADVALAIN596/ToolPathViz/pkg/errors"
)

// Load reads a settings file from disk, validates it, and fills unset fields
// with defaults. An empty path returns Defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tperrors.NewParseError(path, 0, err)
	}

	return Parse(data, path)
}

// Parse decodes settings from data; name is used in error messages.
func Parse(data []byte, name string) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, tperrors.NewParseError(name, tperrors.YAMLLine(err), err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}

	s.applyDefaults()
	return &s, nil
}
