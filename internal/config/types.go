package config

import (
	"github.com/ADVALAIN596/ToolPathViz/internal/logger"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser/builtin"
)

// Settings is the decoded form of a toolpathviz settings file.
type Settings struct {
	Log      LogSettings      `yaml:"log"`
	Registry RegistrySettings `yaml:"registry"`
}

// LogSettings configures the CLI logger.
type LogSettings struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// RegistrySettings configures which parsers are registered and how.
type RegistrySettings struct {
	DuplicatePolicy string   `yaml:"duplicate_policy" validate:"omitempty,oneof=first_wins strict"`
	MaxFileSize     int64    `yaml:"max_file_size" validate:"gte=0"`
	Formats         []string `yaml:"formats" validate:"unique,dive,filter"`
}

// Defaults returns the settings used when no file is given.
func Defaults() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

func (s *Settings) applyDefaults() {
	if s.Log.Level == "" {
		s.Log.Level = "info"
	}
	if s.Registry.DuplicatePolicy == "" {
		s.Registry.DuplicatePolicy = string(parser.DuplicateFirstWins)
	}
	if s.Registry.MaxFileSize == 0 {
		s.Registry.MaxFileSize = parser.DefaultMaxFileSize
	}
}

// LoggerOptions maps the log section onto logger options.
func (s *Settings) LoggerOptions() logger.Options {
	return logger.Options{
		Level:         s.Log.Level,
		HumanReadable: s.Log.HumanReadable,
	}
}

// RegistryConfig maps the registry section onto a registry config.
func (s *Settings) RegistryConfig() *parser.RegistryConfig {
	return &parser.RegistryConfig{
		DuplicatePolicy: parser.DuplicatePolicy(s.Registry.DuplicatePolicy),
	}
}

// BuiltinOptions maps the registry section onto built-in parser options.
func (s *Settings) BuiltinOptions() builtin.Options {
	formats := make([]string, len(s.Registry.Formats))
	copy(formats, s.Registry.Formats)
	return builtin.Options{
		MaxFileSize: s.Registry.MaxFileSize,
		Formats:     formats,
	}
}
