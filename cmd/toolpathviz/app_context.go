package main

import (
	"github.com/spf13/cobra"

	"github.com/ADVALAIN596/ToolPathViz/internal/config"
	"github.com/ADVALAIN596/ToolPathViz/internal/logger"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/parser/builtin"
)

// AppContext bundles long-lived services created for one command.
type AppContext struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Registry *parser.Registry
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("read settings", flags.configPath, err, "Fix the settings file or omit --config to use defaults.")
	}

	logOpts := settings.LoggerOptions()
	if flags.verbose {
		logOpts.Level = "debug"
	}
	logOpts.Writer = cmd.ErrOrStderr()

	log, err := logger.New(logOpts)
	if err != nil {
		return nil, newCommandError("create logger", logOpts.Level, err, "Use one of trace, debug, info, warn or error.")
	}

	reg, err := builtin.NewRegistry(settings.RegistryConfig(), log, settings.BuiltinOptions())
	if err != nil {
		return nil, newCommandError("build format registry", "registering built-in formats", err, "Check registry.formats in the settings file.")
	}

	log.WithFields(map[string]any{
		"formats": reg.Len(),
		"policy":  settings.Registry.DuplicatePolicy,
	}).Debug("Registry ready")

	return &AppContext{Settings: settings, Logger: log, Registry: reg}, nil
}
