package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "toolpathviz",
		Short:         "ToolPathViz decodes CNC toolpath files and summarises their motion",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a toolpathviz settings file")

	cmd.AddCommand(newFormatsCmd(flags))
	cmd.AddCommand(newLoadCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
