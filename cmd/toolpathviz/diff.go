package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ADVALAIN596/ToolPathViz/pkg/diff"
)

type diffOptions struct {
	PathA    string
	PathB    string
	FilterA  string
	FilterB  string
	ExitCode bool
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Compare the motion decoded from two toolpath files",
		Long: `Diff decodes both files and compares their canonical move dumps line by
line. Files in different formats compare equal when they describe the same
motion.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.PathA, opts.PathB = args[0], args[1]
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runDiff(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.FilterA, "filter-a", "", "Exact format filter for the first file")
	cmd.Flags().StringVar(&opts.FilterB, "filter-b", "", "Exact format filter for the second file")
	cmd.Flags().BoolVar(&opts.ExitCode, "exit-code", false, "Exit with status 1 when the toolpaths differ")

	return cmd
}

func runDiff(cmd *cobra.Command, app *AppContext, opts diffOptions) error {
	dumps := make([][]byte, 2)
	for i, input := range []struct{ path, filter string }{
		{opts.PathA, opts.FilterA},
		{opts.PathB, opts.FilterB},
	} {
		path, err := resolveInputPath(input.path)
		if err != nil {
			return err
		}

		filter, err := chooseFilter(cmd, app, path, input.filter)
		if err != nil {
			return err
		}

		tp, err := loadToolpath(app, path, filter)
		if err != nil {
			return newLoadError(input.path, filter, err)
		}
		dumps[i] = []byte(tp.Text())
	}

	out := cmd.OutOrStdout()
	result, stats := diff.GenerateUnifiedDiff(dumps[0], dumps[1], opts.PathA, opts.PathB)
	if stats.Identical() {
		fmt.Fprintf(out, "Toolpaths are identical (%d lines)\n", stats.Unchanged)
		return nil
	}

	fmt.Fprint(out, result)
	fmt.Fprintf(out, "\n%d added, %d removed, %d unchanged\n", stats.Added, stats.Removed, stats.Unchanged)
	if opts.ExitCode {
		return errDiffFound
	}
	return nil
}
