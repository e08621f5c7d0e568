package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
	"github.com/ADVALAIN596/ToolPathViz/internal/tui"
)

type loadOptions struct {
	Path   string
	Filter string
	Moves  bool
}

// pickFormat is swapped out by tests.
var pickFormat = tui.Pick

func newLoadCmd(root *rootFlags) *cobra.Command {
	opts := loadOptions{}

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Decode a toolpath file and summarise it",
		Long: `Load decodes a toolpath file with the format named by --filter. Without
--filter an interactive terminal shows a format picker; otherwise the format
is chosen from the file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runLoad(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "", "Exact format filter, as listed by 'toolpathviz formats'")
	cmd.Flags().BoolVar(&opts.Moves, "moves", false, "Print every decoded move after the summary")

	return cmd
}

func runLoad(cmd *cobra.Command, app *AppContext, opts loadOptions) error {
	path, err := resolveInputPath(opts.Path)
	if err != nil {
		return err
	}

	filter, err := chooseFilter(cmd, app, path, opts.Filter)
	if err != nil {
		return err
	}

	tp, err := loadToolpath(app, path, filter)
	if err != nil {
		return newLoadError(opts.Path, filter, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.RenderSummary(path, filter, tp))
	if opts.Moves {
		fmt.Fprintln(out)
		return tp.WriteText(out)
	}
	return nil
}

// chooseFilter resolves the filter for path: the explicit flag first, then the
// picker on a terminal, then the extension match.
func chooseFilter(cmd *cobra.Command, app *AppContext, path, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	guess, guessed := app.Registry.FilterForPath(path)
	if isInteractive(cmd) {
		filter, err := pickFormat(cmd.Context(), path, app.Registry.SupportedFormats(), guess, tui.PickOptions{
			Input:  cmd.InOrStdin(),
			Output: cmd.OutOrStdout(),
		})
		if err != nil {
			return "", newCommandError("choose format", path, err, "Pass --filter to skip the picker.")
		}
		return filter, nil
	}

	if !guessed {
		return "", newCommandError("choose format", path, errNoFormatMatch,
			"Pass --filter with one of the filters listed by 'toolpathviz formats'.")
	}
	app.Logger.With("filter", guess).Debug("Format chosen from file extension")
	return guess, nil
}

func loadToolpath(app *AppContext, path, filter string) (*toolpath.Toolpath, error) {
	log := app.Logger.WithFields(map[string]any{"path": path, "filter": filter})
	log.Debug("Loading toolpath")

	tp := toolpath.New()
	if err := app.Registry.Load(parser.NewFile(path), filter, tp); err != nil {
		log.Error(err, "Could not load file")
		return nil, err
	}

	log.WithFields(map[string]any{"moves": tp.Len()}).Info("Toolpath loaded")
	return tp, nil
}
