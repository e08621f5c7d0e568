package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
)

type formatsOptions struct {
	jsonOutput bool
}

func newFormatsCmd(root *rootFlags) *cobra.Command {
	opts := &formatsOptions{}

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the toolpath formats this build can load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runFormats(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type formatJSON struct {
	Filter    string `json:"filter"`
	Label     string `json:"label"`
	Extension string `json:"extension"`
}

type formatsJSONPayload struct {
	Count   int          `json:"count"`
	Formats []formatJSON `json:"formats"`
}

func runFormats(cmd *cobra.Command, app *AppContext, opts *formatsOptions) error {
	filters := app.Registry.SupportedFormats()

	if opts.jsonOutput {
		payload := formatsJSONPayload{Count: len(filters), Formats: make([]formatJSON, len(filters))}
		for i, filter := range filters {
			label, ext, _ := parser.SplitFilter(filter)
			payload.Formats[i] = formatJSON{Filter: filter, Label: label, Extension: ext}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	if len(filters) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No formats registered.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tFORMAT\tEXTENSION\tFILTER")
	for i, filter := range filters {
		label, ext, _ := parser.SplitFilter(filter)
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", i+1, label, ext, filter)
	}
	return writer.Flush()
}
