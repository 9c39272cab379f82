package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devtools/internal/logger"
	"github.com/alexisbeaulieu97/devtools/internal/textcase"
	devtoolserrors "github.com/alexisbeaulieu97/devtools/pkg/errors"
)

func newTextCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Transform text",
	}

	cmd.AddCommand(newTextCaseCmd(root))

	return cmd
}

type caseOptions struct {
	style      string
	jsonOutput bool
}

type caseJSONPayload struct {
	Input   string            `json:"input"`
	Results []textcase.Result `json:"results"`
}

func newTextCaseCmd(root *rootFlags) *cobra.Command {
	opts := &caseOptions{}

	cmd := &cobra.Command{
		Use:   "case [text...]",
		Short: "Rewrite text in common letter cases",
		Long:  "Rewrite text in every case style, or only the one selected with --style. Reads stdin when no text is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTextCase(cmd, root.app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Only print this style (e.g. snake, camelCase)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output every style as JSON")

	return cmd
}

func runTextCase(cmd *cobra.Command, app *AppContext, opts *caseOptions, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return newCommandError("convert case", "reading stdin", err, "Pass the text as arguments instead.")
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	if opts.style != "" {
		style, ok := textcase.ParseStyle(opts.style)
		if !ok {
			err := devtoolserrors.NewInputError(devtoolserrors.InputCaseStyle, opts.style, "unknown style")
			return newCommandError("convert case", "selecting style", err, "Run 'devtools text case --help' or omit --style to see every style.")
		}
		out, _ := textcase.Convert(text, style)
		app.Logger.Debug("text converted", logger.Fields{"style": style.String(), "length": len(text)})
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	results := textcase.ConvertAll(text)
	app.Logger.Debug("text converted", logger.Fields{"styles": len(results), "length": len(text)})

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), caseJSONPayload{Input: text, Results: results})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(writer, "%s\t%s\n", r.Label, r.Output)
	}
	return writer.Flush()
}
