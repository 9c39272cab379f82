package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devtools/internal/logger"
	"github.com/alexisbeaulieu97/devtools/internal/tui"
	"github.com/alexisbeaulieu97/devtools/internal/units"
	devtoolserrors "github.com/alexisbeaulieu97/devtools/pkg/errors"
)

func newUnitsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Convert CSS length units",
	}

	cmd.AddCommand(newUnitsConvertCmd(root))
	cmd.AddCommand(newUnitsListCmd())

	return cmd
}

type convertOptions struct {
	baseFontSize   float64
	viewportWidth  float64
	viewportHeight float64
	containerSize  float64
	jsonOutput     bool
}

// frame overlays any flags that were set on the configured reference frame.
func (o *convertOptions) frame(cmd *cobra.Command, base units.ReferenceFrame) units.ReferenceFrame {
	if cmd.Flags().Changed("base") {
		base.BaseFontSizePx = o.baseFontSize
	}
	if cmd.Flags().Changed("vw") {
		base.ViewportWidthPx = o.viewportWidth
	}
	if cmd.Flags().Changed("vh") {
		base.ViewportHeightPx = o.viewportHeight
	}
	if cmd.Flags().Changed("container") {
		base.ContainerSizePx = o.containerSize
	}
	return base
}

type convertJSONPayload struct {
	Input   string               `json:"input"`
	From    units.Unit           `json:"from"`
	Frame   units.ReferenceFrame `json:"frame"`
	Results []units.Result       `json:"results"`
}

func newUnitsConvertCmd(root *rootFlags) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <value> [unit]",
		Short: "Convert a length into every supported unit",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root.app, opts, args)
		},
	}

	cmd.Flags().Float64Var(&opts.baseFontSize, "base", 0, "Base font size in px")
	cmd.Flags().Float64Var(&opts.viewportWidth, "vw", 0, "Viewport width in px")
	cmd.Flags().Float64Var(&opts.viewportHeight, "vh", 0, "Viewport height in px")
	cmd.Flags().Float64Var(&opts.containerSize, "container", 0, "Container size in px")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output conversions as JSON")

	return cmd
}

func runConvert(cmd *cobra.Command, app *AppContext, opts *convertOptions, args []string) error {
	from := app.Config.DefaultUnit()
	if len(args) == 2 {
		parsed, err := units.ParseUnit(args[1])
		if err != nil {
			return newCommandError("convert length", "reading unit", devtoolserrors.WrapInputError(devtoolserrors.InputUnit, args[1], err), "Run 'devtools units list' to see supported units.")
		}
		from = parsed
	}

	value, ok := units.ParseMagnitude(args[0])
	if !ok {
		err := devtoolserrors.NewInputError(devtoolserrors.InputMagnitude, args[0], "expected a finite number")
		return newCommandError("convert length", "reading value", err, "Pass a plain number such as 16 or 1.5.")
	}

	frame := opts.frame(cmd, app.Config.ReferenceFrame())
	if err := frame.Validate(); err != nil {
		return newCommandError("convert length", "checking reference frame", devtoolserrors.WrapInputError(devtoolserrors.InputFrame, fmt.Sprintf("%+v", frame), err), "Reference dimensions must be positive.")
	}

	results := units.Table(value, from, frame)
	if len(results) == 0 {
		err := devtoolserrors.NewInputError(devtoolserrors.InputMagnitude, args[0], "value is out of range for "+string(from))
		return newCommandError("convert length", "converting "+args[0]+string(from), err, "Pass a smaller magnitude.")
	}
	app.Logger.Debug("length converted", logger.Fields{"value": value, "from": string(from), "results": len(results)})

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), convertJSONPayload{Input: args[0], From: from, Frame: frame, Results: results})
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderConversions(results, from))
	return nil
}

func newUnitsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "UNIT\tPRECISION\tDESCRIPTION")
			for _, u := range units.Units() {
				fmt.Fprintf(writer, "%s\t%d\t%s\n", u, u.Precision(), u.Description())
			}
			return writer.Flush()
		},
	}
}
