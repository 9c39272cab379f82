package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devtools/internal/logger"
	"github.com/alexisbeaulieu97/devtools/internal/wave"
	devtoolserrors "github.com/alexisbeaulieu97/devtools/pkg/errors"
)

func newSVGCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Generate SVG shapes",
	}

	cmd.AddCommand(newSVGWaveCmd(root))

	return cmd
}

type waveOptions struct {
	config   wave.Config
	pathOnly bool
}

func newSVGWaveCmd(root *rootFlags) *cobra.Command {
	opts := &waveOptions{config: wave.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "wave",
		Short: "Print a sine-wave SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.config.Validate(); err != nil {
				inputErr := devtoolserrors.WrapInputError(devtoolserrors.InputWave, fmt.Sprintf("%+v", opts.config), err)
				return newCommandError("generate wave", "checking settings", inputErr, "Height and stroke width must be positive, points between 1 and 100, colours as hex.")
			}

			render := wave.SVG
			if opts.pathOnly {
				render = wave.Path
			}
			out, _ := render(opts.config)

			root.app.Logger.Debug("wave generated", logger.Fields{"points": opts.config.Points, "path_only": opts.pathOnly})
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	def := wave.DefaultConfig()
	cmd.Flags().Float64Var(&opts.config.Height, "height", def.Height, "Height of the viewBox in px")
	cmd.Flags().Float64Var(&opts.config.Amplitude, "amplitude", def.Amplitude, "Distance from the centre line to a crest in px")
	cmd.Flags().Float64Var(&opts.config.Frequency, "frequency", def.Frequency, "Phase step per segment")
	cmd.Flags().IntVar(&opts.config.Points, "points", def.Points, "Number of crests")
	cmd.Flags().StringVar(&opts.config.Stroke, "stroke", def.Stroke, "Stroke colour")
	cmd.Flags().StringVar(&opts.config.Fill, "fill", def.Fill, "Fill colour or none")
	cmd.Flags().Float64Var(&opts.config.StrokeWidth, "stroke-width", def.StrokeWidth, "Stroke width in px")
	cmd.Flags().BoolVar(&opts.pathOnly, "path-only", false, "Print only the path data")

	return cmd
}
