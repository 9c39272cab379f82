package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devtools/internal/colormath"
	"github.com/alexisbeaulieu97/devtools/internal/logger"
	"github.com/alexisbeaulieu97/devtools/internal/tui"
	devtoolserrors "github.com/alexisbeaulieu97/devtools/pkg/errors"
)

const hexSuggestion = "Pass a colour as #RRGGBB, or use --loose to accept #RGB and a missing '#'."

type colorOptions struct {
	loose bool
}

func newColorCmd(root *rootFlags) *cobra.Command {
	opts := &colorOptions{}

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert colours and derive palettes",
	}

	cmd.PersistentFlags().BoolVar(&opts.loose, "loose", false, "Accept #RGB shorthand and hex without '#'")

	cmd.AddCommand(newColorRGBCmd(opts))
	cmd.AddCommand(newColorHSLCmd(opts))
	cmd.AddCommand(newColorPaletteCmd(root, opts))
	cmd.AddCommand(newColorRandomCmd())
	cmd.AddCommand(newColorShadeCmd(opts))

	return cmd
}

// resolveHex applies --loose normalisation and reports malformed input as an InputError.
func (o *colorOptions) resolveHex(raw string) (string, error) {
	if o.loose {
		hex, ok := colormath.NormalizeHex(raw)
		if !ok {
			return "", devtoolserrors.NewInputError(devtoolserrors.InputColor, raw, "expected #RGB or #RRGGBB")
		}
		return hex, nil
	}
	if _, ok := colormath.ParseHex(raw); !ok {
		return "", devtoolserrors.NewInputError(devtoolserrors.InputColor, raw, "expected #RRGGBB")
	}
	return raw, nil
}

func newColorRGBCmd(opts *colorOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb <hex>",
		Short: "Print a hex colour in rgb() notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := opts.resolveHex(args[0])
			if err != nil {
				return newCommandError("convert colour", "parsing "+args[0], err, hexSuggestion)
			}
			fmt.Fprintln(cmd.OutOrStdout(), colormath.HexToRGBString(hex))
			return nil
		},
	}
}

func newColorHSLCmd(opts *colorOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hsl <hex>",
		Short: "Print a hex colour in hsl() notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := opts.resolveHex(args[0])
			if err != nil {
				return newCommandError("convert colour", "parsing "+args[0], err, hexSuggestion)
			}
			c, _ := colormath.HexToHSL(hex)
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}
}

type paletteOptions struct {
	strategy   string
	jsonOutput bool
}

type paletteColor struct {
	Hex string        `json:"hex"`
	RGB colormath.RGB `json:"rgb"`
	HSL colormath.HSL `json:"hsl"`
}

type paletteJSONPayload struct {
	Base     string         `json:"base"`
	Strategy string         `json:"strategy"`
	Colors   []paletteColor `json:"colors"`
}

func newColorPaletteCmd(root *rootFlags, colorOpts *colorOptions) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette [hex]",
		Short: "Derive a five-colour palette from a base colour",
		Long:  "Derive a five-colour palette. Strategies: analogous, monochromatic, complementary, triadic, tetradic.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, root.app, colorOpts, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Palette strategy (default from config)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the palette as JSON")

	return cmd
}

func runPalette(cmd *cobra.Command, app *AppContext, colorOpts *colorOptions, opts *paletteOptions, args []string) error {
	raw := app.Config.Palette.Base
	if len(args) == 1 {
		raw = args[0]
	}

	base, err := colorOpts.resolveHex(raw)
	if err != nil {
		return newCommandError("generate palette", "parsing base colour "+raw, err, hexSuggestion)
	}

	strategy := app.Config.Strategy()
	if opts.strategy != "" {
		parsed, ok := colormath.ParseStrategy(opts.strategy)
		if !ok {
			err := devtoolserrors.NewInputError(devtoolserrors.InputStrategy, opts.strategy, "unknown strategy")
			return newCommandError("generate palette", "selecting strategy", err, "Use analogous, monochromatic, complementary, triadic or tetradic.")
		}
		strategy = parsed
	}

	palette, ok := colormath.GeneratePalette(base, strategy)
	if !ok {
		err := devtoolserrors.NewInputError(devtoolserrors.InputColor, base, "palette could not be derived")
		return newCommandError("generate palette", "deriving colours", err, hexSuggestion)
	}

	app.Logger.Debug("palette generated", logger.Fields{"base": base, "strategy": strategy.String()})

	if opts.jsonOutput {
		payload := paletteJSONPayload{Base: base, Strategy: strategy.String(), Colors: make([]paletteColor, 0, len(palette))}
		for _, hex := range palette {
			rgb, _ := colormath.ParseHex(hex)
			payload.Colors = append(payload.Colors, paletteColor{Hex: hex, RGB: rgb, HSL: colormath.RGBToHSL(rgb)})
		}
		return writeJSON(cmd.OutOrStdout(), payload)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPalette(strategy, palette, supportsColor(cmd.OutOrStdout())))
	return nil
}

type randomOptions struct {
	seed  uint64
	count int
}

func newColorRandomCmd() *cobra.Command {
	opts := &randomOptions{}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random hex colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 1 {
				err := devtoolserrors.NewInputError(devtoolserrors.InputMagnitude, fmt.Sprint(opts.count), "count must be at least 1")
				return newCommandError("generate colours", "validating --count", err, "Pass a positive --count.")
			}

			var src *rand.Rand
			if cmd.Flags().Changed("seed") {
				src = rand.New(rand.NewPCG(opts.seed, opts.seed))
			}
			for i := 0; i < opts.count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), colormath.RandomHex(src))
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of colours")

	return cmd
}

type shadeOptions struct {
	intensity float64
}

func newColorShadeCmd(colorOpts *colorOptions) *cobra.Command {
	opts := &shadeOptions{}

	cmd := &cobra.Command{
		Use:   "shade <hex>",
		Short: "Print the dark and light shadow colours for a soft-UI surface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colorOpts.resolveHex(args[0])
			if err != nil {
				return newCommandError("shade colour", "parsing "+args[0], err, hexSuggestion)
			}
			if !(opts.intensity >= 0 && opts.intensity <= 1) {
				err := devtoolserrors.NewInputError(devtoolserrors.InputMagnitude, fmt.Sprint(opts.intensity), "intensity must be within [0, 1]")
				return newCommandError("shade colour", "validating --intensity", err, "Pass an --intensity between 0 and 1.")
			}

			dark, light, _ := colormath.ShadePair(hex, opts.intensity)
			fmt.Fprintf(cmd.OutOrStdout(), "dark:  %s\nlight: %s\n", dark, light)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.intensity, "intensity", 0.15, "Shadow intensity between 0 and 1")

	return cmd
}
