package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devtools/internal/colormath"
	"github.com/alexisbeaulieu97/devtools/internal/tui"
)

var exploreRunner = runExplore

var errUnknownStrategy = errors.New("unknown palette strategy")

func newExploreCmd(root *rootFlags) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "explore [hex]",
		Short: "Browse palettes interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tui.Options{
				Base:     root.app.Config.Palette.Base,
				Strategy: root.app.Config.Strategy(),
				UseColor: supportsColor(cmd.OutOrStdout()),
				Logger:   root.app.Logger,
			}
			if len(args) == 1 {
				opts.Base = args[0]
			}
			if strategy != "" {
				parsed, ok := colormath.ParseStrategy(strategy)
				if !ok {
					return newCommandError("start explorer", "selecting strategy "+strategy, errUnknownStrategy, "Use analogous, monochromatic, complementary, triadic or tetradic.")
				}
				opts.Strategy = parsed
			}
			return exploreRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "Initial palette strategy")

	return cmd
}

func runExplore(cmd *cobra.Command, opts tui.Options) error {
	program := tea.NewProgram(tui.NewModel(opts), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	_, err := program.Run()
	return err
}
