package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devtools/internal/config"
	"github.com/alexisbeaulieu97/devtools/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string

	app *AppContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "devtools",
		Short:         "Colour, CSS unit, text case and SVG helpers for front-end work",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.prepare(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default ~/.config/devtools/config.yaml)")

	cmd.AddCommand(newColorCmd(flags))
	cmd.AddCommand(newUnitsCmd(flags))
	cmd.AddCommand(newTextCmd(flags))
	cmd.AddCommand(newSVGCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// prepare loads configuration and builds the logger shared by subcommands.
func (f *rootFlags) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return newCommandError("load configuration", f.configPathOrDefault(), err, "Fix the reported field or remove the file to use defaults.")
	}

	level := cfg.Log.Level
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.HumanReadableLogs(),
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return newCommandError("create logger", "configuring log level "+level, err, "Use one of: debug, info, warn, error.")
	}

	f.app = &AppContext{Config: cfg, Logger: log}
	log.Debug("configuration loaded", logger.Fields{"path": f.configPathOrDefault()})
	return nil
}

func (f *rootFlags) configPathOrDefault() string {
	if f.configPath != "" {
		return f.configPath
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "(default)"
	}
	return path
}
