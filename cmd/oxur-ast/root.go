package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oxur/oxur-ast/internal/config"
)

var (
	configPath string
	noColor    bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "oxur-ast",
	Short: "S-expression front end for the oxur AST",
	Long: `oxur-ast parses S-expression source into a strongly typed AST.

It reads textual S-expressions, checks them against the current schema
phase, and builds the typed crate representation used by later stages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		if noColor || !cfg.Color {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
