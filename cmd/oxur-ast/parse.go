package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxur/oxur-ast/internal/sexp"
)

var parseIndent int

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and dump the S-expression tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().IntVar(&parseIndent, "indent", 0, "Indent width (overrides config)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	exp, err := sexp.ParseString(string(data))
	if err != nil {
		return inFile(path, err)
	}

	indent := cfg.Indent
	if parseIndent > 0 {
		indent = parseIndent
	}
	fmt.Fprintln(cmd.OutOrStdout(), sexp.NewPrinterIndent(indent).Print(exp))
	return nil
}
