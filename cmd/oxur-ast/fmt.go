package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxur/oxur-ast/internal/sexp"
)

var (
	fmtWrite  bool
	fmtIndent int
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a source file through a parse/print round trip",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place instead of printing")
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", 0, "Indent width (overrides config)")
}

func runFmt(cmd *cobra.Command, args []string) error {
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
	if fmtIndent > 0 {
		indent = fmtIndent
	}
	formatted := sexp.NewPrinterIndent(indent).Print(exp) + "\n"

	if fmtWrite {
		if string(data) == formatted {
			return nil
		}
		return os.WriteFile(path, []byte(formatted), 0o644)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatted)
	return nil
}
