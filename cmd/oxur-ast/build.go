package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxur/oxur-ast/internal/ast"
	"github.com/oxur/oxur-ast/internal/builder"
	"github.com/oxur/oxur-ast/internal/schema"
	"github.com/oxur/oxur-ast/internal/sexp"
)

var (
	buildJSON          bool
	buildRequireSchema string
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Build the typed crate from a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "Print the crate as JSON")
	buildCmd.Flags().StringVar(&buildRequireSchema, "require-schema", "", "Semver constraint the schema version must satisfy")
}

func runBuild(cmd *cobra.Command, args []string) error {
	constraint := cfg.RequireSchema
	if buildRequireSchema != "" {
		constraint = buildRequireSchema
	}
	if constraint != "" {
		if err := schema.Check(constraint); err != nil {
			return err
		}
	}

	path := args[0]
	crate, err := buildFile(path)
	if err != nil {
		return inFile(path, err)
	}

	if buildJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(crate)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "crate %d: %d item(s)\n", crate.ID, len(crate.Items))
	for _, item := range crate.Items {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", item.Vis, item.Ident.Name)
	}
	return nil
}

func buildFile(path string) (*ast.Crate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	exp, err := sexp.ParseString(string(data))
	if err != nil {
		return nil, err
	}
	return builder.New().BuildCrate(exp)
}
