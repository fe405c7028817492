package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oxur/oxur-ast/internal/schema"
)

var (
	version = "dev"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "oxur-ast v%s\n", version)
	fmt.Fprintf(out, "Schema version: %s\n", schema.Version)
	fmt.Fprintf(out, "Commit: %s\n", commit)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	return nil
}
