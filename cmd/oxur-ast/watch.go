package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oxur/oxur-ast/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Rebuild the crate whenever the source file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	w, err := watch.New()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: editors often replace the file on save,
	// which unregisters a direct file watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	rebuild := func() {
		crate, err := buildFile(path)
		if err != nil {
			printDiag(cmd.ErrOrStderr(), inFile(args[0], err))
			return
		}
		color.New(color.FgGreen).Fprint(cmd.OutOrStdout(), "ok ")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: crate %d, %d item(s)\n", args[0], crate.ID, len(crate.Items))
	}

	rebuild()
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			if ev.Path == path && (ev.Op.Has(watch.OpWrite) || ev.Op.Has(watch.OpCreate)) {
				rebuild()
			}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			printDiag(cmd.ErrOrStderr(), err)
		}
	}
}
