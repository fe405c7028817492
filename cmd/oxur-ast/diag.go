package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/oxur/oxur-ast/internal/sexp"
)

var (
	errLabel = color.New(color.FgRed, color.Bold)
	posLabel = color.New(color.FgCyan)
)

// sourceError ties a parse or build failure to the file it came from.
type sourceError struct {
	path string
	err  error
}

func (e *sourceError) Error() string { return fmt.Sprintf("%s: %v", e.path, e.err) }
func (e *sourceError) Unwrap() error { return e.err }

func inFile(path string, err error) error {
	if err == nil {
		return nil
	}
	return &sourceError{path: path, err: err}
}

// printDiag writes a position-prefixed diagnostic. Parse errors carry a
// position; everything else falls back to the plain message.
func printDiag(w io.Writer, err error) {
	path := "<input>"
	var src *sourceError
	if errors.As(err, &src) {
		path = src.path
		err = src.err
	}

	var parseErr *sexp.ParseError
	if errors.As(err, &parseErr) {
		pos := parseErr.Pos
		if parseErr.Lex != nil {
			pos = parseErr.Lex.Pos
		}
		posLabel.Fprintf(w, "%s:%d:%d: ", path, pos.Line, pos.Column)
		errLabel.Fprint(w, "error: ")
		fmt.Fprintln(w, parseErr)
		return
	}

	errLabel.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}
