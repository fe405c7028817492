// Package position provides source position tracking for the oxur-ast
// front end. Positions are produced once by the lexer and copied onto
// tokens, parse-tree nodes, and errors for precise diagnostics.
package position

import "fmt"

// Position represents a single point in source text.
type Position struct {
	Offset int // 0-based byte offset in source
	Line   int // 1-based line number
	Column int // 1-based column number
}

// New creates a position from its components.
func New(offset, line, column int) Position {
	return Position{Offset: offset, Line: line, Column: column}
}

// IsValid returns true if the position is valid.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Before returns true if this position comes before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After returns true if this position comes after other.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}
