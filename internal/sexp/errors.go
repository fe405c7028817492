package sexp

import (
	"fmt"

	"github.com/oxur/oxur-ast/internal/position"
)

// LexErrorKind classifies lexical failures.
type LexErrorKind int

// Lexical error kinds.
const (
	LexUnexpectedChar LexErrorKind = iota
	LexUnterminatedString
	LexInvalidEscape
	LexUnexpectedEOF
)

// LexError represents a character-level failure during tokenization.
type LexError struct {
	Kind LexErrorKind
	Ch   rune              // offending character, when applicable
	Pos  position.Position // where the failure occurred
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexUnexpectedChar:
		return fmt.Sprintf("unexpected character %q at %s", e.Ch, e.Pos)
	case LexUnterminatedString:
		return fmt.Sprintf("unterminated string at %s", e.Pos)
	case LexInvalidEscape:
		return fmt.Sprintf("invalid escape sequence '\\%c' at %s", e.Ch, e.Pos)
	case LexUnexpectedEOF:
		return "unexpected end of input"
	default:
		return fmt.Sprintf("lex error (%d) at %s", int(e.Kind), e.Pos)
	}
}

// ParseErrorKind classifies syntactic and schema failures. The builder
// reuses this taxonomy for every schema-validation failure.
type ParseErrorKind int

// Parse error kinds.
const (
	ErrUnexpectedToken ParseErrorKind = iota
	ErrExpected
	ErrUnterminatedList
	ErrUnexpectedCloseParen
	ErrEmptyInput
	ErrDepthExceeded
	ErrLex
)

// ParseError represents a structural or schema failure. The first error
// encountered aborts the whole operation; there is no accumulation.
type ParseError struct {
	Kind     ParseErrorKind
	Token    string            // offending token text, for ErrUnexpectedToken
	Expected string            // for ErrExpected
	Found    string            // for ErrExpected
	Pos      position.Position // absent for ErrEmptyInput
	Lex      *LexError         // underlying lexical error, for ErrLex
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("unexpected token %q at %s", e.Token, e.Pos)
	case ErrExpected:
		return fmt.Sprintf("expected %s, found %s at %s", e.Expected, e.Found, e.Pos)
	case ErrUnterminatedList:
		return fmt.Sprintf("unterminated list at %s", e.Pos)
	case ErrUnexpectedCloseParen:
		return fmt.Sprintf("unexpected closing parenthesis at %s", e.Pos)
	case ErrEmptyInput:
		return "empty input"
	case ErrDepthExceeded:
		return fmt.Sprintf("nesting too deep at %s", e.Pos)
	case ErrLex:
		return fmt.Sprintf("lexer error: %s", e.Lex)
	default:
		return fmt.Sprintf("parse error (%d) at %s", int(e.Kind), e.Pos)
	}
}

// Unwrap exposes the wrapped lexical error for errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	if e.Lex != nil {
		return e.Lex
	}
	return nil
}

// NewExpected creates the expected/found error used for every schema
// validation failure.
func NewExpected(expected, found string, pos position.Position) *ParseError {
	return &ParseError{Kind: ErrExpected, Expected: expected, Found: found, Pos: pos}
}
