package sexp

import (
	"fmt"

	"github.com/oxur/oxur-ast/internal/position"
)

// TokenType represents the lexical category of a token.
type TokenType int

// Token types of the S-expression grammar.
const (
	TokenEOF TokenType = iota
	TokenLParen
	TokenRParen
	TokenSymbol
	TokenKeyword
	TokenString
	TokenNumber
	TokenNil
)

// tokenNames provides string representations for token types.
var tokenNames = map[TokenType]string{
	TokenEOF:     "EOF",
	TokenLParen:  "LPAREN",
	TokenRParen:  "RPAREN",
	TokenSymbol:  "SYMBOL",
	TokenKeyword: "KEYWORD",
	TokenString:  "STRING",
	TokenNumber:  "NUMBER",
	TokenNil:     "NIL",
}

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token represents a lexical token with position information. For string
// tokens the literal holds the unescaped value; for keywords it holds the
// name without the leading ':'.
type Token struct {
	Type    TokenType
	Literal string
	Pos     position.Position
}

// String returns a string representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Pos: %s}", t.Type, t.Literal, t.Pos)
}
