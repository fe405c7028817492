// Package sexp implements the S-expression front end: lexer, generic
// parse tree, recursive descent parser, and printer. The tree produced
// here is untyped; the builder package converts it into the typed AST.
package sexp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oxur/oxur-ast/internal/position"
)

// Lexer converts raw source text into a sequence of positioned tokens.
type Lexer struct {
	input  string
	offset int // byte offset of the current rune
	line   int
	column int
}

// NewLexer creates a lexer over the given input text.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Tokenize consumes the entire input and returns its tokens. The returned
// slice always ends with an EOF token. On failure the first lexical error
// is returned and no tokens are produced.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		l.skipWhitespaceAndComments()

		if l.atEnd() {
			tokens = append(tokens, Token{Type: TokenEOF, Pos: l.pos()})
			return tokens, nil
		}

		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) nextToken() (Token, error) {
	ch, ok := l.current()
	if !ok {
		return Token{}, &LexError{Kind: LexUnexpectedEOF, Pos: l.pos()}
	}
	pos := l.pos()

	switch {
	case ch == '(':
		l.advance()
		return Token{Type: TokenLParen, Literal: "(", Pos: pos}, nil
	case ch == ')':
		l.advance()
		return Token{Type: TokenRParen, Literal: ")", Pos: pos}, nil
	case ch == ':':
		return l.readKeyword(), nil
	case ch == '"':
		return l.readString()
	case isDigit(ch) || (ch == '-' && isDigit(l.peek())):
		return l.readNumber(), nil
	case isSymbolStart(ch):
		return l.readSymbol(), nil
	default:
		return Token{}, &LexError{Kind: LexUnexpectedChar, Ch: ch, Pos: pos}
	}
}

// readKeyword reads a ':'-introduced keyword; the literal holds the name
// without the marker.
func (l *Lexer) readKeyword() Token {
	pos := l.pos()
	l.advance() // skip ':'

	start := l.offset
	for {
		ch, ok := l.current()
		if !ok || !isSymbolChar(ch) {
			break
		}
		l.advance()
	}

	return Token{Type: TokenKeyword, Literal: l.input[start:l.offset], Pos: pos}
}

// readString reads a double-quoted string, resolving the recognized
// escape sequences. The literal holds the unescaped value.
func (l *Lexer) readString() (Token, error) {
	pos := l.pos()
	l.advance() // skip opening '"'

	var value strings.Builder

	for {
		ch, ok := l.current()
		if !ok {
			return Token{}, &LexError{Kind: LexUnterminatedString, Pos: pos}
		}

		switch ch {
		case '"':
			l.advance()
			return Token{Type: TokenString, Literal: value.String(), Pos: pos}, nil
		case '\\':
			l.advance()
			esc, ok := l.current()
			if !ok {
				return Token{}, &LexError{Kind: LexUnterminatedString, Pos: pos}
			}
			switch esc {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			case '\\':
				value.WriteByte('\\')
			case '"':
				value.WriteByte('"')
			default:
				return Token{}, &LexError{Kind: LexInvalidEscape, Ch: esc, Pos: l.pos()}
			}
			l.advance()
		default:
			value.WriteRune(ch)
			l.advance()
		}
	}
}

// readNumber reads an optional minus sign followed by a run of digits.
// The literal text is kept verbatim for later interpretation.
func (l *Lexer) readNumber() Token {
	pos := l.pos()
	start := l.offset

	if ch, _ := l.current(); ch == '-' {
		l.advance()
	}
	for {
		ch, ok := l.current()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}

	return Token{Type: TokenNumber, Literal: l.input[start:l.offset], Pos: pos}
}

// readSymbol reads a maximal run of symbol characters. The standalone
// text "nil" is emitted as a Nil token rather than a Symbol.
func (l *Lexer) readSymbol() Token {
	pos := l.pos()
	start := l.offset

	for {
		ch, ok := l.current()
		if !ok || !isSymbolChar(ch) {
			break
		}
		l.advance()
	}

	lexeme := l.input[start:l.offset]
	typ := TokenSymbol
	if lexeme == "nil" {
		typ = TokenNil
	}

	return Token{Type: typ, Literal: lexeme, Pos: pos}
}

// skipWhitespaceAndComments skips whitespace and ';' line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		ch, ok := l.current()
		if !ok {
			return
		}
		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case ch == ';':
			for {
				ch, ok := l.current()
				if !ok {
					return
				}
				l.advance()
				if ch == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

func (l *Lexer) current() (rune, bool) {
	if l.offset >= len(l.input) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return ch, true
}

func (l *Lexer) peek() rune {
	_, size := utf8.DecodeRuneInString(l.input[l.offset:])
	if size == 0 {
		return 0
	}
	next, _ := utf8.DecodeRuneInString(l.input[l.offset+size:])
	return next
}

func (l *Lexer) advance() {
	ch, ok := l.current()
	if !ok {
		return
	}
	l.offset += utf8.RuneLen(ch)

	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

func (l *Lexer) atEnd() bool {
	return l.offset >= len(l.input)
}

func (l *Lexer) pos() position.Position {
	return position.New(l.offset, l.line, l.column)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSymbolStart(ch rune) bool {
	return unicode.IsLetter(ch) || strings.ContainsRune("_-+*/=<>!?&", ch)
}

func isSymbolChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) ||
		strings.ContainsRune("_-+*/=<>!?&'", ch)
}
