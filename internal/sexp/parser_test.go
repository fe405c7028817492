package sexp

import (
	"errors"
	"strings"
	"testing"
)

func parseErrorKind(t *testing.T, err error) ParseErrorKind {
	t.Helper()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	return parseErr.Kind
}

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		input string
		check func(SExp) bool
	}{
		{"foo", func(s SExp) bool { n, ok := s.(*Symbol); return ok && n.Value == "foo" }},
		{":name", func(s SExp) bool { n, ok := s.(*Keyword); return ok && n.Name == "name" }},
		{`"hi"`, func(s SExp) bool { n, ok := s.(*String); return ok && n.Value == "hi" }},
		{"-42", func(s SExp) bool { n, ok := s.(*Number); return ok && n.Value == "-42" }},
		{"nil", func(s SExp) bool { _, ok := s.(*Nil); return ok }},
	}

	for _, tt := range tests {
		exp, err := ParseString(tt.input)
		if err != nil {
			t.Fatalf("ParseString(%q) error: %v", tt.input, err)
		}
		if !tt.check(exp) {
			t.Errorf("ParseString(%q) = %#v, wrong node", tt.input, exp)
		}
	}
}

func TestParseNestedList(t *testing.T) {
	exp, err := ParseString(`(Ident :name "main" (Span :lo 0 :hi 4))`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}

	list, ok := exp.(*List)
	if !ok {
		t.Fatalf("expected *List, got %T", exp)
	}
	if len(list.Elements) != 4 {
		t.Fatalf("element count = %d, want 4", len(list.Elements))
	}

	inner, ok := list.Elements[3].(*List)
	if !ok {
		t.Fatalf("expected nested *List, got %T", list.Elements[3])
	}
	if len(inner.Elements) != 5 {
		t.Errorf("nested element count = %d, want 5", len(inner.Elements))
	}
	if inner.Position.Offset != 20 {
		t.Errorf("nested list position = %d, want 20 (its opening paren)", inner.Position.Offset)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "; only a comment\n"} {
		_, err := ParseString(input)
		if err == nil {
			t.Fatalf("ParseString(%q): expected error, got none", input)
		}
		if kind := parseErrorKind(t, err); kind != ErrEmptyInput {
			t.Errorf("ParseString(%q) kind = %d, want ErrEmptyInput", input, kind)
		}
	}
}

func TestParseUnterminatedList(t *testing.T) {
	_, err := ParseString("(foo")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Kind != ErrUnterminatedList {
		t.Fatalf("kind = %d, want ErrUnterminatedList", parseErr.Kind)
	}
	if parseErr.Pos.Offset != 0 {
		t.Errorf("error offset = %d, want 0 (the opening paren)", parseErr.Pos.Offset)
	}
}

func TestParseUnexpectedCloseParen(t *testing.T) {
	_, err := ParseString(")")
	if kind := parseErrorKind(t, err); kind != ErrUnexpectedCloseParen {
		t.Errorf("kind = %d, want ErrUnexpectedCloseParen", kind)
	}
}

func TestParseStringTrailingTokens(t *testing.T) {
	// The string entry point requires full-input consumption.
	_, err := ParseString("(foo) bar")
	if kind := parseErrorKind(t, err); kind != ErrUnexpectedToken {
		t.Errorf("kind = %d, want ErrUnexpectedToken", kind)
	}

	// Token-level Parse keeps the permissive behavior: the first
	// expression is returned and the remainder is left unconsumed.
	tokens, err := NewLexer("(foo) bar").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	exp, err := NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, ok := exp.(*List); !ok {
		t.Errorf("Parse() = %T, want *List", exp)
	}
}

func TestParseWrapsLexError(t *testing.T) {
	_, err := ParseString(`("abc`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Kind != ErrLex {
		t.Fatalf("kind = %d, want ErrLex", parseErr.Kind)
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("wrapped lex error not reachable via errors.As")
	}
	if lexErr.Kind != LexUnterminatedString {
		t.Errorf("wrapped kind = %d, want LexUnterminatedString", lexErr.Kind)
	}
}

func TestParseDepthLimit(t *testing.T) {
	deep := strings.Repeat("(", maxParseDepth+1) + "x" + strings.Repeat(")", maxParseDepth+1)
	_, err := ParseString(deep)
	if kind := parseErrorKind(t, err); kind != ErrDepthExceeded {
		t.Errorf("kind = %d, want ErrDepthExceeded", kind)
	}

	ok := strings.Repeat("(", 100) + "x" + strings.Repeat(")", 100)
	if _, err := ParseString(ok); err != nil {
		t.Errorf("100-deep nesting should parse, got error: %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	exp, err := ParseString(`(a (b c) "d")`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}

	clone := exp.Clone()
	if !exp.Equal(clone) {
		t.Fatalf("clone not structurally equal to original")
	}

	// Mutating the clone must not affect the original.
	clone.(*List).Elements[1].(*List).Elements[0].(*Symbol).Value = "mutated"
	if exp.Equal(clone) {
		t.Errorf("original changed along with clone; copy is shallow")
	}
}

func TestEqualIncludesPositions(t *testing.T) {
	a, _ := ParseString("(a b)")
	b, _ := ParseString(" (a b)")
	if a.Equal(b) {
		t.Errorf("trees with different positions should not be Equal")
	}
}
