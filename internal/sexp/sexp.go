package sexp

import "github.com/oxur/oxur-ast/internal/position"

// SExp represents a node of the generic, untyped parse tree. The tree is
// strict: every node owns its children exclusively, and it is never
// mutated after parsing.
type SExp interface {
	// Pos returns the source position of the node. For lists this is
	// the position of the opening parenthesis.
	Pos() position.Position
	// Equal reports structural equality, including positions.
	Equal(other SExp) bool
	// Clone returns a deep structural copy, including positions.
	Clone() SExp

	sexpNode()
}

// Symbol is a bare identifier-like atom.
type Symbol struct {
	Value    string
	Position position.Position
}

// Keyword is a ':'-introduced field marker; Name excludes the marker.
type Keyword struct {
	Name     string
	Position position.Position
}

// String is a string literal; Value holds the unescaped text.
type String struct {
	Value    string
	Position position.Position
}

// Number is a numeric literal; Value keeps the literal text verbatim.
type Number struct {
	Value    string
	Position position.Position
}

// Nil is the explicit-absence marker.
type Nil struct {
	Position position.Position
}

// List is an ordered sequence of child nodes.
type List struct {
	Elements []SExp
	Position position.Position
}

func (s *Symbol) sexpNode()  {}
func (k *Keyword) sexpNode() {}
func (s *String) sexpNode()  {}
func (n *Number) sexpNode()  {}
func (n *Nil) sexpNode()     {}
func (l *List) sexpNode()    {}

func (s *Symbol) Pos() position.Position  { return s.Position }
func (k *Keyword) Pos() position.Position { return k.Position }
func (s *String) Pos() position.Position  { return s.Position }
func (n *Number) Pos() position.Position  { return n.Position }
func (n *Nil) Pos() position.Position     { return n.Position }
func (l *List) Pos() position.Position    { return l.Position }

func (s *Symbol) Equal(other SExp) bool {
	o, ok := other.(*Symbol)
	return ok && s.Value == o.Value && s.Position == o.Position
}

func (k *Keyword) Equal(other SExp) bool {
	o, ok := other.(*Keyword)
	return ok && k.Name == o.Name && k.Position == o.Position
}

func (s *String) Equal(other SExp) bool {
	o, ok := other.(*String)
	return ok && s.Value == o.Value && s.Position == o.Position
}

func (n *Number) Equal(other SExp) bool {
	o, ok := other.(*Number)
	return ok && n.Value == o.Value && n.Position == o.Position
}

func (n *Nil) Equal(other SExp) bool {
	o, ok := other.(*Nil)
	return ok && n.Position == o.Position
}

func (l *List) Equal(other SExp) bool {
	o, ok := other.(*List)
	if !ok || l.Position != o.Position || len(l.Elements) != len(o.Elements) {
		return false
	}
	for i, e := range l.Elements {
		if !e.Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

func (s *Symbol) Clone() SExp  { c := *s; return &c }
func (k *Keyword) Clone() SExp { c := *k; return &c }
func (s *String) Clone() SExp  { c := *s; return &c }
func (n *Number) Clone() SExp  { c := *n; return &c }
func (n *Nil) Clone() SExp     { c := *n; return &c }

func (l *List) Clone() SExp {
	elements := make([]SExp, len(l.Elements))
	for i, e := range l.Elements {
		elements[i] = e.Clone()
	}
	return &List{Elements: elements, Position: l.Position}
}

// KindName returns the node kind as used in diagnostics.
func KindName(s SExp) string {
	switch s.(type) {
	case *Symbol:
		return "symbol"
	case *Keyword:
		return "keyword"
	case *String:
		return "string"
	case *Number:
		return "number"
	case *Nil:
		return "nil"
	case *List:
		return "list"
	default:
		return "unknown"
	}
}
