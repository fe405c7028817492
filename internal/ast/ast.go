// Package ast defines the typed abstract syntax tree produced by the
// builder. The node kinds mirror a Rust compiler's internal AST; only the
// phase-1 subset of variants is populated. Ownership is strictly top-down
// from the Crate root: no back-references, no shared mutable nodes.
package ast

import "math"

// NodeID is an opaque per-node identifier, either taken from source text
// or auto-assigned by the builder's session counter.
type NodeID uint32

// DummyNodeID is the reserved sentinel for an unassigned id.
const DummyNodeID NodeID = math.MaxUint32

// Span is a source byte range plus a hygiene context tag.
type Span struct {
	Lo   uint32
	Hi   uint32
	Ctxt uint32
}

// DummySpan is the default substituted for an absent span field.
var DummySpan = Span{}

// NewSpan creates a span with the root context.
func NewSpan(lo, hi uint32) Span {
	return Span{Lo: lo, Hi: hi}
}

// IsDummy reports whether the span is the dummy span.
func (s Span) IsDummy() bool {
	return s == DummySpan
}

// IsWellFormed reports whether the span is a valid lo <= hi range.
func (s Span) IsWellFormed() bool {
	return s.Lo <= s.Hi
}

// ModSpans carries the spans of a module-like container.
type ModSpans struct {
	InnerSpan     Span
	InjectUseSpan Span
}

// DelSpan carries the open/close delimiter spans of macro arguments.
type DelSpan struct {
	Open  Span
	Close Span
}

// Ident is a name plus the span it was written at.
type Ident struct {
	Name string
	Span Span
}

// Attribute is a placeholder in phase 1; attribute payloads are not yet
// modeled.
type Attribute struct{}

// TokenStream is the raw token payload of macro arguments.
type TokenStream interface {
	tokenStreamNode()
}

// SourceStream is a token stream captured as raw source text.
type SourceStream struct {
	Source string
}

// EmptyStream is the empty token stream.
type EmptyStream struct{}

func (*SourceStream) tokenStreamNode() {}
func (*EmptyStream) tokenStreamNode()  {}

// Crate is the root of the AST: a compilation unit owning an ordered
// sequence of items.
type Crate struct {
	Attrs []Attribute
	Items []*Item
	Spans ModSpans
	ID    NodeID
}

// NewCrate creates a crate with no attributes.
func NewCrate(items []*Item, spans ModSpans, id NodeID) *Crate {
	return &Crate{Items: items, Spans: spans, ID: id}
}
