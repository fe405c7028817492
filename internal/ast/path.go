package ast

// Path is a (possibly multi-segment) reference to an item.
type Path struct {
	Span     Span
	Segments []*PathSegment
}

// PathFromIdent creates a single-segment path from an identifier.
func PathFromIdent(ident Ident) *Path {
	return &Path{
		Span:     ident.Span,
		Segments: []*PathSegment{SegmentFromIdent(ident)},
	}
}

// PathSegment is one segment of a path: an identifier plus optional
// generic arguments.
type PathSegment struct {
	Ident Ident
	ID    NodeID
	Args  *GenericArgs
}

// SegmentFromIdent creates a segment with a dummy id and no arguments.
func SegmentFromIdent(ident Ident) *PathSegment {
	return &PathSegment{Ident: ident, ID: DummyNodeID}
}
