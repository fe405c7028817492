package ast

import "testing"

func TestSpanDefaults(t *testing.T) {
	if !DummySpan.IsDummy() {
		t.Errorf("DummySpan.IsDummy() = false")
	}
	if !DummySpan.IsWellFormed() {
		t.Errorf("DummySpan.IsWellFormed() = false")
	}

	s := NewSpan(3, 9)
	if s.IsDummy() {
		t.Errorf("NewSpan(3, 9).IsDummy() = true")
	}
	if !s.IsWellFormed() {
		t.Errorf("NewSpan(3, 9).IsWellFormed() = false")
	}
	if s.Ctxt != 0 {
		t.Errorf("NewSpan ctxt = %d, want 0", s.Ctxt)
	}

	bad := Span{Lo: 9, Hi: 3}
	if bad.IsWellFormed() {
		t.Errorf("inverted span reported well-formed")
	}
}

func TestDummyNodeID(t *testing.T) {
	if DummyNodeID == 0 {
		t.Errorf("dummy id must not collide with the first auto-assigned id")
	}
	seg := SegmentFromIdent(Ident{Name: "x"})
	if seg.ID != DummyNodeID {
		t.Errorf("SegmentFromIdent id = %d, want dummy", seg.ID)
	}
}

func TestPathFromIdent(t *testing.T) {
	ident := Ident{Name: "std", Span: NewSpan(0, 3)}
	p := PathFromIdent(ident)

	if len(p.Segments) != 1 {
		t.Fatalf("segment count = %d, want 1", len(p.Segments))
	}
	if p.Segments[0].Ident.Name != "std" {
		t.Errorf("segment name = %q, want %q", p.Segments[0].Ident.Name, "std")
	}
	if p.Span != ident.Span {
		t.Errorf("path span = %+v, want identifier span", p.Span)
	}
}

func TestTaggedUnionsAreClosedOverMarkers(t *testing.T) {
	// Compile-time checks that each variant satisfies its union.
	var _ ItemKind = (*FnItem)(nil)
	var _ ExprKind = (*MacCallExpr)(nil)
	var _ ExprKind = (*LitExpr)(nil)
	var _ ExprKind = (*PathExpr)(nil)
	var _ StmtKind = (*SemiStmt)(nil)
	var _ StmtKind = (*ExprStmt)(nil)
	var _ StmtKind = (*EmptyStmt)(nil)
	var _ MacArgs = (*MacArgsEmpty)(nil)
	var _ MacArgs = (*MacArgsDelimited)(nil)
	var _ LitKind = (*StrLit)(nil)
	var _ LitKind = (*IntLit)(nil)
	var _ TyKind = (*PathTy)(nil)
	var _ PatKind = (*IdentPat)(nil)
	var _ FnRetTy = (*RetDefault)(nil)
	var _ FnRetTy = (*RetTy)(nil)
	var _ TokenStream = (*SourceStream)(nil)
	var _ TokenStream = (*EmptyStream)(nil)
}
