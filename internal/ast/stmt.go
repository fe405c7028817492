package ast

// Stmt is a statement node.
type Stmt struct {
	ID   NodeID
	Kind StmtKind
	Span Span
}

// StmtKind is the tagged payload of a statement. Phase 1 populates the
// expression (with and without trailing separator) and empty variants.
type StmtKind interface {
	stmtKindNode()
}

// SemiStmt is an expression statement with a trailing separator.
type SemiStmt struct {
	Expr *Expr
}

// ExprStmt is an expression statement without a trailing separator.
type ExprStmt struct {
	Expr *Expr
}

// EmptyStmt is a bare separator.
type EmptyStmt struct{}

func (*SemiStmt) stmtKindNode()  {}
func (*ExprStmt) stmtKindNode()  {}
func (*EmptyStmt) stmtKindNode() {}
