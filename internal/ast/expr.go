package ast

// Expr is an expression node.
type Expr struct {
	ID    NodeID
	Kind  ExprKind
	Span  Span
	Attrs []Attribute
}

// ExprKind is the tagged payload of an expression. Phase 1 populates
// macro calls, literals, and path references.
type ExprKind interface {
	exprKindNode()
}

// MacCallExpr is a macro invocation expression.
type MacCallExpr struct {
	Mac *MacCall
}

// LitExpr is a literal expression.
type LitExpr struct {
	Lit *Lit
}

// PathExpr is a path reference expression.
type PathExpr struct {
	Path *Path
}

func (*MacCallExpr) exprKindNode() {}
func (*LitExpr) exprKindNode()     {}
func (*PathExpr) exprKindNode()    {}

// MacCall is a macro invocation: a path plus delimited arguments.
type MacCall struct {
	Path *Path
	Args MacArgs
}

// MacArgs is the tagged argument payload of a macro call.
type MacArgs interface {
	macArgsNode()
}

// MacArgsEmpty means the macro was invoked without arguments.
type MacArgsEmpty struct{}

// MacArgsDelimited carries delimiter spans, the delimiter kind, and the
// raw token stream between the delimiters.
type MacArgsDelimited struct {
	DSpan  DelSpan
	Delim  Delimiter
	Tokens TokenStream
}

func (*MacArgsEmpty) macArgsNode()     {}
func (*MacArgsDelimited) macArgsNode() {}

// Delimiter of macro arguments.
type Delimiter int

// Delimiter variants.
const (
	DelimParen Delimiter = iota
	DelimBrace
	DelimBracket
	DelimInvisible
)

// String returns the schema tag of the delimiter.
func (d Delimiter) String() string {
	switch d {
	case DelimBrace:
		return "Brace"
	case DelimBracket:
		return "Bracket"
	case DelimInvisible:
		return "Invisible"
	default:
		return "Paren"
	}
}

// Lit is a literal.
type Lit struct {
	Kind LitKind
	Span Span
}

// LitKind is the tagged payload of a literal.
type LitKind interface {
	litKindNode()
}

// StrLit is a string literal.
type StrLit struct {
	Value string
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (*StrLit) litKindNode() {}
func (*IntLit) litKindNode() {}

// Block is an ordered sequence of statements.
type Block struct {
	Stmts []*Stmt
	ID    NodeID
	Rules BlockCheckMode
	Span  Span
}

// NewBlock creates a block with default check rules.
func NewBlock(stmts []*Stmt, id NodeID, span Span) *Block {
	return &Block{Stmts: stmts, ID: id, Span: span}
}

// BlockCheckMode of a block.
type BlockCheckMode int

// Block check modes.
const (
	BlockDefault BlockCheckMode = iota
	BlockUnsafe
)
