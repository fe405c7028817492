package builder

import (
	"github.com/oxur/oxur-ast/internal/ast"
	"github.com/oxur/oxur-ast/internal/schema"
	"github.com/oxur/oxur-ast/internal/sexp"
)

// BuildStmt builds a statement from a (Stmt :kind ...) list.
func (b *AstBuilder) BuildStmt(s sexp.SExp) (*ast.Stmt, error) {
	list, err := expectTagged(s, "Stmt")
	if err != nil {
		return nil, err
	}
	if err := b.push(list.Position); err != nil {
		return nil, err
	}
	defer b.pop()

	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	kindExp, ok := kwargs["kind"]
	if !ok {
		return nil, missingField("kind", list)
	}
	kind, err := b.buildStmtKind(kindExp)
	if err != nil {
		return nil, err
	}

	span, err := b.spanField(kwargs)
	if err != nil {
		return nil, err
	}
	id, err := b.idField(kwargs)
	if err != nil {
		return nil, err
	}

	return &ast.Stmt{ID: id, Kind: kind, Span: span}, nil
}

func (b *AstBuilder) buildStmtKind(s sexp.SExp) (ast.StmtKind, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	switch sym.Value {
	case "Semi":
		expr, err := b.stmtExpr(list)
		if err != nil {
			return nil, err
		}
		return &ast.SemiStmt{Expr: expr}, nil
	case "Expr":
		expr, err := b.stmtExpr(list)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr}, nil
	case "Empty":
		return &ast.EmptyStmt{}, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.StmtKinds), sym.Value, sym.Position)
	}
}

// stmtExpr extracts the statement's expression, either from the :expr
// keyword or positionally as the second element.
func (b *AstBuilder) stmtExpr(list *sexp.List) (*ast.Expr, error) {
	kwargs, err := keywordArgs(list)
	if err == nil {
		if exprExp, ok := kwargs["expr"]; ok {
			return b.BuildExpr(exprExp)
		}
	}

	if len(list.Elements) > 1 {
		return b.BuildExpr(list.Elements[1])
	}
	if err != nil {
		return nil, err
	}
	return nil, sexp.NewExpected("expression", "missing", list.Position)
}
