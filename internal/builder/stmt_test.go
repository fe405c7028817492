package builder

import (
	"testing"

	"github.com/oxur/oxur-ast/internal/ast"
)

func TestBuildStmtKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(ast.StmtKind) bool
	}{
		{
			"semi with keyword expr",
			`(Stmt :kind (Semi :expr (Expr :kind (Lit :kind (Int :value 1)))))`,
			func(k ast.StmtKind) bool {
				semi, ok := k.(*ast.SemiStmt)
				return ok && semi.Expr != nil
			},
		},
		{
			"expr with keyword expr",
			`(Stmt :kind (Expr :expr (Expr :kind (Lit :kind (Int :value 2)))))`,
			func(k ast.StmtKind) bool {
				expr, ok := k.(*ast.ExprStmt)
				return ok && expr.Expr != nil
			},
		},
		{
			"semi with positional expr",
			`(Stmt :kind (Semi (Expr :kind (Lit :kind (Int :value 3)))))`,
			func(k ast.StmtKind) bool {
				semi, ok := k.(*ast.SemiStmt)
				return ok && semi.Expr != nil
			},
		},
		{
			"empty",
			`(Stmt :kind (Empty))`,
			func(k ast.StmtKind) bool {
				_, ok := k.(*ast.EmptyStmt)
				return ok
			},
		},
	}

	for _, tt := range tests {
		stmt, err := New().BuildStmt(mustParse(t, tt.input))
		if err != nil {
			t.Fatalf("%s: BuildStmt() error: %v", tt.name, err)
		}
		if !tt.check(stmt.Kind) {
			t.Errorf("%s: kind = %T, check failed", tt.name, stmt.Kind)
		}
	}
}

func TestBuildStmtSpanAndID(t *testing.T) {
	stmt, err := New().BuildStmt(mustParse(t, `(Stmt :kind (Empty) :span (Span :lo 5 :hi 6) :id 9)`))
	if err != nil {
		t.Fatalf("BuildStmt() error: %v", err)
	}
	if stmt.Span != ast.NewSpan(5, 6) {
		t.Errorf("span = %+v, want {5 6 0}", stmt.Span)
	}
	if stmt.ID != 9 {
		t.Errorf("id = %d, want 9", stmt.ID)
	}
}

func TestBuildStmtMissingKind(t *testing.T) {
	perr := expectedError(t, errOf(New().BuildStmt(mustParse(t, `(Stmt)`))))
	if perr.Expected != ":kind field" || perr.Found != "missing" {
		t.Errorf("error = %v, want missing :kind field", perr)
	}
}

func TestBuildStmtUnknownKind(t *testing.T) {
	perr := expectedError(t, errOf(New().BuildStmt(mustParse(t, `(Stmt :kind (Let))`))))
	if perr.Expected != "Semi, Expr, or Empty" || perr.Found != "Let" {
		t.Errorf("error = %v, want the statement tag set", perr)
	}
}

func TestBuildStmtSemiMissingExpr(t *testing.T) {
	perr := expectedError(t, errOf(New().BuildStmt(mustParse(t, `(Stmt :kind (Semi))`))))
	if perr.Expected != "expression" || perr.Found != "missing" {
		t.Errorf("error = %v, want missing expression", perr)
	}
}
