package builder

import (
	"github.com/oxur/oxur-ast/internal/ast"
	"github.com/oxur/oxur-ast/internal/schema"
	"github.com/oxur/oxur-ast/internal/sexp"
)

// BuildBlock builds a statement block from a (Block :stmts (...)) list.
func (b *AstBuilder) BuildBlock(s sexp.SExp) (*ast.Block, error) {
	list, err := expectTagged(s, "Block")
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

	var stmts []*ast.Stmt
	if stmtsExp, ok := kwargs["stmts"]; ok {
		stmtsList, err := expectList(stmtsExp)
		if err != nil {
			return nil, err
		}
		for _, stmtExp := range stmtsList.Elements {
			stmt, err := b.BuildStmt(stmtExp)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}
	}

	span, err := b.spanField(kwargs)
	if err != nil {
		return nil, err
	}
	id, err := b.idField(kwargs)
	if err != nil {
		return nil, err
	}

	return ast.NewBlock(stmts, id, span), nil
}

// BuildExpr builds an expression from an (Expr :kind ...) list.
func (b *AstBuilder) BuildExpr(s sexp.SExp) (*ast.Expr, error) {
	list, err := expectTagged(s, "Expr")
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
	kind, err := b.buildExprKind(kindExp)
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

	return &ast.Expr{ID: id, Kind: kind, Span: span}, nil
}

func (b *AstBuilder) buildExprKind(s sexp.SExp) (ast.ExprKind, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	switch sym.Value {
	case "MacCall":
		mac, err := b.buildMacCall(list)
		if err != nil {
			return nil, err
		}
		return &ast.MacCallExpr{Mac: mac}, nil
	case "Lit":
		lit, err := b.buildLit(list)
		if err != nil {
			return nil, err
		}
		return &ast.LitExpr{Lit: lit}, nil
	case "Path":
		path, err := b.buildPathFields(list)
		if err != nil {
			return nil, err
		}
		return &ast.PathExpr{Path: path}, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.ExprKinds), sym.Value, sym.Position)
	}
}

// buildMacCall parses the fields of a (MacCall :path ... :args ...) list.
func (b *AstBuilder) buildMacCall(list *sexp.List) (*ast.MacCall, error) {
	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	pathExp, ok := kwargs["path"]
	if !ok {
		return nil, missingField("path", list)
	}
	path, err := b.BuildPath(pathExp)
	if err != nil {
		return nil, err
	}

	var args ast.MacArgs = &ast.MacArgsEmpty{}
	if argsExp, ok := kwargs["args"]; ok && !isNil(argsExp) {
		args, err = b.buildMacArgs(argsExp)
		if err != nil {
			return nil, err
		}
	}

	return &ast.MacCall{Path: path, Args: args}, nil
}

// buildLit parses the fields of a (Lit :kind (Str :value "...")) list.
func (b *AstBuilder) buildLit(list *sexp.List) (*ast.Lit, error) {
	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	kindExp, ok := kwargs["kind"]
	if !ok {
		return nil, missingField("kind", list)
	}
	kind, err := b.buildLitKind(kindExp)
	if err != nil {
		return nil, err
	}

	span, err := b.spanField(kwargs)
	if err != nil {
		return nil, err
	}

	return &ast.Lit{Kind: kind, Span: span}, nil
}

func (b *AstBuilder) buildLitKind(s sexp.SExp) (ast.LitKind, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}
	valueExp, ok := kwargs["value"]
	if !ok {
		return nil, missingField("value", list)
	}

	switch sym.Value {
	case "Str":
		value, err := expectString(valueExp)
		if err != nil {
			return nil, err
		}
		return &ast.StrLit{Value: value}, nil
	case "Int":
		value, err := expectNumber(valueExp)
		if err != nil {
			return nil, err
		}
		return &ast.IntLit{Value: value}, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.LitKinds), sym.Value, sym.Position)
	}
}

// BuildPath builds a path from a (Path :segments (...)) list.
func (b *AstBuilder) BuildPath(s sexp.SExp) (*ast.Path, error) {
	list, err := expectTagged(s, "Path")
	if err != nil {
		return nil, err
	}
	return b.buildPathFields(list)
}

// buildPathFields parses the fields of an already tag-checked Path list.
// Shared by BuildPath, path expressions, and path types.
func (b *AstBuilder) buildPathFields(list *sexp.List) (*ast.Path, error) {
	if err := b.push(list.Position); err != nil {
		return nil, err
	}
	defer b.pop()

	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	var segments []*ast.PathSegment
	if segmentsExp, ok := kwargs["segments"]; ok {
		segmentsList, err := expectList(segmentsExp)
		if err != nil {
			return nil, err
		}
		for _, segExp := range segmentsList.Elements {
			seg, err := b.buildPathSegment(segExp)
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
		}
	}

	span, err := b.spanField(kwargs)
	if err != nil {
		return nil, err
	}

	return &ast.Path{Span: span, Segments: segments}, nil
}

func (b *AstBuilder) buildPathSegment(s sexp.SExp) (*ast.PathSegment, error) {
	list, err := expectTagged(s, "PathSegment")
	if err != nil {
		return nil, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	identExp, ok := kwargs["ident"]
	if !ok {
		return nil, missingField("ident", list)
	}
	ident, err := b.BuildIdent(identExp)
	if err != nil {
		return nil, err
	}

	id, err := b.idField(kwargs)
	if err != nil {
		return nil, err
	}

	return &ast.PathSegment{Ident: ident, ID: id}, nil
}

func (b *AstBuilder) buildMacArgs(s sexp.SExp) (ast.MacArgs, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	switch sym.Value {
	case "Empty":
		return &ast.MacArgsEmpty{}, nil
	case "Delimited":
		kwargs, err := keywordArgs(list)
		if err != nil {
			return nil, err
		}

		dspan := ast.DelSpan{}
		if dspanExp, ok := kwargs["dspan"]; ok {
			dspan, err = b.buildDelSpan(dspanExp)
			if err != nil {
				return nil, err
			}
		}

		delim := ast.DelimParen
		if delimExp, ok := kwargs["delim"]; ok {
			delim, err = b.buildDelimiter(delimExp)
			if err != nil {
				return nil, err
			}
		}

		var tokens ast.TokenStream = &ast.EmptyStream{}
		if tokensExp, ok := kwargs["tokens"]; ok {
			tokens, err = b.buildTokenStream(tokensExp)
			if err != nil {
				return nil, err
			}
		}

		return &ast.MacArgsDelimited{DSpan: dspan, Delim: delim, Tokens: tokens}, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.MacArgsKinds), sym.Value, sym.Position)
	}
}

func (b *AstBuilder) buildDelSpan(s sexp.SExp) (ast.DelSpan, error) {
	list, err := expectTagged(s, "DelSpan")
	if err != nil {
		return ast.DelSpan{}, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return ast.DelSpan{}, err
	}

	dspan := ast.DelSpan{Open: ast.DummySpan, Close: ast.DummySpan}
	if openExp, ok := kwargs["open"]; ok {
		dspan.Open, err = b.BuildSpan(openExp)
		if err != nil {
			return ast.DelSpan{}, err
		}
	}
	if closeExp, ok := kwargs["close"]; ok {
		dspan.Close, err = b.BuildSpan(closeExp)
		if err != nil {
			return ast.DelSpan{}, err
		}
	}

	return dspan, nil
}

func (b *AstBuilder) buildDelimiter(s sexp.SExp) (ast.Delimiter, error) {
	tag, err := symbolTag(s, schema.Delimiters)
	if err != nil {
		return ast.DelimParen, err
	}

	switch tag {
	case "Brace":
		return ast.DelimBrace, nil
	case "Bracket":
		return ast.DelimBracket, nil
	case "Invisible":
		return ast.DelimInvisible, nil
	default:
		return ast.DelimParen, nil
	}
}

func (b *AstBuilder) buildTokenStream(s sexp.SExp) (ast.TokenStream, error) {
	list, err := expectTagged(s, "TokenStream")
	if err != nil {
		return nil, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	sourceExp, ok := kwargs["source"]
	if !ok {
		return &ast.EmptyStream{}, nil
	}
	source, err := expectString(sourceExp)
	if err != nil {
		return nil, err
	}
	return &ast.SourceStream{Source: source}, nil
}
