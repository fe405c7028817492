package builder

import (
	"github.com/oxur/oxur-ast/internal/ast"
	"github.com/oxur/oxur-ast/internal/schema"
	"github.com/oxur/oxur-ast/internal/sexp"
)

// BuildItem builds a top-level declaration from an (Item ...) list.
func (b *AstBuilder) BuildItem(s sexp.SExp) (*ast.Item, error) {
	list, err := expectTagged(s, "Item")
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

	vis := ast.VisInherited
	if visExp, ok := kwargs["vis"]; ok {
		vis, err = b.buildVisibility(visExp)
		if err != nil {
			return nil, err
		}
	}

	identExp, ok := kwargs["ident"]
	if !ok {
		return nil, missingField("ident", list)
	}
	ident, err := b.BuildIdent(identExp)
	if err != nil {
		return nil, err
	}

	kindExp, ok := kwargs["kind"]
	if !ok {
		return nil, missingField("kind", list)
	}
	kind, err := b.buildItemKind(kindExp)
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

	return &ast.Item{ID: id, Span: span, Vis: vis, Ident: ident, Kind: kind}, nil
}

func (b *AstBuilder) buildVisibility(s sexp.SExp) (ast.Visibility, error) {
	_, sym, err := taggedList(s)
	if err != nil {
		return ast.VisInherited, err
	}

	switch sym.Value {
	case "Public":
		return ast.VisPublic, nil
	case "Inherited":
		return ast.VisInherited, nil
	default:
		return ast.VisInherited, sexp.NewExpected(schema.OneOf(schema.Visibilities), sym.Value, sym.Position)
	}
}

// BuildIdent builds an identifier from an (Ident :name "...") list.
func (b *AstBuilder) BuildIdent(s sexp.SExp) (ast.Ident, error) {
	list, err := expectTagged(s, "Ident")
	if err != nil {
		return ast.Ident{}, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return ast.Ident{}, err
	}

	nameExp, ok := kwargs["name"]
	if !ok {
		return ast.Ident{}, missingField("name", list)
	}
	name, err := expectString(nameExp)
	if err != nil {
		return ast.Ident{}, err
	}

	span, err := b.spanField(kwargs)
	if err != nil {
		return ast.Ident{}, err
	}

	return ast.Ident{Name: name, Span: span}, nil
}

func (b *AstBuilder) buildItemKind(s sexp.SExp) (ast.ItemKind, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	switch sym.Value {
	case "Fn":
		fn, err := b.buildFn(list)
		if err != nil {
			return nil, err
		}
		return &ast.FnItem{Fn: fn}, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.ItemKinds), sym.Value, sym.Position)
	}
}

// buildFn parses the fields of a (Fn ...) list. A nil :body marks a
// function without a body, distinct from the field being omitted.
func (b *AstBuilder) buildFn(list *sexp.List) (*ast.Fn, error) {
	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	defaultness := ast.DefaultnessFinal
	if defExp, ok := kwargs["defaultness"]; ok {
		tag, err := symbolTag(defExp, schema.Defaultnesses)
		if err != nil {
			return nil, err
		}
		if tag == "Default" {
			defaultness = ast.DefaultnessDefault
		}
	}

	sigExp, ok := kwargs["sig"]
	if !ok {
		return nil, missingField("sig", list)
	}
	sig, err := b.buildFnSig(sigExp)
	if err != nil {
		return nil, err
	}

	generics := ast.EmptyGenerics()
	if genExp, ok := kwargs["generics"]; ok {
		generics, err = b.buildGenerics(genExp)
		if err != nil {
			return nil, err
		}
	}

	var body *ast.Block
	if bodyExp, ok := kwargs["body"]; ok && !isNil(bodyExp) {
		body, err = b.BuildBlock(bodyExp)
		if err != nil {
			return nil, err
		}
	}

	return &ast.Fn{Defaultness: defaultness, Sig: sig, Generics: generics, Body: body}, nil
}

func (b *AstBuilder) buildFnSig(s sexp.SExp) (ast.FnSig, error) {
	list, err := expectTagged(s, "FnSig")
	if err != nil {
		return ast.FnSig{}, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return ast.FnSig{}, err
	}

	header := ast.FnHeader{}
	if headerExp, ok := kwargs["header"]; ok {
		header, err = b.buildFnHeader(headerExp)
		if err != nil {
			return ast.FnSig{}, err
		}
	}

	decl := ast.FnDecl{Output: &ast.RetDefault{Span: ast.DummySpan}}
	if declExp, ok := kwargs["decl"]; ok {
		decl, err = b.buildFnDecl(declExp)
		if err != nil {
			return ast.FnSig{}, err
		}
	}

	span, err := b.spanField(kwargs)
	if err != nil {
		return ast.FnSig{}, err
	}

	return ast.FnSig{Header: header, Decl: decl, Span: span}, nil
}

func (b *AstBuilder) buildFnHeader(s sexp.SExp) (ast.FnHeader, error) {
	list, err := expectTagged(s, "FnHeader")
	if err != nil {
		return ast.FnHeader{}, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return ast.FnHeader{}, err
	}

	header := ast.FnHeader{}
	if safetyExp, ok := kwargs["safety"]; ok {
		tag, err := symbolTag(safetyExp, schema.Safeties)
		if err != nil {
			return ast.FnHeader{}, err
		}
		switch tag {
		case "Safe":
			header.Safety = ast.SafetySafe
		case "Unsafe":
			header.Safety = ast.SafetyUnsafe
		}
	}
	if constExp, ok := kwargs["constness"]; ok {
		tag, err := symbolTag(constExp, schema.Constnesses)
		if err != nil {
			return ast.FnHeader{}, err
		}
		if tag == "Const" {
			header.Constness = ast.Const
		}
	}

	return header, nil
}

func (b *AstBuilder) buildFnDecl(s sexp.SExp) (ast.FnDecl, error) {
	list, err := expectTagged(s, "FnDecl")
	if err != nil {
		return ast.FnDecl{}, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return ast.FnDecl{}, err
	}

	var inputs []*ast.Param
	if inputsExp, ok := kwargs["inputs"]; ok {
		inputsList, err := expectList(inputsExp)
		if err != nil {
			return ast.FnDecl{}, err
		}
		for _, paramExp := range inputsList.Elements {
			param, err := b.buildParam(paramExp)
			if err != nil {
				return ast.FnDecl{}, err
			}
			inputs = append(inputs, param)
		}
	}

	var output ast.FnRetTy = &ast.RetDefault{Span: ast.DummySpan}
	if outputExp, ok := kwargs["output"]; ok {
		output, err = b.buildFnRetTy(outputExp)
		if err != nil {
			return ast.FnDecl{}, err
		}
	}

	return ast.FnDecl{Inputs: inputs, Output: output}, nil
}

func (b *AstBuilder) buildParam(s sexp.SExp) (*ast.Param, error) {
	list, err := expectTagged(s, "Param")
	if err != nil {
		return nil, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	tyExp, ok := kwargs["ty"]
	if !ok {
		return nil, missingField("ty", list)
	}
	ty, err := b.BuildTy(tyExp)
	if err != nil {
		return nil, err
	}

	patExp, ok := kwargs["pat"]
	if !ok {
		return nil, missingField("pat", list)
	}
	pat, err := b.BuildPat(patExp)
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

	return &ast.Param{Ty: ty, Pat: pat, ID: id, Span: span}, nil
}

func (b *AstBuilder) buildFnRetTy(s sexp.SExp) (ast.FnRetTy, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	switch sym.Value {
	case "Default":
		return &ast.RetDefault{Span: ast.DummySpan}, nil
	case "Ty":
		kwargs, err := keywordArgs(list)
		if err != nil {
			return nil, err
		}
		tyExp, ok := kwargs["ty"]
		if !ok {
			return nil, missingField("ty", list)
		}
		ty, err := b.BuildTy(tyExp)
		if err != nil {
			return nil, err
		}
		return &ast.RetTy{Ty: ty}, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.RetKinds), sym.Value, sym.Position)
	}
}

// BuildTy builds a type node from a (Ty :kind ...) list.
func (b *AstBuilder) BuildTy(s sexp.SExp) (*ast.Ty, error) {
	list, err := expectTagged(s, "Ty")
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
	kind, err := b.buildTyKind(kindExp)
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

	return &ast.Ty{ID: id, Kind: kind, Span: span}, nil
}

func (b *AstBuilder) buildTyKind(s sexp.SExp) (ast.TyKind, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	switch sym.Value {
	case "Path":
		path, err := b.buildPathFields(list)
		if err != nil {
			return nil, err
		}
		return &ast.PathTy{Path: path}, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.TyKinds), sym.Value, sym.Position)
	}
}

// BuildPat builds a pattern node from a (Pat :kind ...) list.
func (b *AstBuilder) BuildPat(s sexp.SExp) (*ast.Pat, error) {
	list, err := expectTagged(s, "Pat")
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
	kind, err := b.buildPatKind(kindExp)
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

	return &ast.Pat{ID: id, Kind: kind, Span: span}, nil
}

func (b *AstBuilder) buildPatKind(s sexp.SExp) (ast.PatKind, error) {
	list, sym, err := taggedList(s)
	if err != nil {
		return nil, err
	}

	switch sym.Value {
	case "Ident":
		kwargs, err := keywordArgs(list)
		if err != nil {
			return nil, err
		}

		pat := &ast.IdentPat{}
		if bindExp, ok := kwargs["binding"]; ok {
			tag, err := symbolTag(bindExp, schema.Bindings)
			if err != nil {
				return nil, err
			}
			if tag == "ByRef" {
				pat.BindingMode = ast.BindByRef
			}
		}
		if mutExp, ok := kwargs["mut"]; ok {
			tag, err := symbolTag(mutExp, schema.Mutabilities)
			if err != nil {
				return nil, err
			}
			if tag == "Mut" {
				pat.Mut = ast.Mutable
			}
		}

		identExp, ok := kwargs["ident"]
		if !ok {
			return nil, missingField("ident", list)
		}
		pat.Ident, err = b.BuildIdent(identExp)
		if err != nil {
			return nil, err
		}

		if subExp, ok := kwargs["sub"]; ok && !isNil(subExp) {
			pat.Sub, err = b.BuildPat(subExp)
			if err != nil {
				return nil, err
			}
		}

		return pat, nil
	default:
		return nil, sexp.NewExpected(schema.OneOf(schema.PatKinds), sym.Value, sym.Position)
	}
}

// buildGenerics validates the (Generics) list. Phase 1 models no
// generic parameters, so the payload is not interpreted yet.
func (b *AstBuilder) buildGenerics(s sexp.SExp) (ast.Generics, error) {
	if _, err := expectList(s); err != nil {
		return ast.Generics{}, err
	}
	return ast.EmptyGenerics(), nil
}

// symbolTag requires s to be a symbol drawn from the valid tag set.
func symbolTag(s sexp.SExp, valid []string) (string, error) {
	sym, err := expectSymbol(s)
	if err != nil {
		return "", err
	}
	if !schema.Contains(valid, sym.Value) {
		return "", sexp.NewExpected(schema.OneOf(valid), sym.Value, sym.Position)
	}
	return sym.Value, nil
}
