// Package builder converts a generic S-expression tree into the typed
// AST. Every node kind follows the same algorithm: require a list whose
// head symbol matches the node's schema tag, collect the remaining
// elements as keyword/value pairs, then validate required fields and
// substitute documented defaults for optional ones. The first failure
// aborts the whole build.
package builder

import (
	"strconv"

	"github.com/oxur/oxur-ast/internal/ast"
	"github.com/oxur/oxur-ast/internal/position"
	"github.com/oxur/oxur-ast/internal/sexp"
)

// maxBuildDepth bounds nested node construction independently of the
// parser's own limit.
const maxBuildDepth = 256

// AstBuilder converts parse trees to typed AST nodes. The identifier
// counter is the only mutable state; it is session-scoped and must not
// be shared across goroutines without external synchronization.
type AstBuilder struct {
	nextID uint32
	depth  int
}

// New creates a fresh builder whose id counter starts at zero.
func New() *AstBuilder {
	return &AstBuilder{}
}

// NextID returns the current counter value and increments it. Ids
// allocated this way are strictly increasing within one session.
func (b *AstBuilder) NextID() ast.NodeID {
	id := ast.NodeID(b.nextID)
	b.nextID++
	return id
}

func (b *AstBuilder) push(pos position.Position) error {
	b.depth++
	if b.depth > maxBuildDepth {
		return &sexp.ParseError{Kind: sexp.ErrDepthExceeded, Pos: pos}
	}
	return nil
}

func (b *AstBuilder) pop() {
	b.depth--
}

// BuildCrate builds the compilation-unit root from a (Crate ...) list.
func (b *AstBuilder) BuildCrate(s sexp.SExp) (*ast.Crate, error) {
	list, err := expectTagged(s, "Crate")
	if err != nil {
		return nil, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return nil, err
	}

	itemsExp, ok := kwargs["items"]
	if !ok {
		return nil, missingField("items", list)
	}
	items, err := b.buildItemList(itemsExp)
	if err != nil {
		return nil, err
	}

	spans := ast.ModSpans{}
	if spansExp, ok := kwargs["spans"]; ok {
		spans, err = b.buildModSpans(spansExp)
		if err != nil {
			return nil, err
		}
	}

	id, err := b.idField(kwargs)
	if err != nil {
		return nil, err
	}

	return ast.NewCrate(items, spans, id), nil
}

func (b *AstBuilder) buildItemList(s sexp.SExp) ([]*ast.Item, error) {
	list, err := expectList(s)
	if err != nil {
		return nil, err
	}

	var items []*ast.Item
	for _, element := range list.Elements {
		item, err := b.BuildItem(element)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (b *AstBuilder) buildModSpans(s sexp.SExp) (ast.ModSpans, error) {
	list, err := expectTagged(s, "ModSpans")
	if err != nil {
		return ast.ModSpans{}, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return ast.ModSpans{}, err
	}

	inner := ast.DummySpan
	if innerExp, ok := kwargs["inner-span"]; ok {
		inner, err = b.BuildSpan(innerExp)
		if err != nil {
			return ast.ModSpans{}, err
		}
	}

	return ast.ModSpans{InnerSpan: inner, InjectUseSpan: ast.DummySpan}, nil
}

// BuildSpan builds a span from a (Span :lo N :hi N) list. An empty list
// is accepted as the dummy span; missing lo/hi default to zero.
func (b *AstBuilder) BuildSpan(s sexp.SExp) (ast.Span, error) {
	list, err := expectList(s)
	if err != nil {
		return ast.Span{}, err
	}
	if len(list.Elements) == 0 {
		return ast.DummySpan, nil
	}

	if _, err := expectTagged(s, "Span"); err != nil {
		return ast.Span{}, err
	}

	kwargs, err := keywordArgs(list)
	if err != nil {
		return ast.Span{}, err
	}

	var lo, hi uint32
	if loExp, ok := kwargs["lo"]; ok {
		n, err := expectNumber(loExp)
		if err != nil {
			return ast.Span{}, err
		}
		lo = uint32(n)
	}
	if hiExp, ok := kwargs["hi"]; ok {
		n, err := expectNumber(hiExp)
		if err != nil {
			return ast.Span{}, err
		}
		hi = uint32(n)
	}

	return ast.NewSpan(lo, hi), nil
}

// spanField returns the node's span, substituting the dummy span when
// the field is absent.
func (b *AstBuilder) spanField(kwargs map[string]sexp.SExp) (ast.Span, error) {
	spanExp, ok := kwargs["span"]
	if !ok {
		return ast.DummySpan, nil
	}
	return b.BuildSpan(spanExp)
}

// idField returns the node's id, auto-assigning the next session id when
// the field is absent. Explicit ids are not checked for uniqueness.
func (b *AstBuilder) idField(kwargs map[string]sexp.SExp) (ast.NodeID, error) {
	idExp, ok := kwargs["id"]
	if !ok {
		return b.NextID(), nil
	}
	n, err := expectNumber(idExp)
	if err != nil {
		return 0, err
	}
	return ast.NodeID(uint32(n)), nil
}

// ===== Generic extraction helpers =====

func expectList(s sexp.SExp) (*sexp.List, error) {
	if list, ok := s.(*sexp.List); ok {
		return list, nil
	}
	return nil, sexp.NewExpected("list", sexp.KindName(s), s.Pos())
}

func expectSymbol(s sexp.SExp) (*sexp.Symbol, error) {
	if sym, ok := s.(*sexp.Symbol); ok {
		return sym, nil
	}
	return nil, sexp.NewExpected("symbol", sexp.KindName(s), s.Pos())
}

func expectString(s sexp.SExp) (string, error) {
	if str, ok := s.(*sexp.String); ok {
		return str.Value, nil
	}
	return "", sexp.NewExpected("string", sexp.KindName(s), s.Pos())
}

func expectNumber(s sexp.SExp) (int64, error) {
	num, ok := s.(*sexp.Number)
	if !ok {
		return 0, sexp.NewExpected("number", sexp.KindName(s), s.Pos())
	}
	n, err := strconv.ParseInt(num.Value, 10, 64)
	if err != nil {
		return 0, sexp.NewExpected("valid number", num.Value, num.Position)
	}
	return n, nil
}

func isNil(s sexp.SExp) bool {
	_, ok := s.(*sexp.Nil)
	return ok
}

// expectTagged requires s to be a non-empty list whose head symbol is
// exactly tag.
func expectTagged(s sexp.SExp, tag string) (*sexp.List, error) {
	list, err := expectList(s)
	if err != nil {
		return nil, err
	}
	if len(list.Elements) == 0 {
		return nil, sexp.NewExpected(tag+" node", "empty list", list.Position)
	}
	sym, err := expectSymbol(list.Elements[0])
	if err != nil {
		return nil, err
	}
	if sym.Value != tag {
		return nil, sexp.NewExpected(tag, sym.Value, sym.Position)
	}
	return list, nil
}

// taggedList requires s to be a non-empty list headed by a symbol and
// returns both; used for tagged-union dispatch.
func taggedList(s sexp.SExp) (*sexp.List, *sexp.Symbol, error) {
	list, err := expectList(s)
	if err != nil {
		return nil, nil, err
	}
	if len(list.Elements) == 0 {
		return nil, nil, sexp.NewExpected("tagged node", "empty list", list.Position)
	}
	sym, err := expectSymbol(list.Elements[0])
	if err != nil {
		return nil, nil, err
	}
	return list, sym, nil
}

// keywordArgs collects the elements after the tag as keyword/value
// pairs. A repeated keyword overwrites the earlier value; a keyword with
// no paired value is rejected.
func keywordArgs(list *sexp.List) (map[string]sexp.SExp, error) {
	kwargs := make(map[string]sexp.SExp)

	for i := 1; i < len(list.Elements); i += 2 {
		if i+1 >= len(list.Elements) {
			return nil, sexp.NewExpected("value after keyword", "end of list", list.Position)
		}
		key, ok := list.Elements[i].(*sexp.Keyword)
		if !ok {
			return nil, sexp.NewExpected("keyword", sexp.KindName(list.Elements[i]), list.Elements[i].Pos())
		}
		kwargs[key.Name] = list.Elements[i+1]
	}

	return kwargs, nil
}

func missingField(name string, list *sexp.List) error {
	return sexp.NewExpected(":"+name+" field", "missing", list.Position)
}
