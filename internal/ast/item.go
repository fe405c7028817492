package ast

// Item is a top-level declaration.
type Item struct {
	Attrs []Attribute
	ID    NodeID
	Span  Span
	Vis   Visibility
	Ident Ident
	Kind  ItemKind
}

// ItemKind is the tagged payload of an item. Phase 1 populates only the
// function variant.
type ItemKind interface {
	itemKindNode()
}

// FnItem is a function item.
type FnItem struct {
	Fn *Fn
}

func (*FnItem) itemKindNode() {}

// Visibility of an item. Phase 1 models only the payload-free variants.
type Visibility int

// Visibility variants.
const (
	VisInherited Visibility = iota
	VisPublic
)

// String returns the schema tag of the visibility.
func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "Public"
	default:
		return "Inherited"
	}
}

// Fn is a function: signature, generics, and an optional body. A nil
// Body means the function has no body (e.g. a declaration).
type Fn struct {
	Defaultness Defaultness
	Sig         FnSig
	Generics    Generics
	Body        *Block
}

// FnSig is a function signature.
type FnSig struct {
	Header FnHeader
	Decl   FnDecl
	Span   Span
}

// FnHeader carries the signature qualifiers.
type FnHeader struct {
	Safety    Safety
	Constness Constness
}

// FnDecl is the parameter list and return type.
type FnDecl struct {
	Inputs []*Param
	Output FnRetTy
}

// Param is a function parameter.
type Param struct {
	Attrs []Attribute
	Ty    *Ty
	Pat   *Pat
	ID    NodeID
	Span  Span
}

// FnRetTy is the function return type.
type FnRetTy interface {
	fnRetTyNode()
}

// RetDefault is the implicit unit return type.
type RetDefault struct {
	Span Span
}

// RetTy is an explicit return type.
type RetTy struct {
	Ty *Ty
}

func (*RetDefault) fnRetTyNode() {}
func (*RetTy) fnRetTyNode()      {}

// Generics of a function. Phase 1 keeps the container but models no
// parameter payloads.
type Generics struct {
	Params []GenericParam
	Where  WhereClause
	Span   Span
}

// EmptyGenerics returns generics with no parameters and a dummy span.
func EmptyGenerics() Generics {
	return Generics{}
}

// GenericParam is a placeholder in phase 1.
type GenericParam struct{}

// GenericArgs is a placeholder in phase 1.
type GenericArgs struct{}

// WhereClause of a generic declaration.
type WhereClause struct {
	HasWhereToken bool
	Predicates    []WherePredicate
	Span          Span
}

// WherePredicate is a placeholder in phase 1.
type WherePredicate struct{}

// Defaultness of an item in a trait impl.
type Defaultness int

// Defaultness variants.
const (
	DefaultnessFinal Defaultness = iota
	DefaultnessDefault
)

// Safety qualifier.
type Safety int

// Safety variants.
const (
	SafetyDefault Safety = iota
	SafetySafe
	SafetyUnsafe
)

// Constness qualifier.
type Constness int

// Constness variants.
const (
	NotConst Constness = iota
	Const
)

// Ty is a type node. Phase 1 populates only the path variant.
type Ty struct {
	ID   NodeID
	Kind TyKind
	Span Span
}

// TyKind is the tagged payload of a type.
type TyKind interface {
	tyKindNode()
}

// PathTy is a plain path type (e.g. i32, String).
type PathTy struct {
	Path *Path
}

func (*PathTy) tyKindNode() {}

// Pat is a pattern node. Phase 1 populates only the identifier variant.
type Pat struct {
	ID   NodeID
	Kind PatKind
	Span Span
}

// PatKind is the tagged payload of a pattern.
type PatKind interface {
	patKindNode()
}

// IdentPat binds a name.
type IdentPat struct {
	BindingMode BindingMode
	Mut         Mutability
	Ident       Ident
	Sub         *Pat
}

func (*IdentPat) patKindNode() {}

// BindingMode of an identifier pattern.
type BindingMode int

// Binding modes.
const (
	BindByValue BindingMode = iota
	BindByRef
)

// Mutability qualifier.
type Mutability int

// Mutability variants.
const (
	Immutable Mutability = iota
	Mutable
)
