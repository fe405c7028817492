// Package schema is the registry of node tags recognized by the builder
// in the current phase, plus the schema version tooling gates on. Tag
// sets are plain slices so later phases can extend a union without
// touching the dispatch mechanism.
package schema

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the schema phase version. Phase 1 covers function items,
// expression/empty statements, and macro-call/literal/path expressions.
const Version = "0.1.0"

// Tag sets per tagged union. Order matters only for error messages.
var (
	ItemKinds     = []string{"Fn"}
	StmtKinds     = []string{"Semi", "Expr", "Empty"}
	ExprKinds     = []string{"MacCall", "Lit", "Path"}
	LitKinds      = []string{"Str", "Int"}
	MacArgsKinds  = []string{"Empty", "Delimited"}
	Delimiters    = []string{"Paren", "Brace", "Bracket", "Invisible"}
	Visibilities  = []string{"Public", "Inherited"}
	RetKinds      = []string{"Default", "Ty"}
	TyKinds       = []string{"Path"}
	PatKinds      = []string{"Ident"}
	Safeties      = []string{"Safe", "Unsafe", "Default"}
	Constnesses   = []string{"Const", "NotConst"}
	Defaultnesses = []string{"Final", "Default"}
	Bindings      = []string{"ByValue", "ByRef"}
	Mutabilities  = []string{"Mut", "Not"}
)

// OneOf renders a tag set for an expected/found diagnostic, e.g.
// "Semi, Expr, or Empty".
func OneOf(tags []string) string {
	switch len(tags) {
	case 0:
		return ""
	case 1:
		return tags[0]
	case 2:
		return tags[0] + " or " + tags[1]
	default:
		return strings.Join(tags[:len(tags)-1], ", ") + ", or " + tags[len(tags)-1]
	}
}

// Contains reports whether tag is a member of the set.
func Contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Check verifies that the schema version satisfies the given semver
// constraint (e.g. ">= 0.1.0, < 1.0.0").
func Check(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid schema constraint %q: %w", constraint, err)
	}
	v := semver.MustParse(Version)
	if !c.Check(v) {
		return fmt.Errorf("schema version %s does not satisfy constraint %q", Version, constraint)
	}
	return nil
}
