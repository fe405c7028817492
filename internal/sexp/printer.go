package sexp

import "strings"

// Printer renders a generic parse tree back to text. Rendering is purely
// structural and stable: it does not reproduce the original formatting,
// but printing the same tree twice yields identical text.
type Printer struct {
	indent int // spaces per depth level
}

// NewPrinter creates a printer with the default two-space indent.
func NewPrinter() *Printer {
	return &Printer{indent: 2}
}

// NewPrinterIndent creates a printer with a custom per-depth indent.
func NewPrinterIndent(indent int) *Printer {
	return &Printer{indent: indent}
}

// Print renders the tree to text.
func (pr *Printer) Print(s SExp) string {
	return pr.printSExp(s, 0)
}

func (pr *Printer) printSExp(s SExp, depth int) string {
	switch node := s.(type) {
	case *Symbol:
		return node.Value
	case *Keyword:
		return ":" + node.Name
	case *String:
		return `"` + escapeString(node.Value) + `"`
	case *Number:
		return node.Value
	case *Nil:
		return "nil"
	case *List:
		return pr.printList(node, depth)
	default:
		return ""
	}
}

// printList renders a simple list on one line; otherwise one child per
// line, the open paren on the first child's line and the close paren
// immediately after the last child.
func (pr *Printer) printList(list *List, depth int) string {
	if len(list.Elements) == 0 {
		return "()"
	}

	if isSimpleList(list) {
		parts := make([]string, len(list.Elements))
		for i, e := range list.Elements {
			parts[i] = pr.printSExp(e, depth+1)
		}
		return "(" + strings.Join(parts, " ") + ")"
	}

	var b strings.Builder
	b.WriteByte('(')
	for i, e := range list.Elements {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", (depth+1)*pr.indent))
		}
		b.WriteString(pr.printSExp(e, depth+1))
	}
	b.WriteByte(')')
	return b.String()
}

// isSimpleList reports whether a list renders on a single line: at most
// three elements, none of them lists.
func isSimpleList(list *List) bool {
	if len(list.Elements) > 3 {
		return false
	}
	for _, e := range list.Elements {
		if _, ok := e.(*List); ok {
			return false
		}
	}
	return true
}

// escapeString re-escapes the characters the lexer unescapes.
func escapeString(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch ch {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Print renders a tree with the default printer.
func Print(s SExp) string {
	return NewPrinter().Print(s)
}
