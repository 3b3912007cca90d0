package resolver

import "github.com/lanl/nfs-utility-suite/pkg/ast"

// symbolKind distinguishes the declaration kinds that can be named at
// package scope, so a NamedRef used in the wrong position (e.g. a
// procedure naming a const as its argument type) is caught without a
// type switch at every call site.
type symbolKind int

const (
	symConst symbolKind = iota
	symTypedef
	symEnum
	symStruct
	symUnion
	// symEnumVariant is one `NAME = expr` member of an enum body. XDR has
	// no qualified "Enum.Variant" syntax (§4.3 item 4): a case label names
	// the variant directly, so each variant shares the same flat,
	// package-level namespace everything else does.
	symEnumVariant
)

func (k symbolKind) String() string {
	switch k {
	case symConst:
		return "const"
	case symTypedef:
		return "typedef"
	case symEnum:
		return "enum"
	case symStruct:
		return "struct"
	case symUnion:
		return "union"
	case symEnumVariant:
		return "enum variant"
	default:
		return "unknown"
	}
}

// symbol is one package-level name, either a type-introducing declaration
// or a constant (which an enum variant folds to just like a const does).
type symbol struct {
	kind    symbolKind
	name    string
	constD  *ast.ConstDecl
	typeD   *ast.TypedefDecl
	enumD   *ast.EnumDecl
	structD *ast.StructDecl
	unionD  *ast.UnionDecl
	variant *ast.EnumVariant
}

// symbolTable is the resolver's flat, package-level namespace. Unlike the
// teacher's lexically-scoped stack of variable maps, XDR has no nested
// scopes: every const/typedef/enum/struct/union shares one namespace. The
// table is filled by Resolver.declarePass before binding starts; §4.3's
// "visible only after their own declaration" rule is enforced at lookup
// sites by comparing declaration indices (Resolver.declAt) against the
// bind pass's position.
type symbolTable struct {
	entries map[string]*symbol
	order   []string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{entries: make(map[string]*symbol)}
}

func (t *symbolTable) declare(sym *symbol) (prior *symbol, duplicate bool) {
	if existing, ok := t.entries[sym.name]; ok {
		return existing, true
	}
	t.entries[sym.name] = sym
	t.order = append(t.order, sym.name)
	return nil, false
}

func (t *symbolTable) lookup(name string) (*symbol, bool) {
	s, ok := t.entries[name]
	return s, ok
}

// names returns every declared name, in declaration order, for use in
// "did you mean" suggestions.
func (t *symbolTable) names() []string {
	return append([]string(nil), t.order...)
}
