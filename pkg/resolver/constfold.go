package resolver

import (
	"strconv"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// foldConst evaluates a ConstExpr to its integer value. XDR constant
// expressions are never more than a literal or a reference to a prior
// const declaration (§4.3 item 2), so this is a lookup, not a general
// expression evaluator.
func (r *Resolver) foldConst(e *ast.ConstExpr) (int64, bool) {
	if e == nil {
		return 0, false
	}
	if e.Resolved {
		return e.Value, true
	}

	if e.IsLiteral() {
		v, err := parseIntLiteral(e.Literal)
		if err != nil {
			r.errorf(e.Pos, diag.BadConstExpr, "invalid integer literal %q: %s", e.Literal, err)
			return 0, false
		}
		e.Value = v
		e.Resolved = true
		return v, true
	}

	if e.IsBoolLiteral() {
		v := int64(0)
		if e.Bool == "true" {
			v = 1
		}
		e.Value = v
		e.Resolved = true
		return v, true
	}

	sym, ok := r.symbols.lookup(e.Ref)
	if !ok {
		r.errorf(e.Pos, diag.UnresolvedName, "undefined constant %q%s", e.Ref, diag.Suggest(e.Ref, r.symbols.names()))
		return 0, false
	}

	var v int64
	switch sym.kind {
	case symConst:
		v, ok = r.foldConst(sym.constD.Value)
	case symEnumVariant:
		v, ok = r.foldConst(sym.variant.Value)
	default:
		r.errorf(e.Pos, diag.BadConstExpr, "%q is a %s, not a constant", e.Ref, sym.kind)
		return 0, false
	}
	if !ok {
		return 0, false
	}
	e.Value = v
	e.Resolved = true
	return v, true
}

func parseIntLiteral(lit string) (int64, error) {
	return strconv.ParseInt(lit, 0, 64)
}
