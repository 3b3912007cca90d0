package resolver

import (
	"github.com/lanl/nfs-utility-suite/pkg/ast"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// resolveUnion implements §4.3 item 4: the discriminant must be bool,
// int, unsigned int, or an enum; every case label must be a constant of
// that domain; and no two labels (across all arms, including a repeated
// label within one arm) may collide.
func (r *Resolver) resolveUnion(u *ast.UnionDecl) {
	r.resolveFieldDecl(u.Disc, "")

	if !r.validDiscriminant(u.Disc) {
		r.errorf(u.Disc.Pos, diag.BadUnion,
			"union discriminant must be bool, int, unsigned int, or an enum")
	}

	if u.Disc.Plain != nil && u.Disc.Plain.Type.Resolved != nil {
		u.DiscEnum = u.Disc.Plain.Type.Resolved.Enum
	}

	seen := make(map[int64]bool)
	for _, arm := range u.Arms {
		for _, label := range arm.Labels {
			r.checkCaseLabel(u, label, seen)
		}
		r.resolveFieldDecl(arm.Field, "")
	}
	if u.Default != nil {
		r.resolveFieldDecl(u.Default.Field, "")
	}
}

func (r *Resolver) checkCaseLabel(u *ast.UnionDecl, label *ast.CaseLabel, seen map[int64]bool) {
	val, ok := r.foldConst(label.Value)
	if !ok {
		return
	}
	if seen[val] {
		r.errorf(label.Pos, diag.BadUnion, "duplicate case label %d", val)
		return
	}
	seen[val] = true

	if u.DiscEnum != nil && !enumHasValue(u.DiscEnum, val) {
		r.errorf(label.Pos, diag.BadUnion, "case label %d is not a value of enum %q", val, u.DiscEnum.Name)
	}
}

func enumHasValue(e *ast.EnumDecl, val int64) bool {
	for _, v := range e.Variants {
		if v.Value.Resolved && v.Value.Value == val {
			return true
		}
	}
	return false
}

// validDiscriminant reports whether the resolved discriminant field's
// type is one of the four domains the XDR union grammar allows.
func (r *Resolver) validDiscriminant(disc *ast.FieldDecl) bool {
	if disc.Plain == nil {
		return false
	}
	t := disc.Plain.Type
	if t.IsNamedRef() {
		return t.Resolved != nil && t.Resolved.Enum != nil
	}
	switch t.Base {
	case "bool", "int":
		return true
	default:
		return false
	}
}
