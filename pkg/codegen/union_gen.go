package codegen

import (
	"fmt"
	"strconv"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
)

// VisitUnionDecl emits a Go struct carrying the discriminant plus each
// arm's field (and the default arm's, if any) as declared, and
// EncodeXDR/DecodeXDR methods that switch on the discriminant the way RFC
// 4506 §6's discriminated union does. Fall-through labels sharing one body
// form a single arm and so get exactly one field; separate arms are not
// merged by field name.
func (e *Emitter) VisitUnionDecl(u *ast.UnionDecl) {
	name := exportedIdent(u.Name)
	discIsBool := discType(u.Disc).Base == "bool"
	discGoType := goType(discType(u.Disc))
	discField := fieldName(u.Disc)

	arms := uniqueArms(u)

	e.writeln(fmt.Sprintf("type %s struct {", name))
	e.increaseIndent()
	e.writeln(fmt.Sprintf("%s %s", discField, discGoType))
	for _, arm := range arms {
		e.writeFieldDef(arm.Field)
	}
	if u.Default != nil {
		e.writeFieldDef(u.Default.Field)
	}
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	e.writeln(fmt.Sprintf("func (v %s) EncodeXDR() []byte {", name))
	e.increaseIndent()
	e.writeln("w := xdrwire.NewWriter()")
	e.writeFieldEncodeInto(u.Disc, "v."+discField)
	e.writeln(fmt.Sprintf("switch v.%s {", discField))
	for _, arm := range arms {
		e.writeln(fmt.Sprintf("case %s:", joinLabels(arm.Labels, discIsBool)))
		e.increaseIndent()
		e.writeFieldEncode(arm.Field)
		e.decreaseIndent()
	}
	if u.Default != nil {
		e.writeln("default:")
		e.increaseIndent()
		e.writeFieldEncode(u.Default.Field)
		e.decreaseIndent()
	}
	e.writeln("}")
	e.writeln("return w.Bytes()")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	e.writeln(fmt.Sprintf("func (v *%s) DecodeXDR(c *xdrwire.Cursor) error {", name))
	e.increaseIndent()
	e.writeFieldDecodeInto(u.Disc, "v."+discField)
	e.writeln(fmt.Sprintf("switch v.%s {", discField))
	for _, arm := range arms {
		e.writeln(fmt.Sprintf("case %s:", joinLabels(arm.Labels, discIsBool)))
		e.increaseIndent()
		e.writeFieldDecode(arm.Field)
		e.decreaseIndent()
	}
	if u.Default != nil {
		e.writeln("default:")
		e.increaseIndent()
		e.writeFieldDecode(u.Default.Field)
		e.decreaseIndent()
	} else {
		e.writeln("default:")
		e.increaseIndent()
		e.writeUnexpectedTagReturn(discField, discIsBool)
		e.decreaseIndent()
	}
	e.writeln("}")
	e.writeln("return nil")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}

// discType returns the discriminant's type-specifier, for both the bool/
// int primitive form and the named-enum form the resolver validated.
func discType(disc *ast.FieldDecl) *ast.TypeSpec {
	if disc.Plain != nil {
		return disc.Plain.Type
	}
	return &ast.TypeSpec{Base: "int"}
}

// joinLabels renders a union arm's case labels as a Go comma-joined case
// expression, preserving RFC 4506 fall-through semantics in the
// generated switch. A bool discriminant's labels must render as the
// literals true/false: the resolver folds "case true:"/"case false:" to
// 1/0 so every case label shares one integer domain (§4.3 item 2), but
// v.<Disc> is a Go bool, and an untyped int constant is not comparable to
// bool — unlike an int/enum discriminant, where the same untyped int
// constant converts to the named integer type implicitly.
func joinLabels(labels []*ast.CaseLabel, discIsBool bool) string {
	vals := make([]string, len(labels))
	for i, l := range labels {
		if discIsBool {
			vals[i] = strconv.FormatBool(l.Value.Value != 0)
		} else {
			vals[i] = strconv.FormatInt(l.Value.Value, 10)
		}
	}
	out := vals[0]
	for _, v := range vals[1:] {
		out += ", " + v
	}
	return out
}

// writeUnexpectedTagReturn emits the DecodeXDR default case for a union
// with no explicit default arm (§8 "union exhaustiveness"). A bool
// discriminant cannot convert directly to int64 the way an int/enum one
// does, so it is carried through an explicit 0/1 local instead.
func (e *Emitter) writeUnexpectedTagReturn(discField string, discIsBool bool) {
	if discIsBool {
		e.writeln("tag := int64(0)")
		e.writeln(fmt.Sprintf("if v.%s {", discField))
		e.increaseIndent()
		e.writeln("tag = 1")
		e.decreaseIndent()
		e.writeln("}")
		e.writeln("return &xdrwire.DecodeError{Kind: xdrwire.UnexpectedTag, Value: tag}")
		return
	}
	e.writeln(fmt.Sprintf("return &xdrwire.DecodeError{Kind: xdrwire.UnexpectedTag, Value: int64(v.%s)}", discField))
}

// uniqueArms returns u's arms in declaration order; every arm already
// carries its own field (possibly duplicated text across fall-through
// labels, but FieldDecl itself is per-arm in this grammar so there is
// nothing to deduplicate beyond what the parser already produced).
func uniqueArms(u *ast.UnionDecl) []*ast.UnionArm {
	return u.Arms
}
