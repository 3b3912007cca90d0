package resolver

import (
	"github.com/lanl/nfs-utility-suite/pkg/ast"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// resolveFieldDecl resolves the "declaration" non-terminal (§3, §4.3):
// whichever of Opaque/Str/Pointer/Plain is set on field. ownerStruct is
// the enclosing struct's name for pointer-field classification, or "" for
// a typedef or union-arm field, which has no owning struct to weigh
// against in the container-head rule.
func (r *Resolver) resolveFieldDecl(field *ast.FieldDecl, ownerStruct string) {
	switch {
	case field.Void:
		return
	case field.Opaque != nil:
		if field.Opaque.Fixed != nil {
			r.foldConst(field.Opaque.Fixed)
		}
		if field.Opaque.Var != nil {
			r.foldConst(field.Opaque.Var)
		}
	case field.Str != nil:
		if field.Str.Cap != nil {
			r.foldConst(field.Str.Cap)
		}
	case field.Pointer != nil:
		// A pointer field is exactly where forward references are
		// permitted (§4.3: "forward references are permitted only via
		// optional pointers").
		r.resolveTypeSpec(field.Pointer.Type, true)
		r.classifyPointer(ownerStruct, field.Pointer)
	case field.Plain != nil:
		r.resolveTypeSpec(field.Plain.Type, false)
		if field.Plain.FixedLen != nil {
			r.foldConst(field.Plain.FixedLen)
		}
		if field.Plain.VarLen != nil {
			r.foldConst(field.Plain.VarLen)
		}
		r.rejectBareSelfReference(field.Plain.Type)
	}
}

// resolveTypeSpec binds a NamedRef TypeSpec to its declaration. Primitive
// specs (Base set) need no binding. allowForward controls whether a name
// declared later in the file is accepted; only pointer fields pass true.
func (r *Resolver) resolveTypeSpec(ts *ast.TypeSpec, allowForward bool) {
	if !ts.IsNamedRef() {
		return
	}

	sym, ok := r.symbols.lookup(ts.Name)
	if !ok {
		r.errorf(ts.Pos, diag.UnresolvedName, "undefined type %q%s",
			ts.Name, diag.Suggest(ts.Name, r.symbols.names()))
		return
	}

	if !allowForward && r.declAt[ts.Name] > r.position {
		r.errorf(ts.Pos, diag.UnresolvedName,
			"%q is declared later in the file; forward references are permitted only through a pointer field", ts.Name)
		return
	}

	res := &ast.Resolution{}
	switch sym.kind {
	case symTypedef:
		res.Typedef = sym.typeD
	case symEnum:
		res.Enum = sym.enumD
	case symStruct:
		res.Struct = sym.structD
	case symUnion:
		res.Union = sym.unionD
	case symConst:
		r.errorf(ts.Pos, diag.UnresolvedName, "%q is a constant, not a type", ts.Name)
		return
	}
	ts.Resolved = res
}

// rejectBareSelfReference enforces §4.3 item 3's last clause: a
// self-referential struct may only appear behind a pointer (either as a
// plain optional, when its owner is also self-referential and the field
// is elided, or as a container head). Naming it directly, by value,
// anywhere else is unrepresentable.
func (r *Resolver) rejectBareSelfReference(ts *ast.TypeSpec) {
	if ts.Resolved == nil || ts.Resolved.Struct == nil {
		return
	}
	if r.selfRef[ts.Resolved.Struct.Name] {
		r.errorf(ts.Pos, diag.UnsupportedOptional,
			"%q is self-referential and can only be used behind a pointer field", ts.Resolved.Struct.Name)
	}
}

// classifyPointer implements §4.3 item 3's classification table for a
// single `T *name` field. Eliding a field is only valid for the one,
// direct self-loop pointer a self-referential struct holds on itself
// (`struct T { T *next; }`); any other shape touching a self-referential
// struct — a second self-loop field, or a cycle closed through a
// different struct entirely — is rejected rather than silently folded
// away, per §3's "the only occurrence of the cyclic reference; any other
// shape is rejected".
func (r *Resolver) classifyPointer(ownerStruct string, pf *ast.PointerField) {
	if !pf.Type.IsNamedRef() || pf.Type.Resolved == nil || pf.Type.Resolved.Struct == nil {
		// Pointer to a non-struct (enum, union, unresolved): always a
		// plain presence-tagged optional, since only struct-to-struct
		// edges participate in the container-head rule.
		pf.Classification = ast.ClassPlainOptional
		return
	}

	target := pf.Type.Resolved.Struct.Name
	targetSelfRef := r.selfRef[target]
	ownerSelfRef := ownerStruct != "" && r.selfRef[ownerStruct]
	directSelfLoop := ownerStruct != "" && target == ownerStruct

	switch {
	case targetSelfRef && !ownerSelfRef:
		pf.Classification = ast.ClassContainerHead
	case directSelfLoop && r.selfLoopCount[ownerStruct] == 1:
		// This is the "next" edge that makes owner cyclic in the first
		// place; it is folded into the container-head field found
		// elsewhere and carries no representation of its own.
		pf.Classification = ast.ClassPlainOptional
		pf.Elided = true
	case targetSelfRef && ownerSelfRef:
		// Either a second self-loop field on the same struct, or a cycle
		// closed through a distinct struct (mutual recursion) — neither
		// shape can be flattened into a single container-head field.
		r.errorf(pf.Pos, diag.UnsupportedOptional,
			"%q has more than one self-referential pointer shape; only a single direct self-loop field can be elided", ownerStruct)
		pf.Classification = ast.ClassPlainOptional
	default:
		pf.Classification = ast.ClassPlainOptional
	}
}
