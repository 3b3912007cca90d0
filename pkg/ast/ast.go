// Package ast defines the Abstract Syntax Tree for the XDR+RPC schema
// language (RFC 4506 plus the RFC 5531 program/version/procedure
// extension). Every production follows the published grammar directly;
// the struct tags are a participle grammar, the same technique the
// teacher uses for its own language.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the root of a parsed schema: an ordered list of top-level
// declarations (§3, §4.2 "Top level").
type File struct {
	Pos   lexer.Position
	Decls []*TopDecl `@@*`
}

// TopDecl is one top-level declaration. Exactly one alternative is set.
type TopDecl struct {
	Pos     lexer.Position
	Const   *ConstDecl   `(   @@`
	Typedef *TypedefDecl ` | @@`
	Enum    *EnumDecl    ` | @@`
	Struct  *StructDecl  ` | @@`
	Union   *UnionDecl   ` | @@`
	Program *ProgramDecl ` | @@ )`
}

// ConstExpr is an XDR constant expression: a literal integer, a literal
// "true"/"false" (only legal as a union case label, where the discriminant
// is bool — §4.3 item 4), or a reference to a prior const declaration
// (§4.3 item 2: these are the only foldable forms; the parser does not
// fold, it only records which form this is).
//
// "true" and "false" are reserved words (the "Keyword" lexer rule matches
// them before "Ident" ever gets a chance), so they cannot be captured by
// @Ident; they need their own literal alternative, the same workaround the
// teacher's own Literal.Bool field uses.
type ConstExpr struct {
	Pos     lexer.Position
	Literal string `(  @Int`
	Bool    string ` | @("true" | "false")`
	Ref     string ` | @Ident )`

	// Value and Resolved are filled in by the resolver (§4.3 item 2).
	Value    int64
	Resolved bool
}

// IsLiteral reports whether this expression is a literal integer rather
// than a reference to a named constant.
func (c *ConstExpr) IsLiteral() bool {
	return c.Literal != ""
}

// IsBoolLiteral reports whether this expression is the literal "true" or
// "false".
func (c *ConstExpr) IsBoolLiteral() bool {
	return c.Bool != ""
}

// ConstDecl is `const NAME = expr;`.
type ConstDecl struct {
	Pos   lexer.Position
	Name  string     `"const" @Ident "="`
	Value *ConstExpr `@@ ";"`
}

// TypeSpec is the "type-specifier" non-terminal: an optional "unsigned"
// modifier followed by one of the primitive base keywords, or a bare
// identifier referencing a previously declared typedef/enum/struct/union.
type TypeSpec struct {
	Pos      lexer.Position
	Unsigned bool   `@"unsigned"?`
	Base     string `(  @("int" | "hyper" | "float" | "double" | "bool")`
	Name     string ` | @Ident )`

	// Resolved is filled in by the resolver for NamedRef specs; nil for
	// primitives and nil until resolution runs.
	Resolved *Resolution
}

// IsNamedRef reports whether this type-specifier names another
// declaration rather than a primitive.
func (t *TypeSpec) IsNamedRef() bool {
	return t.Base == "" && t.Name != ""
}

// Resolution is filled in by the resolver when Name references a prior
// declaration. Exactly one field is set, mirroring the one-of shape used
// throughout this package.
type Resolution struct {
	Typedef *TypedefDecl
	Enum    *EnumDecl
	Struct  *StructDecl
	Union   *UnionDecl
}

// OpaqueDecl is `opaque NAME[N];` or `opaque NAME<N?>;`.
type OpaqueDecl struct {
	Pos   lexer.Position
	Name  string     `"opaque" @Ident`
	Fixed *ConstExpr `(   "[" @@ "]"`
	Var   *ConstExpr ` | "<" @@? ">" )`
}

// IsFixed reports whether this is a fixed-length opaque array.
func (o *OpaqueDecl) IsFixed() bool {
	return o.Fixed != nil
}

// StringDecl is `string NAME<N?>;`.
type StringDecl struct {
	Pos  lexer.Position
	Name string     `"string" @Ident`
	Cap  *ConstExpr `"<" @@? ">"`
}

// PointerField is `type-specifier *NAME;` — a candidate for either a
// plain optional or a container-head field once resolved (§3).
type PointerField struct {
	Pos  lexer.Position
	Type *TypeSpec `@@ "*"`
	Name string    `@Ident`

	// Classification is filled in by the resolver (§4.3 item 3) and read
	// only by the emitter.
	Classification PointerClass
	// Elided marks a field that exists in the schema but is folded into
	// an owning struct's container representation instead of being
	// emitted on this type (the "next" pointer of a self-referential
	// struct consumed by a container head elsewhere).
	Elided bool
}

// PointerClass is the resolver's verdict on a `T *name` field.
type PointerClass int

const (
	// ClassUnresolved is the zero value, before the resolver runs.
	ClassUnresolved PointerClass = iota
	// ClassPlainOptional means the field is a presence-tagged value:
	// absent (nil) or one T.
	ClassPlainOptional
	// ClassContainerHead means the field is the head of a flattened,
	// owned sequence of T — the linked list that T's own self-reference
	// forms is never represented as such in the generated code.
	ClassContainerHead
)

// PlainField is `type-specifier NAME;`, optionally followed by a fixed
// array length `[N]` or variable-array cap `<N?>`.
type PlainField struct {
	Pos      lexer.Position
	Type     *TypeSpec  `@@`
	Name     string     `@Ident`
	FixedLen *ConstExpr `( "[" @@ "]" )?`
	VarLen   *ConstExpr `( "<" @@? ">" )?`
}

// IsFixedArray reports a `T name[N]` declaration.
func (p *PlainField) IsFixedArray() bool { return p.FixedLen != nil }

// IsVarArray reports a `T name<N?>` declaration.
func (p *PlainField) IsVarArray() bool { return p.VarLen != nil }

// FieldDecl is the "declaration" non-terminal (RFC 4506 §6.3): any field
// shape that can appear in a struct body, a union arm, or after
// `typedef`. Exactly one alternative is set, except Void which carries no
// payload.
type FieldDecl struct {
	Pos     lexer.Position
	Void    bool          `(  @"void"`
	Opaque  *OpaqueDecl   ` | @@`
	Str     *StringDecl   ` | @@`
	Pointer *PointerField ` | @@`
	Plain   *PlainField   ` | @@ )`
}

// Name returns the declared field name, or "" for a void field.
func (f *FieldDecl) Name() string {
	switch {
	case f.Void:
		return ""
	case f.Opaque != nil:
		return f.Opaque.Name
	case f.Str != nil:
		return f.Str.Name
	case f.Pointer != nil:
		return f.Pointer.Name
	case f.Plain != nil:
		return f.Plain.Name
	default:
		return ""
	}
}

// StructDecl is `struct NAME { field; field; ... };`.
type StructDecl struct {
	Pos    lexer.Position
	Name   string       `"struct" @Ident "{"`
	Fields []*FieldDecl `( @@ ";" )* "}" ";"`

	// SelfReferential is set by the resolver's pointer-graph cycle check
	// (§4.3 item 3): true when this struct participates in a cycle of
	// struct-pointer edges, directly or through other structs.
	SelfReferential bool
}

// EnumVariant is one `NAME = expr` pair inside an enum body.
type EnumVariant struct {
	Pos   lexer.Position
	Name  string     `@Ident "="`
	Value *ConstExpr `@@`
}

// EnumDecl is `enum NAME { V1 = e1, V2 = e2, ... };`.
type EnumDecl struct {
	Pos      lexer.Position
	Name     string         `"enum" @Ident "{"`
	Variants []*EnumVariant `@@ ( "," @@ )* "}" ";"`
}

// CaseLabel is one `case VALUE:` prefix of a union arm. A single arm may
// carry more than one label (RFC 4506 §6, "fall-through" cases).
type CaseLabel struct {
	Pos   lexer.Position
	Value *ConstExpr `"case" @@ ":"`
}

// UnionArm is one or more case labels sharing a single field body.
type UnionArm struct {
	Pos    lexer.Position
	Labels []*CaseLabel `@@+`
	Field  *FieldDecl   `@@ ";"`
}

// DefaultArm is the optional `default: field;` clause.
type DefaultArm struct {
	Pos   lexer.Position
	Field *FieldDecl `"default" ":" @@ ";"`
}

// UnionDecl is `union NAME switch (discriminant) { arms... [default] };`.
type UnionDecl struct {
	Pos     lexer.Position
	Name    string      `"union" @Ident "switch" "("`
	Disc    *FieldDecl  `@@ ")" "{"`
	Arms    []*UnionArm `@@+`
	Default *DefaultArm `@@? "}" ";"`

	// DiscEnum is set by the resolver when the discriminant is an enum
	// type, so the emitter can generate a Go-native switch over the
	// enum's constants instead of a raw integer.
	DiscEnum *EnumDecl
}

// TypedefDecl is `typedef declaration;` — any field shape, bound to a new
// top-level name instead of a struct member.
type TypedefDecl struct {
	Pos  lexer.Position
	Decl *FieldDecl `"typedef" @@ ";"`
}

// ProcType is a procedure's argument or result type: either "void" or a
// type-specifier (always a NamedRef in practice, since RPC procedures
// exchange declared structs, not raw scalars, in every schema this tool
// targets — but the grammar does not require that).
type ProcType struct {
	Pos  lexer.Position
	Void bool      `(  @"void"`
	Spec *TypeSpec ` | @@ )`
}

// ProcedureDecl is `result NAME(arg) = N;` inside a version block.
type ProcedureDecl struct {
	Pos    lexer.Position
	Result *ProcType  `@@`
	Name   string     `@Ident "("`
	Arg    *ProcType  `@@ ")" "="`
	Number *ConstExpr `@@ ";"`
}

// VersionDecl is `version NAME { procedure...  } = N;` inside a program.
type VersionDecl struct {
	Pos        lexer.Position
	Name       string           `"version" @Ident "{"`
	Procedures []*ProcedureDecl `@@+ "}" "="`
	Number     *ConstExpr       `@@ ";"`
}

// ProgramDecl is `program NAME { version...  } = N;` (RFC 5531).
type ProgramDecl struct {
	Pos      lexer.Position
	Name     string         `"program" @Ident "{"`
	Versions []*VersionDecl `@@+ "}" "="`
	Number   *ConstExpr     `@@ ";"`
}
