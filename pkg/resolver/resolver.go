// Package resolver binds identifiers, folds constant expressions and
// classifies optional-pointer fields over a parsed ast.File, turning a
// syntactically valid schema into one the emitter can trust completely
// (§4.3).
package resolver

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// Resolver performs the single semantic pass described in §4.3. It is
// shaped after the teacher's SemanticAnalyzer: an Errors slice, an
// addError-style helper, and a Visitor-driven walk — but in place of the
// teacher's stack of lexical variable scopes, it tracks one flat
// package-level symbolTable, since XDR has no nested scopes.
type Resolver struct {
	ast.BaseVisitor

	symbols       *symbolTable
	declAt        map[string]int
	graph         *pointerGraph
	selfRef       map[string]bool
	selfLoopCount map[string]int
	builder       diag.Builder
	position      int
}

// New creates a Resolver ready to run over a single file.
func New() *Resolver {
	return &Resolver{
		symbols: newSymbolTable(),
		declAt:  make(map[string]int),
		graph:   newPointerGraph(),
	}
}

// Errors returns the diagnostics collected by the most recent Resolve.
func (r *Resolver) Errors() diag.Diagnostics {
	return r.builder.Diagnostics()
}

func (r *Resolver) errorf(pos lexer.Position, kind diag.Kind, format string, args ...any) {
	r.builder.Add(pos, kind, format, args...)
}

// Resolve runs the full pass over f and returns any diagnostics. A
// non-empty result means f must not be handed to the emitter (§4.3;
// §3: "nothing in the AST outlives emission" assumes a clean pass).
func Resolve(f *ast.File) diag.Diagnostics {
	r := New()
	r.declarePass(f)
	r.buildPointerGraph(f)
	r.selfRef = r.graph.selfReferential(r.structNames(f))
	r.selfLoopCount = r.countSelfLoops(f)
	r.bindPass(f)
	return r.Errors()
}

// countSelfLoops counts, per struct, how many of its own pointer fields
// name the struct itself directly (`T *next` inside `struct T`). §3
// only allows a self-referential struct to elide one such field into its
// container-head representation; classifyPointer rejects anything else.
func (r *Resolver) countSelfLoops(f *ast.File) map[string]int {
	counts := make(map[string]int)
	for _, d := range f.Decls {
		if d.Struct == nil {
			continue
		}
		for _, field := range d.Struct.Fields {
			if field.Pointer != nil && field.Pointer.Type.Name == d.Struct.Name {
				counts[d.Struct.Name]++
			}
		}
	}
	return counts
}

// declarePass populates the symbol table in file order, recording each
// name's declaration index so the bind pass can tell a forward reference
// (permitted only through a pointer, §4.3) from an ordinary one.
func (r *Resolver) declarePass(f *ast.File) {
	for i, d := range f.Decls {
		var sym *symbol
		switch {
		case d.Const != nil:
			sym = &symbol{kind: symConst, name: d.Const.Name, constD: d.Const}
		case d.Typedef != nil:
			name := d.Typedef.Decl.Name()
			sym = &symbol{kind: symTypedef, name: name, typeD: d.Typedef}
		case d.Enum != nil:
			sym = &symbol{kind: symEnum, name: d.Enum.Name, enumD: d.Enum}
		case d.Struct != nil:
			sym = &symbol{kind: symStruct, name: d.Struct.Name, structD: d.Struct}
		case d.Union != nil:
			sym = &symbol{kind: symUnion, name: d.Union.Name, unionD: d.Union}
		default:
			continue
		}

		if prior, dup := r.symbols.declare(sym); dup {
			r.builder.Add(d.Pos, diag.DuplicateName,
				"%q is already declared as a %s", sym.name, prior.kind)
			continue
		}
		r.declAt[sym.name] = i

		if d.Enum != nil {
			r.declareEnumVariants(d.Enum, i)
		}
	}
}

// declareEnumVariants adds each of an enum's variants to the same flat
// namespace the enum itself occupies, so a union case label can name a
// variant directly (`case RED:`) the way §4.3 item 4 requires — XDR has
// no qualified "Enum.Variant" syntax to disambiguate otherwise.
func (r *Resolver) declareEnumVariants(e *ast.EnumDecl, declIndex int) {
	for _, v := range e.Variants {
		sym := &symbol{kind: symEnumVariant, name: v.Name, enumD: e, variant: v}
		if prior, dup := r.symbols.declare(sym); dup {
			r.builder.Add(v.Pos, diag.DuplicateName,
				"%q is already declared as a %s", sym.name, prior.kind)
			continue
		}
		r.declAt[sym.name] = declIndex
	}
}

func (r *Resolver) structNames(f *ast.File) []string {
	var names []string
	for _, d := range f.Decls {
		if d.Struct != nil {
			names = append(names, d.Struct.Name)
		}
	}
	return names
}

// buildPointerGraph walks every struct field a second time (now that the
// full symbol table exists) to record struct-to-struct pointer edges,
// since a pointer field is allowed to name a struct declared later in
// the file.
func (r *Resolver) buildPointerGraph(f *ast.File) {
	for _, d := range f.Decls {
		if d.Struct == nil {
			continue
		}
		for _, field := range d.Struct.Fields {
			if field.Pointer == nil || !field.Pointer.Type.IsNamedRef() {
				continue
			}
			target, ok := r.symbols.lookup(field.Pointer.Type.Name)
			if ok && target.kind == symStruct {
				r.graph.addEdge(d.Struct.Name, target.name)
			}
		}
	}
}

// bindPass drives the real semantic pass through ast.Visitor, the same
// dispatch the teacher's SemanticAnalyzer rides over its own AST; r.position
// advances once per Visit call, which File.Walk issues in file order, so it
// always equals the index declarePass used for that declaration.
func (r *Resolver) bindPass(f *ast.File) {
	f.Walk(r)
}

func (r *Resolver) VisitConstDecl(d *ast.ConstDecl) {
	r.foldConst(d.Value)
	r.position++
}

func (r *Resolver) VisitTypedefDecl(d *ast.TypedefDecl) {
	r.resolveFieldDecl(d.Decl, "")
	r.position++
}

func (r *Resolver) VisitEnumDecl(e *ast.EnumDecl) {
	r.resolveEnum(e)
	r.position++
}

func (r *Resolver) VisitStructDecl(s *ast.StructDecl) {
	s.SelfReferential = r.selfRef[s.Name]
	for _, field := range s.Fields {
		r.resolveFieldDecl(field, s.Name)
	}
	r.position++
}

func (r *Resolver) VisitUnionDecl(u *ast.UnionDecl) {
	r.resolveUnion(u)
	r.position++
}

func (r *Resolver) VisitProgramDecl(p *ast.ProgramDecl) {
	r.resolveProgram(p)
	r.position++
}

func (r *Resolver) resolveEnum(e *ast.EnumDecl) {
	seen := make(map[int64]string, len(e.Variants))
	for _, v := range e.Variants {
		val, ok := r.foldConst(v.Value)
		if !ok {
			continue
		}
		if other, dup := seen[val]; dup {
			r.builder.Add(v.Pos, diag.BadConstExpr,
				"enum value %d reused by %q and %q", val, other, v.Name)
			continue
		}
		seen[val] = v.Name
	}
}

func (r *Resolver) resolveProgram(p *ast.ProgramDecl) {
	r.foldConst(p.Number)
	for _, v := range p.Versions {
		r.foldConst(v.Number)
		for _, proc := range v.Procedures {
			r.foldConst(proc.Number)
			r.resolveProcType(proc.Result)
			r.resolveProcType(proc.Arg)
		}
	}
}

func (r *Resolver) resolveProcType(t *ast.ProcType) {
	if t.Void {
		return
	}
	r.resolveTypeSpec(t.Spec, false)
}
