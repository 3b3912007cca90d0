package ast

// Visitor defines one method per top-level declaration kind. The
// resolver and the code emitter both implement it by embedding
// BaseVisitor and overriding only the methods they care about, the same
// pattern the teacher's SemanticAnalyzer uses over its own Visitor.
type Visitor interface {
	VisitFile(*File)
	VisitConstDecl(*ConstDecl)
	VisitTypedefDecl(*TypedefDecl)
	VisitEnumDecl(*EnumDecl)
	VisitStructDecl(*StructDecl)
	VisitUnionDecl(*UnionDecl)
	VisitProgramDecl(*ProgramDecl)
}

// Node is implemented by every node that can dispatch to a Visitor.
type Node interface {
	Accept(v Visitor)
}

func (n *File) Accept(v Visitor) { v.VisitFile(n) }

// Walk dispatches each top-level declaration in n to the matching Visitor
// method, in declaration order — the order every later pass depends on
// (§4.3: "declarations are visible only after their definition").
func (n *File) Walk(v Visitor) {
	for _, d := range n.Decls {
		switch {
		case d.Const != nil:
			v.VisitConstDecl(d.Const)
		case d.Typedef != nil:
			v.VisitTypedefDecl(d.Typedef)
		case d.Enum != nil:
			v.VisitEnumDecl(d.Enum)
		case d.Struct != nil:
			v.VisitStructDecl(d.Struct)
		case d.Union != nil:
			v.VisitUnionDecl(d.Union)
		case d.Program != nil:
			v.VisitProgramDecl(d.Program)
		}
	}
}

func (n *ConstDecl) Accept(v Visitor)   { v.VisitConstDecl(n) }
func (n *TypedefDecl) Accept(v Visitor) { v.VisitTypedefDecl(n) }
func (n *EnumDecl) Accept(v Visitor)    { v.VisitEnumDecl(n) }
func (n *StructDecl) Accept(v Visitor)  { v.VisitStructDecl(n) }
func (n *UnionDecl) Accept(v Visitor)   { v.VisitUnionDecl(n) }
func (n *ProgramDecl) Accept(v Visitor) { v.VisitProgramDecl(n) }
