package ast

// BaseVisitor is a no-op Visitor implementation. Passes embed it and
// override only the declaration kinds they care about, matching the
// teacher's ast.BaseVisitor (there every method is a no-op default that
// SemanticAnalyzer and friends selectively shadow).
type BaseVisitor struct{}

func (BaseVisitor) VisitFile(*File)               {}
func (BaseVisitor) VisitConstDecl(*ConstDecl)     {}
func (BaseVisitor) VisitTypedefDecl(*TypedefDecl) {}
func (BaseVisitor) VisitEnumDecl(*EnumDecl)       {}
func (BaseVisitor) VisitStructDecl(*StructDecl)   {}
func (BaseVisitor) VisitUnionDecl(*UnionDecl)     {}
func (BaseVisitor) VisitProgramDecl(*ProgramDecl) {}
