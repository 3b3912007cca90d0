package codegen

import (
	"fmt"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
)

// VisitProgramDecl emits an RPC program declaration as a manifest
// comment plus a runtime-accessible Go value describing the same thing.
// Per §4.4, program/version/procedure never introduce a wire
// representation or codec of their own — procedures exchange values of
// types declared elsewhere in the file, which already have their own
// EncodeXDR/DecodeXDR — but §4.4 requires the manifest be "sufficient for
// a separate RPC layer to dispatch," and a source comment alone is not
// readable by another Go program. The exported <Name>Program value below
// carries every program/version/procedure number and name the comment
// does, so a dispatcher can range over it instead of parsing comments.
func (e *Emitter) VisitProgramDecl(p *ast.ProgramDecl) {
	e.writeln(fmt.Sprintf("// Program %s = %d", p.Name, p.Number.Value))
	for _, ver := range p.Versions {
		e.writeln(fmt.Sprintf("//   Version %s = %d", ver.Name, ver.Number.Value))
		for _, proc := range ver.Procedures {
			e.writeln(fmt.Sprintf("//     %s(%s) %s = %d",
				proc.Name, procTypeName(proc.Arg), procTypeName(proc.Result), proc.Number.Value))
		}
	}
	e.writeln("")

	name := exportedIdent(p.Name)

	e.writeln(fmt.Sprintf("// %sProcedure names one procedure of the %s program: its RPC", name, p.Name))
	e.writeln("// number and the Go type names of its argument and result (\"void\" for")
	e.writeln("// a procedure that takes or returns nothing).")
	e.writeln(fmt.Sprintf("type %sProcedure struct {", name))
	e.increaseIndent()
	e.writeln("Name   string")
	e.writeln("Number int32")
	e.writeln("Arg    string")
	e.writeln("Result string")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	e.writeln(fmt.Sprintf("// %sVersion names one version of the %s program and its procedures.", name, p.Name))
	e.writeln(fmt.Sprintf("type %sVersion struct {", name))
	e.increaseIndent()
	e.writeln("Name       string")
	e.writeln("Number     int32")
	e.writeln(fmt.Sprintf("Procedures []%sProcedure", name))
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	e.writeln(fmt.Sprintf("// %sProgram is the %s RPC program manifest (RFC 5531): every version", name, p.Name))
	e.writeln("// and procedure number declared for it, for a separate RPC layer to")
	e.writeln("// dispatch on without re-parsing this schema.")
	e.writeln(fmt.Sprintf("var %sProgram = struct {", name))
	e.increaseIndent()
	e.writeln("Name     string")
	e.writeln("Number   int32")
	e.writeln(fmt.Sprintf("Versions []%sVersion", name))
	e.decreaseIndent()
	e.writeln("}{")
	e.increaseIndent()
	e.writeln(fmt.Sprintf("Name:   %q,", p.Name))
	e.writeln(fmt.Sprintf("Number: %d,", p.Number.Value))
	e.writeln("Versions: []" + name + "Version{")
	e.increaseIndent()
	for _, ver := range p.Versions {
		e.writeln("{")
		e.increaseIndent()
		e.writeln(fmt.Sprintf("Name:   %q,", ver.Name))
		e.writeln(fmt.Sprintf("Number: %d,", ver.Number.Value))
		e.writeln("Procedures: []" + name + "Procedure{")
		e.increaseIndent()
		for _, proc := range ver.Procedures {
			e.writeln(fmt.Sprintf("{Name: %q, Number: %d, Arg: %q, Result: %q},",
				proc.Name, proc.Number.Value, procTypeName(proc.Arg), procTypeName(proc.Result)))
		}
		e.decreaseIndent()
		e.writeln("},")
		e.decreaseIndent()
		e.writeln("},")
	}
	e.decreaseIndent()
	e.writeln("},")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}

func procTypeName(t *ast.ProcType) string {
	if t.Void {
		return "void"
	}
	return goType(t.Spec)
}
