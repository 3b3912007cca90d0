package codegen

import (
	"fmt"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
)

// VisitStructDecl emits a Go struct plus its EncodeXDR/DecodeXDR methods.
// Elided fields (the "next" pointer folded into a container-head field
// elsewhere, §4.3 item 3) are skipped entirely; everything else is
// emitted in schema field order.
func (e *Emitter) VisitStructDecl(s *ast.StructDecl) {
	name := exportedIdent(s.Name)

	e.writeln(fmt.Sprintf("type %s struct {", name))
	e.increaseIndent()
	for _, field := range s.Fields {
		if isElided(field) {
			continue
		}
		e.writeFieldDef(field)
	}
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	e.writeln(fmt.Sprintf("func (v %s) EncodeXDR() []byte {", name))
	e.increaseIndent()
	e.writeln("w := xdrwire.NewWriter()")
	for _, field := range s.Fields {
		if isElided(field) {
			continue
		}
		e.writeFieldEncode(field)
	}
	e.writeln("return w.Bytes()")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	e.writeln(fmt.Sprintf("func (v *%s) DecodeXDR(c *xdrwire.Cursor) error {", name))
	e.increaseIndent()
	for _, field := range s.Fields {
		if isElided(field) {
			continue
		}
		e.writeFieldDecode(field)
	}
	e.writeln("return nil")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}

func isElided(f *ast.FieldDecl) bool {
	return f.Pointer != nil && f.Pointer.Elided
}

// fieldName returns the exported Go field name for any FieldDecl shape.
func fieldName(f *ast.FieldDecl) string {
	return exportedIdent(f.Name())
}
