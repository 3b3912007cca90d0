package codegen

import (
	"fmt"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
)

// generateTypedef emits a named Go type for `typedef declaration;` plus
// full EncodeXDR/DecodeXDR methods, so a typedef'd name is usable
// anywhere a struct/union/enum name is (nested fields, array elements,
// procedure arguments).
func (e *Emitter) generateTypedef(td *ast.TypedefDecl) {
	field := td.Decl
	name := exportedIdent(field.Name())

	e.writeln(fmt.Sprintf("type %s ", name) + typedefUnderlying(field))
	e.writeln("")

	e.writeln(fmt.Sprintf("func (v %s) EncodeXDR() []byte {", name))
	e.increaseIndent()
	e.writeln("w := xdrwire.NewWriter()")
	e.writeTypedefEncodeBody(field)
	e.writeln("return w.Bytes()")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	e.writeln(fmt.Sprintf("func (v *%s) DecodeXDR(c *xdrwire.Cursor) error {", name))
	e.increaseIndent()
	e.writeTypedefDecodeBody(field)
	e.writeln("return nil")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}

// typedefUnderlying returns the Go type a typedef aliases to. A typedef
// is a single FieldDecl bound to a name rather than a struct member, so
// it reuses the same shape logic as a struct field's definition line —
// minus the trailing field name.
func typedefUnderlying(f *ast.FieldDecl) string {
	switch {
	case f.Opaque != nil:
		if f.Opaque.IsFixed() {
			return fmt.Sprintf("[%d]byte", f.Opaque.Fixed.Value)
		}
		return "[]byte"
	case f.Str != nil:
		return "string"
	case f.Pointer != nil:
		elem := goType(f.Pointer.Type)
		if f.Pointer.Classification == ast.ClassContainerHead {
			return "[]" + elem
		}
		return "*" + elem
	case f.Plain != nil:
		base := goType(f.Plain.Type)
		switch {
		case f.Plain.IsFixedArray():
			return fmt.Sprintf("[%d]%s", f.Plain.FixedLen.Value, base)
		case f.Plain.IsVarArray():
			return "[]" + base
		default:
			return base
		}
	default:
		return "struct{}"
	}
}

// writeTypedefEncodeBody and writeTypedefDecodeBody reuse the struct
// field codecs against the receiver itself: a typedef's value plays the
// role a named struct field normally would.
func (e *Emitter) writeTypedefEncodeBody(f *ast.FieldDecl) {
	e.writeFieldEncodeInto(f, "v")
}

func (e *Emitter) writeTypedefDecodeBody(f *ast.FieldDecl) {
	e.writeFieldDecodeInto(f, "(*v)")
}
