package codegen

import (
	"fmt"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
)

// writeFieldDef emits the struct-field line for f. Void fields contribute
// nothing (§3: void carries no payload).
func (e *Emitter) writeFieldDef(f *ast.FieldDecl) {
	switch {
	case f.Void:
		return
	case f.Opaque != nil:
		if f.Opaque.IsFixed() {
			e.writeln(fmt.Sprintf("%s [%d]byte", fieldName(f), f.Opaque.Fixed.Value))
		} else {
			e.writeln(fmt.Sprintf("%s []byte", fieldName(f)))
		}
	case f.Str != nil:
		e.writeln("// Built from the raw wire bytes; not validated as UTF-8.")
		e.writeln(fmt.Sprintf("%s string", fieldName(f)))
	case f.Pointer != nil:
		elem := goType(f.Pointer.Type)
		if f.Pointer.Classification == ast.ClassContainerHead {
			e.writeln(fmt.Sprintf("%s []%s", fieldName(f), elem))
		} else {
			e.writeln(fmt.Sprintf("%s *%s", fieldName(f), elem))
		}
	case f.Plain != nil:
		base := goType(f.Plain.Type)
		switch {
		case f.Plain.IsFixedArray():
			e.writeln(fmt.Sprintf("%s [%d]%s", fieldName(f), f.Plain.FixedLen.Value, base))
		case f.Plain.IsVarArray():
			e.writeln(fmt.Sprintf("%s []%s", fieldName(f), base))
		default:
			e.writeln(fmt.Sprintf("%s %s", fieldName(f), base))
		}
	}
}

// capOf returns the declared max cap for a ConstExpr, or 0 if unbounded
// (no cap was written in the schema).
func capOf(e *ast.ConstExpr) int64 {
	if e == nil {
		return 0
	}
	return e.Value
}

// writeFieldEncode emits the statements that encode f from v.<Field> into
// w.
func (e *Emitter) writeFieldEncode(f *ast.FieldDecl) {
	e.writeFieldEncodeInto(f, "v."+fieldName(f))
}

// writeFieldEncodeInto is writeFieldEncode generalized over the receiver
// expression, so a typedef (where the whole value plays the role a
// struct field normally would) can reuse the same per-shape logic.
func (e *Emitter) writeFieldEncodeInto(f *ast.FieldDecl, recv string) {
	switch {
	case f.Void:
		return

	case f.Opaque != nil:
		if f.Opaque.IsFixed() {
			e.writeln(fmt.Sprintf("w.WriteOpaqueFixed(%s[:])", recv))
		} else {
			e.writeln(fmt.Sprintf("w.WriteOpaqueVar(%s)", recv))
		}

	case f.Str != nil:
		e.writeln(fmt.Sprintf("w.WriteString(%s)", recv))

	case f.Pointer != nil:
		e.writeEncodePointer(f, recv)

	case f.Plain != nil:
		e.writeEncodePlain(f, recv)
	}
}

func (e *Emitter) writeEncodePointer(f *ast.FieldDecl, recv string) {
	if f.Pointer.Classification == ast.ClassContainerHead {
		e.writeln(fmt.Sprintf("for i := range %s {", recv))
		e.increaseIndent()
		e.writeln("w.WriteBool(true)")
		e.writeln(fmt.Sprintf("w.WriteRaw(%s[i].EncodeXDR())", recv))
		e.decreaseIndent()
		e.writeln("}")
		e.writeln("w.WriteBool(false)")
		return
	}

	e.writeln(fmt.Sprintf("w.WriteBool(%s != nil)", recv))
	e.writeln(fmt.Sprintf("if %s != nil {", recv))
	e.increaseIndent()
	e.writeln(fmt.Sprintf("w.WriteRaw(%s.EncodeXDR())", recv))
	e.decreaseIndent()
	e.writeln("}")
}

func (e *Emitter) writeEncodePlain(f *ast.FieldDecl, recv string) {
	t := f.Plain.Type

	switch {
	case f.Plain.IsFixedArray(), f.Plain.IsVarArray():
		if f.Plain.IsVarArray() {
			e.writeln(fmt.Sprintf("w.WriteUint32(uint32(len(%s)))", recv))
		}
		e.writeln(fmt.Sprintf("for i := range %s {", recv))
		e.increaseIndent()
		e.writeScalarEncode(t, recv+"[i]")
		e.decreaseIndent()
		e.writeln("}")

	default:
		e.writeScalarEncode(t, recv)
	}
}

// writeScalarEncode emits one encode statement for a single value of type
// t (no array/pointer wrapping).
func (e *Emitter) writeScalarEncode(t *ast.TypeSpec, expr string) {
	if t.IsNamedRef() {
		e.writeln(fmt.Sprintf("w.WriteRaw(%s.EncodeXDR())", expr))
		return
	}
	e.writeln(fmt.Sprintf("w.%s(%s)", wireWriteMethod(t), expr))
}

// writeFieldDecode emits the statements that decode f into v.<Field> from
// c, in the same shape writeFieldEncode produced.
func (e *Emitter) writeFieldDecode(f *ast.FieldDecl) {
	e.writeFieldDecodeInto(f, "v."+fieldName(f))
}

// writeFieldDecodeInto is writeFieldDecode generalized over the receiver
// expression; see writeFieldEncodeInto.
func (e *Emitter) writeFieldDecodeInto(f *ast.FieldDecl, recv string) {
	switch {
	case f.Void:
		return

	case f.Opaque != nil:
		e.writeDecodeOpaque(f, recv)

	case f.Str != nil:
		max := capOf(f.Str.Cap)
		e.writeln(fmt.Sprintf("if s, err := c.ReadString(%d); err != nil {", max))
		e.increaseIndent()
		e.writeln("return err")
		e.decreaseIndent()
		e.writeln(fmt.Sprintf("} else { %s = s }", recv))

	case f.Pointer != nil:
		e.writeDecodePointer(f, recv)

	case f.Plain != nil:
		e.writeDecodePlain(f, recv)
	}
}

func (e *Emitter) writeDecodeOpaque(f *ast.FieldDecl, recv string) {
	if f.Opaque.IsFixed() {
		n := f.Opaque.Fixed.Value
		e.writeln(fmt.Sprintf("if b, err := c.ReadOpaqueFixed(%d); err != nil {", n))
		e.increaseIndent()
		e.writeln("return err")
		e.decreaseIndent()
		e.writeln(fmt.Sprintf("} else { copy(%s[:], b) }", recv))
		return
	}
	max := capOf(f.Opaque.Var)
	e.writeln(fmt.Sprintf("if b, err := c.ReadOpaqueVar(%d); err != nil {", max))
	e.increaseIndent()
	e.writeln("return err")
	e.decreaseIndent()
	e.writeln(fmt.Sprintf("} else { %s = b }", recv))
}

func (e *Emitter) writeDecodePointer(f *ast.FieldDecl, recv string) {
	elemType := goType(f.Pointer.Type)
	if f.Pointer.Classification == ast.ClassContainerHead {
		e.writeln(fmt.Sprintf("%s = nil", recv))
		e.writeln("for {")
		e.increaseIndent()
		e.writeln("more, err := c.ReadBool()")
		e.writeln("if err != nil {")
		e.increaseIndent()
		e.writeln("return err")
		e.decreaseIndent()
		e.writeln("}")
		e.writeln("if !more {")
		e.increaseIndent()
		e.writeln("break")
		e.decreaseIndent()
		e.writeln("}")
		e.writeln(fmt.Sprintf("var elem %s", elemType))
		e.writeln("if err := elem.DecodeXDR(c); err != nil {")
		e.increaseIndent()
		e.writeln("return err")
		e.decreaseIndent()
		e.writeln("}")
		e.writeln(fmt.Sprintf("%s = append(%s, elem)", recv, recv))
		e.decreaseIndent()
		e.writeln("}")
		return
	}

	e.writeln("present, err := c.ReadBool()")
	e.writeln("if err != nil {")
	e.increaseIndent()
	e.writeln("return err")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("if present {")
	e.increaseIndent()
	e.writeln(fmt.Sprintf("%s = new(%s)", recv, elemType))
	e.writeln(fmt.Sprintf("if err := %s.DecodeXDR(c); err != nil {", recv))
	e.increaseIndent()
	e.writeln("return err")
	e.decreaseIndent()
	e.writeln("}")
	e.decreaseIndent()
	e.writeln("} else {")
	e.increaseIndent()
	e.writeln(fmt.Sprintf("%s = nil", recv))
	e.decreaseIndent()
	e.writeln("}")
}

func (e *Emitter) writeDecodePlain(f *ast.FieldDecl, recv string) {
	t := f.Plain.Type

	switch {
	case f.Plain.IsFixedArray():
		n := f.Plain.FixedLen.Value
		e.writeln(fmt.Sprintf("for i := 0; i < %d; i++ {", n))
		e.increaseIndent()
		e.writeScalarDecode(t, recv+"[i]")
		e.decreaseIndent()
		e.writeln("}")

	case f.Plain.IsVarArray():
		max := capOf(f.Plain.VarLen)
		e.writeln(fmt.Sprintf("n, err := c.ReadArrayLen(%d)", max))
		e.writeln("if err != nil {")
		e.increaseIndent()
		e.writeln("return err")
		e.decreaseIndent()
		e.writeln("}")
		e.writeln(fmt.Sprintf("%s = make([]%s, n)", recv, goType(t)))
		e.writeln(fmt.Sprintf("for i := range %s {", recv))
		e.increaseIndent()
		e.writeScalarDecode(t, recv+"[i]")
		e.decreaseIndent()
		e.writeln("}")

	default:
		e.writeScalarDecode(t, recv)
	}
}

func (e *Emitter) writeScalarDecode(t *ast.TypeSpec, recv string) {
	if t.IsNamedRef() {
		e.writeln(fmt.Sprintf("if err := (&%s).DecodeXDR(c); err != nil {", recv))
		e.increaseIndent()
		e.writeln("return err")
		e.decreaseIndent()
		e.writeln("}")
		return
	}
	e.writeln(fmt.Sprintf("if val, err := c.%s(); err != nil {", wireReadMethod(t)))
	e.increaseIndent()
	e.writeln("return err")
	e.decreaseIndent()
	e.writeln(fmt.Sprintf("} else { %s = val }", recv))
}
