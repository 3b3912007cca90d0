package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
)

// generateEnumCodec emits EncodeXDR/DecodeXDR for an enum type. Decoding
// enforces §8's enum-tightness property: any wire value not listed as a
// variant is UnknownEnum, never silently accepted.
func (e *Emitter) generateEnumCodec(en *ast.EnumDecl) {
	name := exportedIdent(en.Name)

	e.writeln(fmt.Sprintf("func (v %s) EncodeXDR() []byte {", name))
	e.increaseIndent()
	e.writeln("w := xdrwire.NewWriter()")
	e.writeln("w.WriteInt32(int32(v))")
	e.writeln("return w.Bytes()")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")

	values := make([]string, len(en.Variants))
	for i, variant := range en.Variants {
		values[i] = strconv.FormatInt(variant.Value.Value, 10)
	}

	e.writeln(fmt.Sprintf("func (v *%s) DecodeXDR(c *xdrwire.Cursor) error {", name))
	e.increaseIndent()
	e.writeln("raw, err := c.ReadInt32()")
	e.writeln("if err != nil {")
	e.increaseIndent()
	e.writeln("return err")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("switch raw {")
	e.writeln(fmt.Sprintf("case %s:", strings.Join(values, ", ")))
	e.increaseIndent()
	e.writeln(fmt.Sprintf("*v = %s(raw)", name))
	e.decreaseIndent()
	e.writeln("default:")
	e.increaseIndent()
	e.writeln(`return &xdrwire.DecodeError{Kind: xdrwire.UnknownEnum, Value: int64(raw)}`)
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("return nil")
	e.decreaseIndent()
	e.writeln("}")
	e.writeln("")
}
