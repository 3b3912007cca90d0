package codegen

import "github.com/lanl/nfs-utility-suite/pkg/ast"

// goScalarType maps a primitive TypeSpec to its Go representation.
func goScalarType(t *ast.TypeSpec) string {
	switch t.Base {
	case "int":
		if t.Unsigned {
			return "uint32"
		}
		return "int32"
	case "hyper":
		if t.Unsigned {
			return "uint64"
		}
		return "int64"
	case "float":
		return "float32"
	case "double":
		return "float64"
	case "bool":
		return "bool"
	default:
		return "int32"
	}
}

// goType returns the Go type for any TypeSpec, scalar or named.
func goType(t *ast.TypeSpec) string {
	if !t.IsNamedRef() {
		return goScalarType(t)
	}
	return exportedIdent(t.Name)
}

// wireWriteMethod and wireReadMethod name the xdrwire.Writer/Cursor method
// used for a primitive TypeSpec.
func wireWriteMethod(t *ast.TypeSpec) string {
	switch t.Base {
	case "int":
		if t.Unsigned {
			return "WriteUint32"
		}
		return "WriteInt32"
	case "hyper":
		if t.Unsigned {
			return "WriteUint64"
		}
		return "WriteInt64"
	case "float":
		return "WriteFloat32"
	case "double":
		return "WriteFloat64"
	case "bool":
		return "WriteBool"
	default:
		return "WriteInt32"
	}
}

func wireReadMethod(t *ast.TypeSpec) string {
	switch t.Base {
	case "int":
		if t.Unsigned {
			return "ReadUint32"
		}
		return "ReadInt32"
	case "hyper":
		if t.Unsigned {
			return "ReadUint64"
		}
		return "ReadInt64"
	case "float":
		return "ReadFloat32"
	case "double":
		return "ReadFloat64"
	case "bool":
		return "ReadBool"
	default:
		return "ReadInt32"
	}
}
