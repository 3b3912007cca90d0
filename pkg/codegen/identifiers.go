package codegen

// goKeywords are Go's reserved words; an XDR identifier that collides with
// one is escaped with a suffix rather than renamed wholesale, so the
// generated field still reads close to the schema.
var goKeywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
}

// escapeIdent appends "_xdr" to a Go keyword so it can be used as an
// identifier; every other name passes through unchanged.
func escapeIdent(name string) string {
	if goKeywords[name] {
		return name + "_xdr"
	}
	return name
}

// exportedIdent capitalizes the first rune of an XDR identifier so the
// generated field or type is visible outside the package, which every
// generated representation must be (§6: "public fields").
func exportedIdent(name string) string {
	name = escapeIdent(name)
	if name == "" {
		return name
	}
	r := []rune(name)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
