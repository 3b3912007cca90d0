package codegen_test

import (
	"strings"
	"testing"

	"github.com/lanl/nfs-utility-suite/pkg/codegen"
	"github.com/lanl/nfs-utility-suite/pkg/parser"
	"github.com/lanl/nfs-utility-suite/pkg/resolver"
)

// generate parses, resolves and emits src, failing the test on any
// diagnostic — generated-code assertions below only make sense once the
// schema itself is known-good.
func generate(t *testing.T, src string) string {
	t.Helper()
	p, err := parser.New()
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	f, diags := p.Parse("test.x", []byte(src))
	if diags.HasErrors() {
		t.Fatalf("parse errors: %v", diags)
	}
	if diags := resolver.Resolve(f); diags.HasErrors() {
		t.Fatalf("resolve errors: %v", diags)
	}
	out, err := codegen.NewEmitter("generated").Generate(f)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return string(out)
}

func TestGenerateScalarStruct(t *testing.T) {
	out := generate(t, `
struct Point {
	int x;
	unsigned int y;
	bool flag;
};
`)
	for _, want := range []string{
		"type Point struct {",
		"X    int32",
		"Y    uint32",
		"Flag bool",
		"func (v Point) EncodeXDR() []byte {",
		"func (v *Point) DecodeXDR(c *xdrwire.Cursor) error {",
		"w.WriteInt32(v.X)",
		"w.WriteUint32(v.Y)",
		"w.WriteBool(v.Flag)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateEnumTightness(t *testing.T) {
	out := generate(t, `
enum Status {
	PENDING = 0,
	ACTIVE = 1
};
`)
	for _, want := range []string{
		"type Status int32",
		"PENDING Status = 0",
		"ACTIVE  Status = 1",
		"case 0, 1:",
		"xdrwire.UnknownEnum",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateContainerHeadFlattening(t *testing.T) {
	out := generate(t, `
struct Node {
	int value;
	Node *next;
};
struct NodeList {
	Node *items;
};
`)
	if strings.Contains(out, "Next") {
		t.Errorf("elided self-reference field Next should not appear in generated Node:\n%s", out)
	}
	for _, want := range []string{
		"type Node struct {",
		"Value int32",
		"type NodeList struct {",
		"Items []Node",
		"w.WriteBool(true)",
		"w.WriteBool(false)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateUnionSwitchesOnDiscriminant(t *testing.T) {
	out := generate(t, `
union Toggle switch (bool active) {
case true:
	int count;
case false:
	void;
};
`)
	for _, want := range []string{
		"type Toggle struct {",
		"Active bool",
		"Count  int32",
		"switch v.Active {",
		"case true:",
		"case false:",
		"xdrwire.UnexpectedTag",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateProgramEmitsRuntimeManifest(t *testing.T) {
	out := generate(t, `
struct Arg {
	int v;
};
program PROG {
	version VERS {
		Arg GETARG(int) = 1;
	} = 1;
} = 100001;
`)
	if !strings.Contains(out, "// Program PROG = 100001") {
		t.Errorf("expected program manifest comment:\n%s", out)
	}
	if strings.Contains(out, "func (v PROG)") || strings.Contains(out, "func (v *PROG)") {
		t.Errorf("program/version must not emit a codec of their own:\n%s", out)
	}
	for _, want := range []string{
		"type PROGProcedure struct {",
		"type PROGVersion struct {",
		"var PROGProgram = struct {",
		`Name:   "VERS",`,
		`{Name: "GETARG", Number: 1, Arg: "int32", Result: "Arg"},`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateTypedefAliasesUnderlyingType(t *testing.T) {
	out := generate(t, `
typedef opaque Hash[16];
`)
	for _, want := range []string{
		"type Hash [16]byte",
		"func (v Hash) EncodeXDR() []byte {",
		"func (v *Hash) DecodeXDR(c *xdrwire.Cursor) error {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}
