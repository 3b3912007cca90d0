package compiler

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestCompileValidSchemaProducesGoSource(t *testing.T) {
	src := []byte(`
struct Point {
	int x;
	int y;
};
`)
	var out bytes.Buffer
	diags := Compile(src, &out)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	generated := out.String()
	if !strings.Contains(generated, "type Point struct") {
		t.Errorf("generated output missing Point type:\n%s", generated)
	}
	if !strings.Contains(generated, "func (v Point) EncodeXDR()") {
		t.Errorf("generated output missing EncodeXDR:\n%s", generated)
	}
}

func TestCompileUndefinedNameReportsDiagnostic(t *testing.T) {
	src := []byte(`
struct Widget {
	Gadget g;
};
`)
	var out bytes.Buffer
	diags := Compile(src, &out)
	if !diags.HasErrors() {
		t.Fatal("expected diagnostics for undefined type Gadget")
	}
}

func TestBuilderRunCompilesEachAddedFile(t *testing.T) {
	files := map[string][]byte{
		"a.x": []byte("struct A { int v; };"),
		"b.x": []byte("struct B { int v; };"),
	}
	open := func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("no such file: %s", path)
		}
		return data, nil
	}

	var out bytes.Buffer
	b := NewBuilder(&out).AddFile("a.x").AddFile("b.x")
	diags := b.Run(open)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	generated := out.String()
	if !strings.Contains(generated, "type A struct") || !strings.Contains(generated, "type B struct") {
		t.Errorf("expected both A and B generated, got:\n%s", generated)
	}
}

func TestBuilderRunReportsOpenFailure(t *testing.T) {
	open := func(path string) ([]byte, error) {
		return nil, fmt.Errorf("boom")
	}
	var out bytes.Buffer
	diags := NewBuilder(&out).AddFile("missing.x").Run(open)
	if !diags.HasErrors() {
		t.Fatal("expected a diagnostic for a failed open")
	}
}
