package parser

import "testing"

func TestParseSimpleStruct(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f, diags := p.Parse("test.x", []byte(`
		struct point {
			int x;
			int y;
		};
	`))
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(f.Decls) != 1 || f.Decls[0].Struct == nil {
		t.Fatalf("expected a single struct declaration, got %+v", f.Decls)
	}
	if f.Decls[0].Struct.Name != "point" {
		t.Errorf("expected struct name 'point', got %q", f.Decls[0].Struct.Name)
	}
}

func TestParseUnionAndEnum(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f, diags := p.Parse("test.x", []byte(`
		enum color { RED = 0, GREEN = 1, BLUE = 2 };
		union shape switch (color c) {
		case RED: int radius;
		default: void;
		};
	`))
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(f.Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(f.Decls))
	}
}

func TestParseProgram(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f, diags := p.Parse("test.x", []byte(`
		struct args { int a; };
		struct result { int b; };
		program CALC {
			version CALCV1 {
				result add(args) = 1;
			} = 1;
		} = 100000;
	`))
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	prog := f.Decls[2].Program
	if prog == nil || prog.Name != "CALC" {
		t.Fatalf("expected program CALC, got %+v", f.Decls[2])
	}
	if len(prog.Versions) != 1 || len(prog.Versions[0].Procedures) != 1 {
		t.Fatalf("expected one version with one procedure, got %+v", prog.Versions)
	}
}

func TestParseRecoversAtTopLevelBoundary(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// The struct declaration is malformed (no semicolon after its field or
	// its closing brace); the const before it is valid and still parses as
	// its own span, while the struct's span runs on through ok2's ';'.
	_, diags := p.Parse("test.x", []byte(`
		const ok1 = 1;
		struct broken { int x }
		const ok2 = 2;
	`))
	if !diags.HasErrors() {
		t.Fatal("expected at least one SyntaxError diagnostic")
	}
}

func TestParseEmptySourceRecovers(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, diags := p.Parse("test.x", []byte("   \n\n  "))
	if diags.HasErrors() {
		t.Fatalf("whitespace-only input should parse as an empty file, got: %v", diags)
	}
}
