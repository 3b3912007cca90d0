package resolver

import (
	"testing"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
	"github.com/lanl/nfs-utility-suite/pkg/parser"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	p, err := parser.New()
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	f, diags := p.Parse("test.x", []byte(src))
	if diags.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", diags)
	}
	return f
}

func TestResolveUndefinedName(t *testing.T) {
	f := mustParse(t, `struct thing { missing val; };`)
	diags := Resolve(f)
	if !diags.HasErrors() {
		t.Fatal("expected an UnresolvedName diagnostic, got none")
	}
	if diags[0].Kind != diag.UnresolvedName {
		t.Errorf("expected UnresolvedName, got %s", diags[0].Kind)
	}
}

func TestResolveDuplicateName(t *testing.T) {
	f := mustParse(t, `
		const limit = 4;
		const limit = 8;
	`)
	diags := Resolve(f)
	if !diags.HasErrors() {
		t.Fatal("expected a DuplicateName diagnostic, got none")
	}
	if diags[0].Kind != diag.DuplicateName {
		t.Errorf("expected DuplicateName, got %s", diags[0].Kind)
	}
}

func TestResolveConstFolding(t *testing.T) {
	f := mustParse(t, `
		const base = 10;
		const derived = base;
		struct fixed { opaque blob[derived]; };
	`)
	diags := Resolve(f)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !f.Decls[1].Const.Value.Resolved || f.Decls[1].Const.Value.Value != 10 {
		t.Errorf("expected derived to fold to 10, got %+v", f.Decls[1].Const.Value)
	}
}

func TestResolveContainerHeadClassification(t *testing.T) {
	f := mustParse(t, `
		struct node {
			int val;
			node *next;
		};
		struct owner {
			node *items;
		};
	`)
	diags := Resolve(f)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	node := f.Decls[0].Struct
	if !node.SelfReferential {
		t.Error("expected node to be marked self-referential")
	}
	nextField := node.Fields[1].Pointer
	if nextField.Classification != ast.ClassPlainOptional || !nextField.Elided {
		t.Errorf("expected node.next to be an elided plain optional, got class=%v elided=%v",
			nextField.Classification, nextField.Elided)
	}

	owner := f.Decls[1].Struct
	if owner.SelfReferential {
		t.Error("owner must not be self-referential")
	}
	itemsField := owner.Fields[0].Pointer
	if itemsField.Classification != ast.ClassContainerHead {
		t.Errorf("expected owner.items to be a container head, got %v", itemsField.Classification)
	}
}

func TestResolveRejectsMultipleSelfLoopFields(t *testing.T) {
	f := mustParse(t, `
		struct tree {
			int val;
			tree *left;
			tree *right;
		};
	`)
	diags := Resolve(f)
	if !diags.HasErrors() {
		t.Fatal("expected an UnsupportedOptional diagnostic for a struct with two self-loop fields, got none")
	}
	count := 0
	for _, d := range diags {
		if d.Kind == diag.UnsupportedOptional {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected both self-loop fields to be flagged, got %d UnsupportedOptional diagnostics: %v", count, diags)
	}
}

func TestResolveRejectsMutualRecursionAcrossStructs(t *testing.T) {
	f := mustParse(t, `
		struct a {
			b *next;
		};
		struct b {
			a *next;
		};
	`)
	diags := Resolve(f)
	if !diags.HasErrors() {
		t.Fatal("expected an UnsupportedOptional diagnostic for a cycle closed through a distinct struct, got none")
	}
	for _, d := range diags {
		if d.Kind == diag.UnsupportedOptional {
			return
		}
	}
	t.Errorf("expected UnsupportedOptional among diagnostics, got %v", diags)
}

func TestResolvePlainOptionalForNonCyclicPointer(t *testing.T) {
	f := mustParse(t, `
		struct leaf { int val; };
		struct holder { leaf *maybe; };
	`)
	diags := Resolve(f)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	field := f.Decls[1].Struct.Fields[0].Pointer
	if field.Classification != ast.ClassPlainOptional || field.Elided {
		t.Errorf("expected plain, non-elided optional, got class=%v elided=%v", field.Classification, field.Elided)
	}
}

func TestResolveUnsupportedOptionalBareSelfReference(t *testing.T) {
	f := mustParse(t, `
		struct node {
			int val;
			node *next;
		};
		struct bad {
			node inline;
		};
	`)
	diags := Resolve(f)
	if !diags.HasErrors() {
		t.Fatal("expected an UnsupportedOptional diagnostic, got none")
	}
	found := false
	for _, d := range diags {
		if d.Kind == diag.UnsupportedOptional {
			found = true
		}
	}
	if !found {
		t.Errorf("expected UnsupportedOptional among diagnostics, got %v", diags)
	}
}

func TestResolveUnionDuplicateCaseLabel(t *testing.T) {
	f := mustParse(t, `
		union choice switch (int kind) {
		case 0: int a;
		case 0: int b;
		};
	`)
	diags := Resolve(f)
	if !diags.HasErrors() {
		t.Fatal("expected a BadUnion diagnostic, got none")
	}
	if diags[0].Kind != diag.BadUnion {
		t.Errorf("expected BadUnion, got %s", diags[0].Kind)
	}
}

func TestResolveUnionBoolCaseLabels(t *testing.T) {
	f := mustParse(t, `
		union toggle switch (bool active) {
		case true: int count;
		case false: void;
		};
	`)
	diags := Resolve(f)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	arms := f.Decls[0].Union.Arms
	if len(arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(arms))
	}
	if arms[0].Labels[0].Value.Value != 1 {
		t.Errorf("expected \"true\" to fold to 1, got %d", arms[0].Labels[0].Value.Value)
	}
	if arms[1].Labels[0].Value.Value != 0 {
		t.Errorf("expected \"false\" to fold to 0, got %d", arms[1].Labels[0].Value.Value)
	}
}

func TestResolveUnionEnumDiscriminant(t *testing.T) {
	f := mustParse(t, `
		enum color { RED = 0, GREEN = 1 };
		union painted switch (color c) {
		case RED: int a;
		case GREEN: int b;
		};
	`)
	diags := Resolve(f)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if f.Decls[1].Union.DiscEnum == nil {
		t.Error("expected DiscEnum to be set for an enum discriminant")
	}
}
