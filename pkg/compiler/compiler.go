// Package compiler wires pkg/lexer, pkg/parser, pkg/resolver and
// pkg/codegen into the single- and multi-file entry points callers use
// (§6): Compile for one schema in memory, Builder for a set of schema
// paths the caller reads and the compiler writes generated Go for.
package compiler

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lanl/nfs-utility-suite/internal/cache"
	"github.com/lanl/nfs-utility-suite/pkg/codegen"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
	"github.com/lanl/nfs-utility-suite/pkg/parser"
	"github.com/lanl/nfs-utility-suite/pkg/resolver"
)

// Compile parses, resolves and emits a single schema held in src, writing
// generated Go source to sink. A non-empty Diagnostics return means the
// compilation failed; sink must not be trusted to hold complete output in
// that case (§5: "partial output is not emitted").
func Compile(src []byte, sink io.Writer) diag.Diagnostics {
	return compileNamed("schema.x", "generated", src, sink)
}

func compileNamed(filename, pkgName string, src []byte, sink io.Writer) diag.Diagnostics {
	p, err := parser.New()
	if err != nil {
		return diag.Diagnostics{{Message: err.Error()}}
	}

	file, diags := p.Parse(filename, src)
	if diags.HasErrors() {
		return diags
	}

	if resolveDiags := resolver.Resolve(file); resolveDiags.HasErrors() {
		return resolveDiags
	}

	out, err := codegen.NewEmitter(pkgName).Generate(file)
	if err != nil {
		return diag.Diagnostics{{Message: fmt.Sprintf("xdrc: %s: %s", filename, err)}}
	}

	if _, err := sink.Write(out); err != nil {
		return diag.Diagnostics{{Message: fmt.Sprintf("xdrc: %s: write failed: %s", filename, err)}}
	}

	return nil
}

// Builder accumulates a set of schema file paths and a destination sink,
// then runs a batch compilation over them. Run's caller supplies the byte
// source; the only filesystem access Builder makes is through an attached
// cache (WithCache), which reads each path from disk to hash it.
type Builder struct {
	sink    io.Writer
	pkgName string
	paths   []string
	cache   *cache.Cache
}

// NewBuilder returns a Builder that writes every accumulated file's
// generated Go, concatenated in AddFile order, to sink.
func NewBuilder(sink io.Writer) *Builder {
	return &Builder{sink: sink, pkgName: "generated"}
}

// AddFile queues path to be opened and compiled by Run. Returns b so
// calls can be chained.
func (b *Builder) AddFile(path string) *Builder {
	b.paths = append(b.paths, path)
	return b
}

// WithPackage overrides the package name emitted generated source
// declares itself under (default "generated").
func (b *Builder) WithPackage(name string) *Builder {
	b.pkgName = name
	return b
}

// WithCache attaches an incremental-compilation cache: Run skips a file
// whose content hash is unchanged since the last successful Run. Passing
// nil (the default) disables skipping — every accumulated file is always
// recompiled.
func (b *Builder) WithCache(c *cache.Cache) *Builder {
	b.cache = c
	return b
}

// Run opens and compiles every file added via AddFile, in order, using
// open as the byte source (cmd/xdrc supplies os.ReadFile). Each run gets
// a fresh UUID, included in the message of every diagnostic for a file
// that could not be hashed or opened, so a driver invoking Run repeatedly
// can tell which run produced those; diagnostics from compiling a file's
// contents do not carry it.
func (b *Builder) Run(open func(path string) ([]byte, error)) diag.Diagnostics {
	runID := uuid.New()

	var all diag.Diagnostics
	for _, path := range b.paths {
		if b.cache != nil {
			needs, err := b.cache.NeedsRegeneration(path)
			if err != nil {
				all = append(all, &diag.Entry{Message: fmt.Sprintf("xdrc[%s]: %s: %s", runID, path, err)})
				continue
			}
			if !needs {
				continue
			}
		}

		src, err := open(path)
		if err != nil {
			if b.cache != nil {
				b.cache.Remove(path)
			}
			all = append(all, &diag.Entry{Message: fmt.Sprintf("xdrc[%s]: %s: %s", runID, path, err)})
			continue
		}

		diags := compileNamed(path, b.pkgName, src, b.sink)
		if diags.HasErrors() && b.cache != nil {
			// Forget the hash NeedsRegeneration just recorded, so a failed
			// file is not skipped as up to date on the next Run.
			b.cache.Remove(path)
		}
		for _, d := range diags {
			all = append(all, d)
		}
	}
	return all
}
