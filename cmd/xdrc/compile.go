package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lanl/nfs-utility-suite/internal/cache"
	"github.com/lanl/nfs-utility-suite/pkg/compiler"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// schemaPaths resolves the set of .x files to compile: CLI arguments
// take precedence over the project file's "schemas" globs.
func schemaPaths(c *cli.Context, cfg *Config) ([]string, error) {
	if c.Args().Len() > 0 {
		return c.Args().Slice(), nil
	}

	var paths []string
	for _, pattern := range cfg.Schemas {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("xdrc: bad schema pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("xdrc: no schema files given (pass paths or set \"schemas\" in %s)", defaultConfigPath)
	}
	return paths, nil
}

// compileAll compiles every path into outDir/<basename>.go using
// pkg/compiler.Builder, one generated file per schema so a later
// recompile of a single path doesn't require regenerating the rest. ch
// may be nil, meaning every file is always recompiled.
func compileAll(paths []string, outDir, pkgName string, ch *cache.Cache) ([]string, diag.Diagnostics) {
	if pkgName == "" {
		pkgName = "generated"
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, diag.Diagnostics{{Message: fmt.Sprintf("xdrc: creating %s: %s", outDir, err)}}
	}

	var written []string
	var all diag.Diagnostics
	for _, path := range paths {
		dest := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".go")

		var buf bytes.Buffer
		b := compiler.NewBuilder(&buf).WithPackage(pkgName).AddFile(path)
		if ch != nil {
			b = b.WithCache(ch)
		}
		diags := b.Run(os.ReadFile)

		if diags.HasErrors() {
			os.Remove(dest)
			all = append(all, diags...)
			continue
		}
		if buf.Len() == 0 {
			// Skipped by the cache: the existing output is left as it is.
			continue
		}
		if err := os.WriteFile(dest, buf.Bytes(), 0644); err != nil {
			all = append(all, &diag.Entry{Message: fmt.Sprintf("xdrc: creating %s: %s", dest, err)})
			continue
		}
		written = append(written, dest)
	}
	if ch != nil {
		ch.Save()
	}
	return written, all
}

// loadCacheIfRequested loads the incremental-compilation cache named by
// --cache when --incremental is set, defaulting to a path under the
// system temp directory.
func loadCacheIfRequested(c *cli.Context) *cache.Cache {
	if !c.Bool("incremental") {
		return nil
	}
	path := c.String("cache")
	if path == "" {
		path = filepath.Join(os.TempDir(), "xdrc-cache.json")
	}
	ch, err := cache.Load(path)
	if err != nil {
		return cache.New(path)
	}
	return ch
}

func runCompile(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	paths, err := schemaPaths(c, cfg)
	if err != nil {
		return err
	}

	outDir := c.String("out")
	if outDir == "" {
		outDir = cfg.Out
	}

	written, diags := compileAll(paths, outDir, c.String("package"), loadCacheIfRequested(c))

	if err := writeDiagnostics(c.App.ErrWriter, diags, c.String("format")); err != nil {
		return err
	}
	if diags.HasErrors() {
		return cli.Exit("compilation failed", 1)
	}

	for _, w := range written {
		fmt.Fprintf(c.App.Writer, "wrote %s\n", w)
	}
	return nil
}
