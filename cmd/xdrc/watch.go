package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jpillora/backoff"
	"github.com/urfave/cli/v2"
)

// runWatch recompiles every matched schema on change. A single fsnotify
// watcher covers every directory holding a matched schema; distinct
// changed paths recompile independently and concurrently, while repeated
// events for the same path (an editor's multi-write save) serialize on
// that path's own lock, each running its own backoff loop (§5 [FULL]).
func runWatch(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	paths, err := schemaPaths(c, cfg)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("xdrc watch: %w", err)
	}
	defer watcher.Close()

	dirs := map[string]bool{}
	for _, p := range paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("xdrc watch: watching %s: %w", dir, err)
		}
	}

	outDir := c.String("out")
	if outDir == "" {
		outDir = cfg.Out
	}
	pkgName := c.String("package")
	format := c.String("format")

	fmt.Fprintf(c.App.Writer, "watching %d path(s) for changes\n", len(paths))

	recompile := func(path string) bool {
		_, diags := compileAll([]string{path}, outDir, pkgName, nil)
		if diags.HasErrors() {
			writeDiagnostics(c.App.ErrWriter, diags, format)
			return false
		}
		fmt.Fprintf(c.App.Writer, "recompiled %s\n", path)
		return true
	}

	watched := make(map[string]bool, len(paths))
	locks := make(map[string]*sync.Mutex, len(paths))
	for _, p := range paths {
		watched[p] = true
		locks[p] = &sync.Mutex{}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			go func(path string, mu *sync.Mutex) {
				mu.Lock()
				defer mu.Unlock()
				recompileWithBackoff(path, recompile)
			}(event.Name, locks[event.Name])

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(c.App.ErrWriter, "xdrc watch: %s\n", werr)
		}
	}
}

// maxRecompileAttempts bounds the retry loop below so a schema with a
// genuine (non-transient) syntax error doesn't retry forever.
const maxRecompileAttempts = 4

// recompileWithBackoff retries recompile against path on failure — the
// file may still be mid-write when the event fires — backing off
// between attempts instead of hammering a half-written file. The last
// attempt's diagnostics (already reported by recompile) are left as the
// final word if every retry still fails.
func recompileWithBackoff(path string, recompile func(string) bool) {
	b := &backoff.Backoff{
		Min:    50 * time.Millisecond,
		Max:    2 * time.Second,
		Factor: 2,
	}
	for attempt := 0; attempt < maxRecompileAttempts; attempt++ {
		if recompile(path) {
			return
		}
		time.Sleep(b.Duration())
	}
}
