package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/russross/blackfriday/v2"
	"github.com/urfave/cli/v2"

	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// diagnosticsMarkdownTable renders diags as a Markdown table, the
// input blackfriday turns into the CI-artifact report.html.
func diagnosticsMarkdownTable(diags diag.Diagnostics) string {
	var b strings.Builder
	b.WriteString("# xdrc diagnostics report\n\n")
	if len(diags) == 0 {
		b.WriteString("No diagnostics. All schemas compiled cleanly.\n")
		return b.String()
	}
	b.WriteString("| Position | Kind | Message |\n")
	b.WriteString("|---|---|---|\n")
	for _, d := range diags {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", d.Pos, d.Kind, escapeMarkdown(d.Message)))
	}
	return b.String()
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func runReport(c *cli.Context) error {
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

	_, diags := compileAll(paths, outDir, c.String("package"), nil)

	md := diagnosticsMarkdownTable(diags)
	html := blackfriday.Run([]byte(md))

	outPath := c.String("report-out")
	if outPath == "" {
		outPath = "report.html"
	}
	if err := os.WriteFile(outPath, html, 0644); err != nil {
		return fmt.Errorf("xdrc report: writing %s: %w", outPath, err)
	}

	fmt.Fprintf(c.App.Writer, "wrote %s (%d diagnostics)\n", outPath, len(diags))
	if diags.HasErrors() {
		return cli.Exit("compilation had diagnostics, see report", 1)
	}
	return nil
}
