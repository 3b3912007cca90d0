package main

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"

	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// diagEntry is the JSON-serializable shape of one diag.Entry; diag.Entry
// itself carries a participle lexer.Position, which is not meant to be a
// wire format, so --format=json gets its own flat rendering.
type diagEntry struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeDiagnostics renders diags to w as plain text (one "file:line:col:
// kind: message" line per entry, matching compilers in the corpus and
// the rest of this Go ecosystem) or as a JSON array when format is
// "json", for editor/CI integration.
func writeDiagnostics(w io.Writer, diags diag.Diagnostics, format string) error {
	if format == "json" {
		entries := make([]diagEntry, len(diags))
		for i, d := range diags {
			entries[i] = diagEntry{
				File:    d.Pos.Filename,
				Line:    d.Pos.Line,
				Column:  d.Pos.Column,
				Kind:    d.Kind.String(),
				Message: d.Message,
			}
		}
		out, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("xdrc: marshaling diagnostics: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "%s: %s: %s\n", d.Pos, d.Kind, d.Message); err != nil {
			return err
		}
	}
	return nil
}
