package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lanl/nfs-utility-suite/pkg/ast"
	"github.com/lanl/nfs-utility-suite/pkg/diag"
)

// positioned is satisfied by participle's own error type; it lets us pull
// a precise offset out of a lex/parse error without depending on an
// internal type.
type positioned interface {
	Position() lexer.Position
}

func lexError(filename string, err error) *diag.Entry {
	pos := lexer.Position{Filename: filename, Line: 1, Column: 1}
	if p, ok := err.(positioned); ok {
		pos = p.Position()
	}
	return &diag.Entry{Pos: pos, Kind: diag.LexError, Message: err.Error()}
}

// recover implements §4.2's batched top-level recovery: split src into
// top-level declaration spans by bracket depth, parse each span in
// isolation, and collect one SyntaxError per span that fails. It never
// returns an empty Diagnostics — the caller only reaches recover() after
// a whole-file parse has already failed.
func (p *Parser) recover(filename string, src []byte) (*ast.File, diag.Diagnostics) {
	spans := splitTopLevel(src)

	file := &ast.File{}
	var diags diag.Diagnostics

	if len(spans) == 0 {
		diags = append(diags, &diag.Entry{
			Pos:     offsetPosition(filename, src, 0),
			Kind:    diag.SyntaxError,
			Message: "empty or unparsable schema",
		})
		return file, diags
	}

	for _, sp := range spans {
		text := src[sp.start:sp.end]
		decl, err := p.topDecl.ParseBytes(filename, text)
		if err != nil {
			diags = append(diags, &diag.Entry{
				Pos:     offsetPosition(filename, src, sp.start),
				Kind:    diag.SyntaxError,
				Message: err.Error(),
			})
			continue
		}
		file.Decls = append(file.Decls, decl)
	}

	if len(diags) == 0 {
		// The whole-file parse failed for a reason that isn't explained
		// by any single bad span (e.g. trailing input after the last
		// declaration boundary); report it at end-of-file rather than
		// silently succeeding.
		diags = append(diags, &diag.Entry{
			Pos:     offsetPosition(filename, src, len(src)),
			Kind:    diag.SyntaxError,
			Message: "unexpected content after last top-level declaration",
		})
	}

	return file, diags
}

type span struct {
	start, end int
}

// splitTopLevel scans src byte-by-byte and cuts it into top-level
// declaration spans at every ';' seen at bracket depth zero, skipping
// over `/* ... */` and `% ...` comments so a ';' inside either of those
// never looks like a boundary. Depth counts '{', '(', '[' and '<' against
// their closing counterparts; XDR never interleaves mismatched bracket
// kinds in valid schemas, so a single counter is sufficient to find
// boundaries (a genuinely mismatched schema still fails, just inside
// topDecl.ParseBytes instead of here).
func splitTopLevel(src []byte) []span {
	var spans []span
	depth := 0
	start := 0
	i := 0
	n := len(src)

	for i < n {
		switch {
		case src[i] == '/' && i+1 < n && src[i+1] == '*':
			end := indexFrom(src, "*/", i+2)
			if end < 0 {
				i = n
			} else {
				i = end + 2
			}
			continue
		case src[i] == '%':
			end := indexByteFrom(src, '\n', i+1)
			if end < 0 {
				i = n
			} else {
				i = end + 1
			}
			continue
		case src[i] == '{', src[i] == '(', src[i] == '[', src[i] == '<':
			depth++
		case src[i] == '}', src[i] == ')', src[i] == ']', src[i] == '>':
			if depth > 0 {
				depth--
			}
		case src[i] == ';' && depth == 0:
			spans = append(spans, span{start: start, end: i + 1})
			start = i + 1
		}
		i++
	}

	if trimmed := trimSpace(src[start:]); len(trimmed) > 0 {
		spans = append(spans, span{start: start, end: n})
	}

	return spans
}

func indexFrom(src []byte, sub string, from int) int {
	for i := from; i+len(sub) <= len(src); i++ {
		if string(src[i:i+len(sub)]) == sub {
			return i
		}
	}
	return -1
}

func indexByteFrom(src []byte, b byte, from int) int {
	for i := from; i < len(src); i++ {
		if src[i] == b {
			return i
		}
	}
	return -1
}

func trimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// offsetPosition computes a 1-based line/column for a byte offset into
// src, the same information the lexer would have attached had it reached
// that point.
func offsetPosition(filename string, src []byte, offset int) lexer.Position {
	line, col := 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return lexer.Position{Filename: filename, Offset: offset, Line: line, Column: col}
}
