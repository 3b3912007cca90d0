// Package diag defines the compile-time diagnostic vocabulary shared by
// the lexer, parser and resolver.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/xrash/smetrics"
)

// Kind classifies a compile-time diagnostic.
type Kind int

const (
	LexError Kind = iota
	SyntaxError
	UnresolvedName
	DuplicateName
	BadConstExpr
	BadUnion
	UnsupportedOptional
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case UnresolvedName:
		return "UnresolvedName"
	case DuplicateName:
		return "DuplicateName"
	case BadConstExpr:
		return "BadConstExpr"
	case BadUnion:
		return "BadUnion"
	case UnsupportedOptional:
		return "UnsupportedOptional"
	default:
		return "Unknown"
	}
}

// Entry is a single diagnostic: a source position, a kind and a message.
type Entry struct {
	Pos     lexer.Position
	Kind    Kind
	Message string
}

func (e *Entry) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// Diagnostics is an ordered batch of Entry values. A non-empty Diagnostics
// is always treated by pkg/compiler as a failed compilation.
type Diagnostics []*Entry

func (d Diagnostics) Error() string {
	lines := make([]string, len(d))
	for i, e := range d {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// HasErrors reports whether any diagnostic was collected.
func (d Diagnostics) HasErrors() bool {
	return len(d) > 0
}

// suggestionThreshold is the minimum Jaro-Winkler similarity at which an
// unresolved name is considered close enough to a known symbol to suggest.
const suggestionThreshold = 0.85

// Suggest returns " (did you mean 'X'?)" for the candidate in names that is
// closest to name by Jaro-Winkler distance, or "" if none clears the
// threshold. Ties are broken by lexical order so the result is
// deterministic across runs.
func Suggest(name string, names []string) string {
	best := ""
	bestScore := 0.0
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, candidate := range sorted {
		if candidate == name {
			continue
		}
		score := smetrics.JaroWinkler(name, candidate, 0.7, 4)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore < suggestionThreshold {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", best)
}

// Builder accumulates diagnostics across a single pass, mirroring the
// addError/addWarning helpers a resolver or parser pass needs.
type Builder struct {
	entries Diagnostics
}

func (b *Builder) Add(pos lexer.Position, kind Kind, format string, args ...any) {
	b.entries = append(b.entries, &Entry{
		Pos:     pos,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (b *Builder) Diagnostics() Diagnostics {
	return b.entries
}

func (b *Builder) HasErrors() bool {
	return len(b.entries) > 0
}
