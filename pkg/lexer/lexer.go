// Package lexer classifies XDR schema source bytes into tokens.
//
// The rule table below is built the same way the teacher's own grammar
// lexer is (a stateful participle/v2/lexer.Definition with a Push/Pop pair
// for a nested state), except the nested state here is a C-style block
// comment instead of a backtick template.
package lexer

import (
	"bytes"

	"github.com/alecthomas/participle/v2/lexer"
)

// Definition is the stateful token rule set for XDR+RPC source text.
//
// Comments are not required to nest (§4.1): the "Comment" state is
// entered on "/*" and left on the first following "*/", regardless of
// any "/*" seen in between.
var Definition = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"CommentStart", `/\*`, lexer.Push("Comment")},
		{"LineComment", `%[^\n]*`, nil},
		{"Whitespace", `\s+`, nil},
		{"Keyword", keywordPattern, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Int", `-?(0[xX][0-9a-fA-F]+|0[0-7]*|[1-9][0-9]*)`, nil},
		{"Punct", `[{}\[\]<>*,;=():]`, nil},
	},
	"Comment": {
		{"CommentEnd", `\*/`, lexer.Pop()},
		{"CommentBody", `([^*]|\*[^/])+`, nil},
	},
})

// keywords are the reserved words of the XDR+RPC grammar (§4.1). Ident
// tokens never match one of these; the "Keyword" rule is tried first.
var keywords = []string{
	"const", "typedef", "enum", "struct", "union", "switch", "case",
	"default", "void", "opaque", "string", "bool", "int", "unsigned",
	"hyper", "float", "double", "program", "version", "true", "false",
}

// keywordPattern builds a `\b(a|b|c)\b` alternation in the order of
// keywords; the trailing `\b` keeps a keyword from matching a prefix of a
// longer identifier such as "integer".
var keywordPattern = buildKeywordPattern(keywords)

func buildKeywordPattern(words []string) string {
	out := `\b(`
	for i, w := range words {
		if i > 0 {
			out += "|"
		}
		out += w
	}
	out += `)\b`
	return out
}

// Elided lists the token names the parser should strip from the stream
// before handing it to the grammar.
var Elided = []string{"Whitespace", "LineComment", "CommentStart", "CommentEnd", "CommentBody"}

// Tokenize runs the lexer over src standalone, with no grammar attached,
// and returns the raw token stream (EOF included). A "/*" with no
// matching "*/" is reported as an unterminated comment. This is what
// exercises the lexer as its own subsystem, independent of the parser
// that is built on top of it.
func Tokenize(filename string, src []byte) ([]lexer.Token, error) {
	l, err := Definition.Lex(filename, bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	toks, err := lexer.ConsumeAll(l)
	if err != nil {
		return nil, err
	}
	syms := Definition.Symbols()
	open := -1
	for i, tok := range toks {
		switch tok.Type {
		case syms["CommentStart"]:
			open = i
		case syms["CommentEnd"]:
			open = -1
		}
	}
	if open >= 0 {
		return nil, lexer.Errorf(toks[open].Pos, "unterminated comment")
	}
	return toks, nil
}
