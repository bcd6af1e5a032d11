// Package tsqlscan tokenizes T-SQL source text.
//
// The scanner converts a buffer into an ordered, position-annotated
// token list. It is total over its input: malformed SQL (unterminated
// strings, comments or brackets) degrades to best-effort tokens rather
// than an error, so highlighting and completion keep working while the
// user types.
//
// Example usage:
//
//	for _, tok := range tsqlscan.Tokenize("SELECT * FROM t") {
//	    fmt.Printf("%d:%d %s %q\n", tok.Line, tok.Col, tok.Kind, tok.Text)
//	}
package tsqlscan

import (
	"github.com/mikevskater/tsqlscan/highlight"
	"github.com/mikevskater/tsqlscan/lexer"
	"github.com/mikevskater/tsqlscan/splitter"
	"github.com/mikevskater/tsqlscan/token"
)

// Tokenize returns the complete token list for input, in source order.
func Tokenize(input string) []token.Token {
	return lexer.Tokenize(input)
}

// Split divides input into independently executable statements.
func Split(input string) []splitter.Statement {
	return splitter.Split(input)
}

// Highlight returns input with the default theme's terminal styles
// applied per token.
func Highlight(input string) string {
	return highlight.Render(input, highlight.DefaultTheme())
}

// Re-export types for convenience
type (
	Token     = token.Token
	Kind      = token.Kind
	Statement = splitter.Statement
	Theme     = highlight.Theme
)
