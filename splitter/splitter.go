// Package splitter divides a SQL buffer into independently executable
// statements using the token stream. Semicolons inside strings, comments
// and bracketed identifiers never split because the scanner has already
// absorbed them into their enclosing token.
package splitter

import (
	"strings"

	"github.com/mikevskater/tsqlscan/lexer"
	"github.com/mikevskater/tsqlscan/token"
)

// Statement is one executable span of the source buffer. Text is the
// verbatim source slice from the first to the last token of the
// statement; Line and Col locate its first token.
type Statement struct {
	Text string
	Line int
	Col  int
}

// Split tokenizes source and cuts it at statement boundaries: a
// SEMICOLON token ends the statement it terminates (the semicolon stays
// in the statement text), and a GO batch separator alone on its line
// ends the statement before it (the GO itself belongs to no statement).
// Statements with no content besides comments and semicolons are
// dropped.
func Split(source string) []Statement {
	tokens := lexer.Tokenize(source)
	offsets := tokenOffsets(source, tokens)

	var out []Statement
	start := -1 // index of first token of the current statement
	flush := func(last int) {
		if start < 0 {
			return
		}
		if hasContent(tokens[start : last+1]) {
			first := tokens[start]
			out = append(out, Statement{
				Text: source[offsets[start] : offsets[last]+len(tokens[last].Text)],
				Line: first.Line,
				Col:  first.Col,
			})
		}
		start = -1
	}

	for i, tok := range tokens {
		if isBatchSeparator(tokens, i) {
			flush(i - 1)
			continue
		}
		if start < 0 {
			start = i
		}
		if tok.Kind == token.SEMICOLON {
			flush(i)
		}
	}
	flush(len(tokens) - 1)
	return out
}

// tokenOffsets recovers each token's byte offset by walking the source
// alongside the stream. The scanner only ever skips whitespace, so the
// next token always begins at the next non-whitespace byte.
func tokenOffsets(source string, tokens []token.Token) []int {
	offsets := make([]int, len(tokens))
	idx := 0
	for i, tok := range tokens {
		for idx < len(source) && isSpace(source[idx]) {
			idx++
		}
		offsets[i] = idx
		idx += len(tok.Text)
	}
	return offsets
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isBatchSeparator reports whether tokens[i] is a GO separator: an
// identifier spelled GO that is the only token on its line.
func isBatchSeparator(tokens []token.Token, i int) bool {
	tok := tokens[i]
	if tok.Kind != token.IDENT || !strings.EqualFold(tok.Text, "GO") {
		return false
	}
	if i > 0 && tokens[i-1].Line == tok.Line {
		return false
	}
	if i+1 < len(tokens) && tokens[i+1].Line == tok.Line {
		return false
	}
	return true
}

func hasContent(tokens []token.Token) bool {
	for _, tok := range tokens {
		switch tok.Kind {
		case token.SEMICOLON, token.COMMENT, token.LINE_COMMENT:
		default:
			return true
		}
	}
	return false
}
