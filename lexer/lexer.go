// Package lexer implements a lexical scanner for T-SQL source text.
//
// The scanner is a total function over its input: malformed SQL never
// produces an error, only best-effort tokens. Unterminated strings,
// block comments and bracketed identifiers degrade to a single token
// running to end of input, so that highlighting and completion stay
// useful on a buffer the user is still typing.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/mikevskater/tsqlscan/token"
)

// Lexer scans one source string. It is not restartable and not safe for
// concurrent use; construct a fresh Lexer per input.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += size
	}
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing the position.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken returns the next token from the input, or an EOF sentinel
// once the input is exhausted.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	// Position of the token's first character. Every multi-character
	// token reports this, not the position of its last character.
	tok := token.Token{Line: l.line, Col: l.column}

	switch {
	case l.ch == 0:
		tok.Kind = token.EOF
		return tok
	case l.ch == '-' && l.peekChar() == '-':
		tok.Kind = token.LINE_COMMENT
		tok.Text = l.readLineComment()
		return tok
	case l.ch == '/' && l.peekChar() == '*':
		tok.Kind = token.COMMENT
		tok.Text = l.readBlockComment()
		return tok
	case l.ch == '\'':
		tok.Kind = token.STRING
		tok.Text = l.readString()
		return tok
	case l.ch == '[':
		tok.Kind = token.BRACKET_IDENT
		tok.Text = l.readBracketedIdentifier()
		return tok
	case l.ch == '@':
		tok.Kind, tok.Text = l.readSigil('@', token.AT, token.VARIABLE, token.GLOBAL_VARIABLE)
		return tok
	case l.ch == '#':
		tok.Kind, tok.Text = l.readSigil('#', token.HASH, token.TEMP_TABLE, token.GLOBAL_TEMP_TABLE)
		return tok
	case isDigit(l.ch):
		tok.Kind = token.NUMBER
		tok.Text = l.readNumber()
		return tok
	case isLetter(l.ch):
		tok.Text = l.readIdentifier()
		if token.IsKeyword(tok.Text) {
			tok.Kind = token.KEYWORD
		} else {
			tok.Kind = token.IDENT
		}
		return tok
	case l.ch == '*':
		// Always STAR, even before '=': SELECT-star matters downstream.
		tok.Kind = token.STAR
	case l.ch == '.':
		tok.Kind = token.DOT
	case l.ch == ',':
		tok.Kind = token.COMMA
	case l.ch == ';':
		tok.Kind = token.SEMICOLON
	case l.ch == '(':
		tok.Kind = token.LPAREN
	case l.ch == ')':
		tok.Kind = token.RPAREN
	case token.IsOperatorChar(l.ch):
		tok.Kind = token.OPERATOR
		if token.IsCompoundOperator(l.ch, l.peekChar()) {
			first := l.ch
			l.readChar()
			tok.Text = string([]rune{first, l.ch})
			l.readChar()
			return tok
		}
	default:
		// Characters outside the dispatch set lex as single-character
		// operators, keeping the scanner total.
		tok.Kind = token.OPERATOR
	}

	tok.Text = string(l.ch)
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readSigil scans @, @@, # and ## prefixed names. A sigil immediately
// followed by an identifier character fuses with it into one token; a
// bare sigil is emitted as a single AT/HASH character and the next
// dispatch step handles whatever follows. @@ and ## with nothing
// attachable fall apart one sigil at a time.
func (l *Lexer) readSigil(sigil rune, bare, single, double token.Kind) (token.Kind, string) {
	position := l.position
	if l.peekChar() == sigil {
		l.readChar() // now on the second sigil
		if isIdentChar(l.peekChar()) {
			l.readChar()
			l.readIdentifier()
			return double, l.input[position:l.position]
		}
		return bare, string(sigil) // second sigil re-enters dispatch
	}
	if isIdentChar(l.peekChar()) {
		l.readChar()
		l.readIdentifier()
		return single, l.input[position:l.position]
	}
	l.readChar()
	return bare, string(sigil)
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString scans a '...' literal, doubled quotes staying inside the
// string. The returned text keeps both delimiting quotes. An unterminated
// string runs to end of input.
func (l *Lexer) readString() string {
	position := l.position
	l.readChar() // consume opening quote
	for l.ch != 0 {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // consume closing quote
			break
		}
		l.readChar()
	}
	return l.input[position:l.position]
}

// readBracketedIdentifier scans verbatim through the next ]. There is no
// ]] escape; the first ] closes the identifier. The returned text keeps
// both brackets. Unterminated runs to end of input.
func (l *Lexer) readBracketedIdentifier() string {
	position := l.position
	l.readChar() // consume [
	for l.ch != ']' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == ']' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readLineComment() string {
	position := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readBlockComment scans through the first */. Unterminated runs to end
// of input.
func (l *Lexer) readBlockComment() string {
	position := l.position
	l.readChar() // consume /
	l.readChar() // consume *
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	return l.input[position:l.position]
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}

// Tokenize scans input and returns the complete token list in source
// order. The EOF sentinel is not included: every returned token covers a
// real source span, and concatenating the token texts together with the
// skipped whitespace reproduces the input exactly.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
