// Package token defines the lexical tokens produced by the T-SQL scanner.
package token

// Kind represents the kind of a lexical token.
type Kind int

const (
	// EOF is a sentinel returned by the scanner's incremental API once the
	// input is exhausted. It never appears in a materialized token list.
	EOF Kind = iota

	KEYWORD // SELECT, FROM, JOIN, ...
	IDENT   // table_name, column_name
	BRACKET_IDENT
	STRING
	NUMBER

	STAR // * never lexes as OPERATOR
	DOT
	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	OPERATOR

	COMMENT      // /* ... */
	LINE_COMMENT // -- ...

	AT   // bare @ with nothing attachable
	HASH // bare # with nothing attachable

	VARIABLE          // @name
	GLOBAL_VARIABLE   // @@name
	TEMP_TABLE        // #name
	GLOBAL_TEMP_TABLE // ##name
)

var kindNames = map[Kind]string{
	EOF:               "EOF",
	KEYWORD:           "KEYWORD",
	IDENT:             "IDENT",
	BRACKET_IDENT:     "BRACKET_IDENT",
	STRING:            "STRING",
	NUMBER:            "NUMBER",
	STAR:              "STAR",
	DOT:               "DOT",
	COMMA:             "COMMA",
	SEMICOLON:         "SEMICOLON",
	LPAREN:            "LPAREN",
	RPAREN:            "RPAREN",
	OPERATOR:          "OPERATOR",
	COMMENT:           "COMMENT",
	LINE_COMMENT:      "LINE_COMMENT",
	AT:                "AT",
	HASH:              "HASH",
	VARIABLE:          "VARIABLE",
	GLOBAL_VARIABLE:   "GLOBAL_VARIABLE",
	TEMP_TABLE:        "TEMP_TABLE",
	GLOBAL_TEMP_TABLE: "GLOBAL_TEMP_TABLE",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns a string representation of the token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// KindOf resolves a kind by its name, as used in fixture files and CLI
// output. The second return value reports whether the name is known.
func KindOf(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Token represents one classified, positioned span of source text.
// Text is the exact source substring the token covers, including any
// delimiters: a bracketed identifier keeps its brackets, a string literal
// its quotes, a variable its sigil. Line and Col are 1-based and refer to
// the token's first character.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}
