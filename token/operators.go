package token

// compoundOperators lists the only two-character sequences that fuse into
// a single OPERATOR token. Everything else starting with an operator
// character splits into two single-character tokens: !< and !> are two
// tokens each, as are the T-SQL compound assignments (+=, -=, &=, ...).
// The scanner must consult this table by two-character lookahead before
// emitting a single character, never merge after the fact.
var compoundOperators = map[string]struct{}{
	">=": {},
	"<=": {},
	"<>": {},
	"!=": {},
	"::": {},
}

// IsCompoundOperator reports whether the two-character sequence formed by
// first and second lexes as one OPERATOR token.
func IsCompoundOperator(first, second rune) bool {
	_, ok := compoundOperators[string([]rune{first, second})]
	return ok
}

// IsOperatorChar reports whether ch is one of the characters resolved by
// the operator grammar. Note * is absent: it always lexes as STAR.
func IsOperatorChar(ch rune) bool {
	switch ch {
	case '=', '<', '>', '+', '-', '/', '%', '!', '&', '|', '^', '~', ':':
		return true
	}
	return false
}
