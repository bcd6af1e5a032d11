package token

import (
	"sort"
	"strings"
)

// keywords is the static reserved-word set. Lookup is context-free: a
// matching identifier is always KEYWORD, even where valid SQL uses it as
// a column or alias name. Built-in function names (COUNT, SUM, AVG, MIN,
// MAX, ...) are deliberately absent and lex as IDENT. GO is absent too:
// it is a client-side batch separator, not a reserved word.
var keywords = map[string]struct{}{
	"ADD":           {},
	"ALL":           {},
	"ALTER":         {},
	"AND":           {},
	"ANY":           {},
	"AS":            {},
	"ASC":           {},
	"BACKUP":        {},
	"BEGIN":         {},
	"BETWEEN":       {},
	"BREAK":         {},
	"BY":            {},
	"CASCADE":       {},
	"CASE":          {},
	"CHECK":         {},
	"CLOSE":         {},
	"COLLATE":       {},
	"COLUMN":        {},
	"COMMIT":        {},
	"CONSTRAINT":    {},
	"CONTINUE":      {},
	"CREATE":        {},
	"CROSS":         {},
	"CURSOR":        {},
	"DATABASE":      {},
	"DEALLOCATE":    {},
	"DECLARE":       {},
	"DEFAULT":       {},
	"DELETE":        {},
	"DENY":          {},
	"DESC":          {},
	"DISTINCT":      {},
	"DROP":          {},
	"ELSE":          {},
	"END":           {},
	"ESCAPE":        {},
	"EXCEPT":        {},
	"EXEC":          {},
	"EXECUTE":       {},
	"EXISTS":        {},
	"FETCH":         {},
	"FOR":           {},
	"FOREIGN":       {},
	"FROM":          {},
	"FULL":          {},
	"FUNCTION":      {},
	"GOTO":          {},
	"GRANT":         {},
	"GROUP":         {},
	"HAVING":        {},
	"IDENTITY":      {},
	"IF":            {},
	"IN":            {},
	"INDEX":         {},
	"INNER":         {},
	"INSERT":        {},
	"INTERSECT":     {},
	"INTO":          {},
	"IS":            {},
	"JOIN":          {},
	"KEY":           {},
	"LEFT":          {},
	"LIKE":          {},
	"MERGE":         {},
	"NOT":           {},
	"NULL":          {},
	"OFFSET":        {},
	"ON":            {},
	"OPEN":          {},
	"OPTION":        {},
	"OR":            {},
	"ORDER":         {},
	"OUTER":         {},
	"OVER":          {},
	"PARTITION":     {},
	"PERCENT":       {},
	"PIVOT":         {},
	"PRIMARY":       {},
	"PRINT":         {},
	"PROC":          {},
	"PROCEDURE":     {},
	"REFERENCES":    {},
	"RESTORE":       {},
	"RETURN":        {},
	"REVOKE":        {},
	"RIGHT":         {},
	"ROLLBACK":      {},
	"SCHEMA":        {},
	"SELECT":        {},
	"SET":           {},
	"SOME":          {},
	"TABLE":         {},
	"THEN":          {},
	"TOP":           {},
	"TRAN":          {},
	"TRANSACTION":   {},
	"TRIGGER":       {},
	"TRUNCATE":      {},
	"UNION":         {},
	"UNIQUE":        {},
	"UNPIVOT":       {},
	"UPDATE":        {},
	"USE":           {},
	"VALUES":        {},
	"VIEW":          {},
	"WHEN":          {},
	"WHERE":         {},
	"WHILE":         {},
	"WITH":          {},
}

// IsKeyword reports whether name is a reserved word. The check is
// case-insensitive; callers pass the identifier as it appears in source.
func IsKeyword(name string) bool {
	_, ok := keywords[strings.ToUpper(name)]
	return ok
}

// Keywords returns the reserved words in sorted order, for consumers such
// as tab completion.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}
