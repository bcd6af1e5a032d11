package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSemicolons(t *testing.T) {
	src := "SELECT 1; SELECT 2;\nSELECT 3"
	stmts := Split(src)
	require.Len(t, stmts, 3)

	assert.Equal(t, "SELECT 1;", stmts[0].Text)
	assert.Equal(t, "SELECT 2;", stmts[1].Text)
	assert.Equal(t, "SELECT 3", stmts[2].Text)

	assert.Equal(t, 1, stmts[0].Line)
	assert.Equal(t, 1, stmts[0].Col)
	assert.Equal(t, 1, stmts[1].Line)
	assert.Equal(t, 11, stmts[1].Col)
	assert.Equal(t, 2, stmts[2].Line)
	assert.Equal(t, 1, stmts[2].Col)
}

func TestSemicolonInsideSpansDoesNotSplit(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"string", "SELECT 'a;b' FROM t"},
		{"line comment", "SELECT 1 -- a;b\nFROM t"},
		{"block comment", "SELECT /* a;b */ 1"},
		{"bracketed identifier", "SELECT [a;b] FROM t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts := Split(tt.src)
			require.Len(t, stmts, 1)
			assert.Equal(t, tt.src, stmts[0].Text)
		})
	}
}

func TestGoBatchSeparator(t *testing.T) {
	src := "CREATE TABLE t (id INT)\nGO\nINSERT INTO t VALUES (1)\ngo\nSELECT * FROM t"
	stmts := Split(src)
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE t (id INT)", stmts[0].Text)
	assert.Equal(t, "INSERT INTO t VALUES (1)", stmts[1].Text)
	assert.Equal(t, "SELECT * FROM t", stmts[2].Text)
}

func TestGoNotAloneOnLineIsNotASeparator(t *testing.T) {
	// "go" as a column or alias must not split the statement.
	src := "SELECT go FROM moves"
	stmts := Split(src)
	require.Len(t, stmts, 1)
	assert.Equal(t, src, stmts[0].Text)
}

func TestEmptyStatementsDropped(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"empty buffer", "", 0},
		{"whitespace", "  \n\t", 0},
		{"bare semicolons", ";;;", 0},
		{"comment only", "-- nothing here\n;", 0},
		{"go only", "GO\nGO", 0},
		{"one real statement", ";; SELECT 1 ;;", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Split(tt.src), tt.want)
		})
	}
}

func TestStatementTextIsVerbatim(t *testing.T) {
	src := "UPDATE t\n  SET x = 'a''b' -- note\n  WHERE id >= 5;"
	stmts := Split(src)
	require.Len(t, stmts, 1)
	assert.Equal(t, src, stmts[0].Text)
}
