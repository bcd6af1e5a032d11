package token

import "testing"

func TestIsKeyword(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"SELECT", true},
		{"select", true},
		{"Select", true},
		{"FROM", true},
		{"BETWEEN", true},
		{"SCHEMA", true},
		{"TABLE", true},
		{"COUNT", false},
		{"SUM", false},
		{"AVG", false},
		{"MIN", false},
		{"MAX", false},
		{"GO", false},
		{"Employees", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsKeyword(tt.name); got != tt.want {
			t.Errorf("IsKeyword(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeywordsSorted(t *testing.T) {
	kws := Keywords()
	if len(kws) == 0 {
		t.Fatal("expected a non-empty keyword list")
	}
	for i := 1; i < len(kws); i++ {
		if kws[i-1] >= kws[i] {
			t.Errorf("keywords not sorted: %q before %q", kws[i-1], kws[i])
		}
	}
	for _, kw := range kws {
		if !IsKeyword(kw) {
			t.Errorf("Keywords() returned %q which IsKeyword rejects", kw)
		}
	}
}

func TestIsCompoundOperator(t *testing.T) {
	fused := []struct{ a, b rune }{
		{'>', '='}, {'<', '='}, {'<', '>'}, {'!', '='}, {':', ':'},
	}
	for _, p := range fused {
		if !IsCompoundOperator(p.a, p.b) {
			t.Errorf("IsCompoundOperator(%q, %q) = false, want true", p.a, p.b)
		}
	}

	split := []struct{ a, b rune }{
		{'!', '<'}, {'!', '>'}, {'+', '='}, {'-', '='}, {'*', '='},
		{'/', '='}, {'%', '='}, {'&', '='}, {'|', '='}, {'^', '='},
		{'<', '<'}, {'>', '>'}, {'=', '='}, {'~', '='}, {':', '='},
	}
	for _, p := range split {
		if IsCompoundOperator(p.a, p.b) {
			t.Errorf("IsCompoundOperator(%q, %q) = true, want false", p.a, p.b)
		}
	}
}

func TestIsOperatorChar(t *testing.T) {
	for _, ch := range "=<>+-/%!&|^~:" {
		if !IsOperatorChar(ch) {
			t.Errorf("IsOperatorChar(%q) = false, want true", ch)
		}
	}
	for _, ch := range "*.,;()[]'@# ax0" {
		if IsOperatorChar(ch) {
			t.Errorf("IsOperatorChar(%q) = true, want false", ch)
		}
	}
}

func TestKindNames(t *testing.T) {
	kinds := []Kind{
		EOF, KEYWORD, IDENT, BRACKET_IDENT, STRING, NUMBER, STAR, DOT,
		COMMA, SEMICOLON, LPAREN, RPAREN, OPERATOR, COMMENT, LINE_COMMENT,
		AT, HASH, VARIABLE, GLOBAL_VARIABLE, TEMP_TABLE, GLOBAL_TEMP_TABLE,
	}
	for _, k := range kinds {
		name := k.String()
		if name == "UNKNOWN" {
			t.Errorf("kind %d has no name", k)
			continue
		}
		back, ok := KindOf(name)
		if !ok || back != k {
			t.Errorf("KindOf(%q) = %v, %v; want %v, true", name, back, ok, k)
		}
	}

	if Kind(999).String() != "UNKNOWN" {
		t.Errorf("out-of-range kind should stringify as UNKNOWN")
	}
	if _, ok := KindOf("NOPE"); ok {
		t.Errorf("KindOf should reject unknown names")
	}
}
