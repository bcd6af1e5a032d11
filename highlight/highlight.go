// Package highlight maps the scanner's token stream onto terminal
// styles. It produces non-overlapping regions sorted by start offset;
// gaps between regions are whitespace and render as plain text.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikevskater/tsqlscan/lexer"
	"github.com/mikevskater/tsqlscan/token"
)

// Region is a styled span within the source buffer. Start and End are
// byte offsets, End exclusive.
type Region struct {
	Start int
	End   int
	Style lipgloss.Style
}

// Theme maps token kinds to styles. Kinds without an entry render plain.
type Theme map[token.Kind]lipgloss.Style

// DefaultTheme returns the stock color mapping.
func DefaultTheme() Theme {
	keyword := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	str := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	number := lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	comment := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	variable := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	tempTable := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	bracket := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	operator := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	return Theme{
		token.KEYWORD:           keyword,
		token.STRING:            str,
		token.NUMBER:            number,
		token.COMMENT:           comment,
		token.LINE_COMMENT:      comment,
		token.VARIABLE:          variable,
		token.GLOBAL_VARIABLE:   variable,
		token.TEMP_TABLE:        tempTable,
		token.GLOBAL_TEMP_TABLE: tempTable,
		token.BRACKET_IDENT:     bracket,
		token.STAR:              operator,
		token.OPERATOR:          operator,
	}
}

// Regions tokenizes source and returns one styled region per token that
// has a style in the theme. Regions are non-overlapping and sorted by
// Start; unstyled tokens and whitespace are gaps.
func Regions(source string, theme Theme) []Region {
	var out []Region
	idx := 0
	for _, tok := range lexer.Tokenize(source) {
		for idx < len(source) && isSpace(source[idx]) {
			idx++
		}
		start := idx
		idx += len(tok.Text)
		if style, ok := theme[tok.Kind]; ok {
			out = append(out, Region{Start: start, End: idx, Style: style})
		}
	}
	return out
}

// Render returns source with each region's style applied, gaps emitted
// verbatim.
func Render(source string, theme Theme) string {
	var b strings.Builder
	idx := 0
	for _, r := range Regions(source, theme) {
		b.WriteString(source[idx:r.Start])
		b.WriteString(r.Style.Render(source[r.Start:r.End]))
		idx = r.End
	}
	b.WriteString(source[idx:])
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
