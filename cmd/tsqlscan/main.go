// Command tsqlscan tokenizes T-SQL from files, arguments or an
// interactive prompt.
//
// Usage:
//
//	tsqlscan [flags] [file ...]
//	tsqlscan -e "SELECT * FROM t"
//	tsqlscan            # interactive prompt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/peterh/liner"

	"github.com/mikevskater/tsqlscan/highlight"
	"github.com/mikevskater/tsqlscan/lexer"
	"github.com/mikevskater/tsqlscan/splitter"
	"github.com/mikevskater/tsqlscan/token"
)

const prompt = "sql> "

var (
	expr     = flag.String("e", "", "tokenize this string instead of reading files")
	doSplit  = flag.Bool("split", false, "print statement spans instead of tokens")
	doColor  = flag.Bool("color", false, "print the highlighted buffer instead of tokens")
	showPos  = flag.Bool("pos", true, "include line:col in token output")
	showTriv = flag.Bool("trivia", true, "include comment tokens in token output")
)

func main() {
	flag.Parse()

	if *expr != "" {
		process(os.Stdout, *expr)
		return
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			data, err := os.ReadFile(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "tsqlscan: %v\n", err)
				os.Exit(1)
			}
			process(os.Stdout, string(data))
		}
		return
	}

	repl(os.Stdout)
}

func process(out io.Writer, source string) {
	switch {
	case *doColor:
		fmt.Fprintln(out, highlight.Render(source, highlight.DefaultTheme()))
	case *doSplit:
		printStatements(out, splitter.Split(source))
	default:
		printTokens(out, lexer.Tokenize(source))
	}
}

func printTokens(out io.Writer, tokens []token.Token) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	for _, tok := range tokens {
		if !*showTriv && (tok.Kind == token.COMMENT || tok.Kind == token.LINE_COMMENT) {
			continue
		}
		if *showPos {
			fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line, tok.Col, tok.Kind, tok.Text)
		} else {
			fmt.Fprintf(w, "%s\t%q\n", tok.Kind, tok.Text)
		}
	}
	w.Flush()
}

func printStatements(out io.Writer, stmts []splitter.Statement) {
	for i, s := range stmts {
		fmt.Fprintf(out, "-- statement %d (line %d, col %d)\n%s\n", i+1, s.Line, s.Col, s.Text)
	}
	fmt.Fprintf(out, "-- %d statement(s)\n", len(stmts))
}

// repl runs the interactive prompt with history and keyword completion.
func repl(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeKeyword)

	historyFile := filepath.Join(os.TempDir(), ".tsqlscan_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, "tsqlscan - type SQL to see its tokens, 'exit' or Ctrl+D to quit")

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out)
				return
			}
			fmt.Fprintf(out, "error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			return
		}
		line.AppendHistory(input)

		process(out, input)
	}
}

// completeKeyword completes the word being typed against the reserved
// word list.
func completeKeyword(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		return nil
	}
	last := strings.ToUpper(fields[len(fields)-1])
	head := line[:len(line)-len(fields[len(fields)-1])]

	var matches []string
	for _, kw := range token.Keywords() {
		if strings.HasPrefix(kw, last) {
			matches = append(matches, head+kw)
		}
	}
	return matches
}
