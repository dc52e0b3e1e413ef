package grammar

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Grammar files are line oriented. Every line holds whitespace separated fields,
// the last field may be a double-quoted string. '#' starts a comment.

const (
	tokField int = iota
	tokQuoted
)

var (
	lexer        *lexmachine.Lexer
	lexerErr     error
	lexerCompile sync.Once
)

func fileLexer() (*lexmachine.Lexer, error) {
	lexerCompile.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte("( |\t|\r|\n)+"), skip)
		lexer.Add([]byte("#[^\n]*"), skip)
		lexer.Add([]byte("\"([^\"\\\\\n]|\\\\.)*\""), makeToken(tokQuoted))
		lexer.Add([]byte("[^ \t\r\n\"#]+"), makeToken(tokField))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// record is a non-empty line of a grammar file.
type record struct {
	line   int
	fields []string
	quoted string // optional quoted last field, unquoted
	closed bool   // quoted field has been read
}

// records splits the content of a grammar file into records. name is used for
// error messages only.
func records(name string, input []byte) ([]record, error) {
	lx, err := fileLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	var recs []record
	var current *record
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return recs, fmt.Errorf("%s:%d: unexpected input %q", name, ui.FailLine,
					snippet(ui.Text, ui.FailTC))
			}
			return recs, fmt.Errorf("%s: %w", name, err)
		}
		if eof {
			break
		}
		token := tok.(*lexmachine.Token)
		if current == nil || current.line != token.StartLine {
			recs = append(recs, record{line: token.StartLine})
			current = &recs[len(recs)-1]
		}
		if current.closed {
			return recs, fmt.Errorf("%s:%d: quoted string must be the last field", name, current.line)
		}
		lexeme := string(token.Lexeme)
		if token.Type == tokQuoted {
			if current.quoted, err = strconv.Unquote(lexeme); err != nil {
				return recs, fmt.Errorf("%s:%d: %w", name, current.line, err)
			}
			current.closed = true
		} else {
			current.fields = append(current.fields, lexeme)
		}
	}
	tracer().Debugf("%s: %d records", name, len(recs))
	return recs, nil
}

func snippet(text []byte, at int) string {
	end := at + 10
	if end > len(text) {
		end = len(text)
	}
	if at > end {
		return ""
	}
	return string(text[at:end])
}
