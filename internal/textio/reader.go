// Package textio reads and writes the line-oriented interchange text of the
// NFA replay and DFA minimization programs.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMalformed is matched by every parse failure.
	ErrMalformed = errors.New("malformed automaton text")

	// ErrTruncated reports a stream that ended before a required line.
	ErrTruncated = fmt.Errorf("%w: unexpected end of input", ErrMalformed)
)

// SyntaxError reports an invalid line.
type SyntaxError struct {
	Line   int
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}

const maxLineSize = 1 << 20

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{scanner: s}
}

// next Returns the next line; ok is false at end of input.
func (r *lineReader) next() (string, bool, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", false, fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		return "", false, nil
	}
	r.line++
	return strings.TrimSpace(r.scanner.Text()), true, nil
}

// required Returns the next line, failing with ErrTruncated at end of input.
func (r *lineReader) required(what string) (string, error) {
	line, ok, err := r.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: missing %s (line %d)", ErrTruncated, what, r.line+1)
	}
	return line, nil
}

func (r *lineReader) syntaxError(text, reason string) error {
	return &SyntaxError{Line: r.line, Text: text, Reason: reason}
}

// splitList splits a ","-separated line; an empty line is an empty list.
func splitList(line string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, ",")
}

// splitTransition splits "state,symbol->rhs".
func (r *lineReader) splitTransition(line string) (state, symbol, rhs string, err error) {
	lhs, rhs, found := strings.Cut(line, "->")
	if !found {
		return "", "", "", r.syntaxError(line, `transition lacks "->"`)
	}
	parts := strings.Split(lhs, ",")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", r.syntaxError(line, `transition source must be "state,symbol"`)
	}
	return parts[0], parts[1], rhs, nil
}
