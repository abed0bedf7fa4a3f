package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geange/fsa"
)

// ReadDFA parses the DFA format: states, alphabet, acceptable states and the
// initial state on one line each, then "state,symbol->dest" lines until EOF or
// a blank line. A later line for the same (state, symbol) replaces the earlier one.
func ReadDFA(r io.Reader) (*fsa.DFADefinition, error) {
	lr := newLineReader(r)

	statesLine, err := lr.required("states")
	if err != nil {
		return nil, err
	}
	alphabetLine, err := lr.required("alphabet")
	if err != nil {
		return nil, err
	}
	acceptLine, err := lr.required("acceptable states")
	if err != nil {
		return nil, err
	}
	initialLine, err := lr.required("initial state")
	if err != nil {
		return nil, err
	}

	table := fsa.DFATable{}
	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok || line == "" {
			break
		}
		state, symbol, dest, err := lr.splitTransition(line)
		if err != nil {
			return nil, err
		}
		if dest == "" || strings.Contains(dest, ",") {
			return nil, lr.syntaxError(line, "deterministic transition needs exactly one destination")
		}
		table.Set(fsa.NewState(state), fsa.NewSymbol(symbol), fsa.NewState(dest))
	}

	def, err := fsa.NewDFADefinition(
		fsa.States(splitList(statesLine)...),
		fsa.Symbols(splitList(alphabetLine)...),
		table,
		fsa.NewState(initialLine),
		fsa.States(splitList(acceptLine)...),
	)
	if err != nil {
		return nil, fmt.Errorf("dfa definition: %w", err)
	}
	return def, nil
}

// WriteDFA writes d in the DFA format with sorted sets and transitions sorted
// by (state, symbol).
func WriteDFA(w io.Writer, d *fsa.DFADefinition) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, joinLabels(d.States()))
	fmt.Fprintln(bw, joinLabels(d.Alphabet()))
	fmt.Fprintln(bw, joinLabels(d.Acceptable()))
	fmt.Fprintln(bw, d.Initial())

	t := d.Transitions()
	for _, key := range t.Keys() {
		fmt.Fprintf(bw, "%s->%s\n", key, t[key])
	}
	return bw.Flush()
}

func joinLabels[T fmt.Stringer](items []T) string {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.String()
	}
	return strings.Join(labels, ",")
}
