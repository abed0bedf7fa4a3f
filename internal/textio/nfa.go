package textio

import (
	"fmt"
	"io"
	"strings"

	"github.com/geange/fsa"
)

const (
	epsilonToken = "$"
	noneToken    = "#"
)

// NFAInput is a parsed NFA replay document: the automaton and the symbol
// sequences to replay against it.
type NFAInput struct {
	Sequences  [][]fsa.Symbol
	Definition *fsa.NFADefinition
}

// ReadNFA parses the NFA replay format:
//
//	a,b|b          sequences
//	s0,s1,s2       states
//	a,b            alphabet
//	s2             acceptable states
//	s0             initial state
//	s0,$->s1       transitions until EOF or a blank line
//	s1,a->s2,s0
//
// "$" denotes epsilon and a destination list of "#" defines nothing.
// Repeated (state, symbol) lines accumulate their destinations.
func ReadNFA(r io.Reader) (*NFAInput, error) {
	lr := newLineReader(r)

	seqLine, err := lr.required("input sequences")
	if err != nil {
		return nil, err
	}
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

	table := fsa.NFATable{}
	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok || line == "" {
			break
		}
		state, symbol, rhs, err := lr.splitTransition(line)
		if err != nil {
			return nil, err
		}
		sym := fsa.NewSymbol(symbol)
		if symbol == epsilonToken {
			sym = fsa.Epsilon
		}
		var dests []fsa.State
		for _, d := range strings.Split(rhs, ",") {
			if d == noneToken {
				continue
			}
			if d == "" {
				return nil, lr.syntaxError(line, "empty destination state")
			}
			dests = append(dests, fsa.NewState(d))
		}
		table.Add(fsa.NewState(state), sym, dests...)
	}

	def, err := fsa.NewNFADefinition(
		fsa.States(splitList(statesLine)...),
		fsa.Symbols(splitList(alphabetLine)...),
		table,
		fsa.NewState(initialLine),
		fsa.States(splitList(acceptLine)...),
	)
	if err != nil {
		return nil, fmt.Errorf("nfa definition: %w", err)
	}

	return &NFAInput{Sequences: parseSequences(seqLine), Definition: def}, nil
}

// parseSequences splits "a,b|c" into symbol sequences. An empty line replays a
// single empty sequence.
func parseSequences(line string) [][]fsa.Symbol {
	parts := strings.Split(line, "|")
	seqs := make([][]fsa.Symbol, len(parts))
	for i, part := range parts {
		seqs[i] = fsa.Symbols(splitList(part)...)
	}
	return seqs
}

// FormatTrace renders one replay: each step's states joined by "," ("#" when
// empty), steps joined by "|".
func FormatTrace(trace [][]fsa.State) string {
	steps := make([]string, len(trace))
	for i, step := range trace {
		steps[i] = fsa.JoinStates(step)
	}
	return strings.Join(steps, "|")
}

// WriteTraces replays every sequence of in and writes one line per sequence.
func WriteTraces(w io.Writer, in *NFAInput) error {
	nfa := fsa.NewNFA(in.Definition)
	for _, seq := range in.Sequences {
		if _, err := fmt.Fprintln(w, FormatTrace(nfa.Trace(seq))); err != nil {
			return err
		}
	}
	return nil
}
