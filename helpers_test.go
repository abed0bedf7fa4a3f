package fsa

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func splitLabels(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// mustDFA builds a definition from "state,symbol->dest" lines.
func mustDFA(t testing.TB, states, alphabet, accept, initial string, transitions ...string) *DFADefinition {
	t.Helper()
	table := DFATable{}
	for _, tr := range transitions {
		lhs, dest, ok := strings.Cut(tr, "->")
		require.True(t, ok, tr)
		state, symbol, ok := strings.Cut(lhs, ",")
		require.True(t, ok, tr)
		table.Set(NewState(state), NewSymbol(symbol), NewState(dest))
	}
	def, err := NewDFADefinition(States(splitLabels(states)...), Symbols(splitLabels(alphabet)...),
		table, NewState(initial), States(splitLabels(accept)...))
	require.NoError(t, err)
	return def
}

// mustNFA builds a definition from "state,symbol->d1,d2" lines; "$" is epsilon.
func mustNFA(t testing.TB, states, alphabet, accept, initial string, transitions ...string) *NFADefinition {
	t.Helper()
	table := NFATable{}
	for _, tr := range transitions {
		lhs, dests, ok := strings.Cut(tr, "->")
		require.True(t, ok, tr)
		state, symbol, ok := strings.Cut(lhs, ",")
		require.True(t, ok, tr)
		sym := NewSymbol(symbol)
		if symbol == "$" {
			sym = Epsilon
		}
		table.Add(NewState(state), sym, States(splitLabels(dests)...)...)
	}
	def, err := NewNFADefinition(States(splitLabels(states)...), Symbols(splitLabels(alphabet)...),
		table, NewState(initial), States(splitLabels(accept)...))
	require.NoError(t, err)
	return def
}

// runFrom reports whether w leads from s into an accept state of d.
func runFrom(d *DFADefinition, s State, w []Symbol) bool {
	for _, symbol := range w {
		next, ok := d.Step(s, symbol)
		if !ok {
			return false
		}
		s = next
	}
	return d.IsAcceptable(s)
}

// randomDFA returns a partial DFA with n states over alphabet; every
// transition is defined with probability density.
func randomDFA(t testing.TB, r *rand.Rand, n int, alphabet []Symbol, density float64) *DFADefinition {
	t.Helper()
	states := make([]State, n)
	for i := range states {
		states[i] = NewState("s" + strconv.Itoa(i))
	}
	table := DFATable{}
	var accept []State
	for _, s := range states {
		if r.IntN(3) == 0 {
			accept = append(accept, s)
		}
		for _, symbol := range alphabet {
			if r.Float64() < density {
				table.Set(s, symbol, states[r.IntN(n)])
			}
		}
	}
	def, err := NewDFADefinition(states, alphabet, table, states[r.IntN(n)], accept)
	require.NoError(t, err)
	return def
}

func randomWord(r *rand.Rand, alphabet []Symbol, maxLen int) []Symbol {
	w := make([]Symbol, r.IntN(maxLen+1))
	for i := range w {
		w[i] = alphabet[r.IntN(len(alphabet))]
	}
	return w
}
