/*
Package fsa simulates and minimizes finite automata.

An NFA (with epsilon moves) is simulated over the set of states it may be in;
a DFA over its single current state, which becomes undefined once a transition
is missing. Minimize reduces a DFA to its reachable states and collapses
equivalent states using table-filling with dependency propagation.

# Usage

	def, err := fsa.NewDFADefinition(
		fsa.States("q0", "q1"),
		fsa.Symbols("a"),
		fsa.DFATable{fsa.Key(fsa.NewState("q0"), fsa.NewSymbol("a")): fsa.NewState("q1")},
		fsa.NewState("q0"),
		fsa.States("q1"),
	)
	if err != nil {
		log.Fatal(err)
	}
	minimal, err := fsa.Minimize(def)

Definitions are immutable and may be shared; NFA and DFA simulators are not
safe for concurrent use.
*/
package fsa

// Version of the fsa toolkit.
const Version = "0.3.0"
