package fsa

// NFA simulates a nondeterministic automaton with epsilon moves. It tracks the
// set of states the automaton may currently be in. An NFA is not safe for
// concurrent use.
type NFA struct {
	def     *NFADefinition
	current StateSet
}

// NewNFA Create a simulator positioned at the epsilon-closure of the initial state.
func NewNFA(def *NFADefinition) *NFA {
	n := &NFA{def: def}
	n.Reset()
	return n
}

func (n *NFA) Definition() *NFADefinition {
	return n.def
}

// EpsilonClosure Returns every state reachable from s using only epsilon
// transitions, s included.
func (n *NFA) EpsilonClosure(s State) StateSet {
	return n.EpsilonClosureSet(NewStateSet(s))
}

// EpsilonClosureSet Returns the union of the epsilon-closures of every member of set.
func (n *NFA) EpsilonClosureSet(set StateSet) StateSet {
	closure := set.Clone()
	workList := set.Sorted()
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		dests, ok := n.def.transitions.Lookup(s, Epsilon)
		if !ok {
			continue
		}
		for _, d := range dests.Sorted() {
			if closure.Add(d) {
				workList = append(workList, d)
			}
		}
	}
	return closure
}

// ReadSymbol Advances every current state over symbol and returns the new
// current states in order. Once the current set is empty it stays empty
// until Reset.
func (n *NFA) ReadSymbol(symbol Symbol) []State {
	next := NewStateSet()
	for s := range n.current.inner {
		if dests, ok := n.def.transitions.Lookup(s, symbol); ok {
			next.Union(dests)
		}
	}
	n.current = n.EpsilonClosureSet(next)
	return n.current.Sorted()
}

// ReadSequence Reads every symbol in order and returns one snapshot per symbol.
// It never stops early: after the automaton dies the remaining snapshots are empty.
func (n *NFA) ReadSequence(seq []Symbol) [][]State {
	snapshots := make([][]State, 0, len(seq))
	for _, symbol := range seq {
		snapshots = append(snapshots, n.ReadSymbol(symbol))
	}
	return snapshots
}

// Reset Moves back to the epsilon-closure of the initial state.
func (n *NFA) Reset() []State {
	n.current = n.EpsilonClosure(n.def.initial)
	return n.current.Sorted()
}

func (n *NFA) Current() []State {
	return n.current.Sorted()
}

// Accepting Returns true if any current state is acceptable.
func (n *NFA) Accepting() bool {
	for s := range n.current.inner {
		if n.def.acceptable.Contains(s) {
			return true
		}
	}
	return false
}

// Trace Returns the initial snapshot followed by one snapshot per symbol of
// seq. The simulator is reset before and after.
func (n *NFA) Trace(seq []Symbol) [][]State {
	trace := make([][]State, 0, len(seq)+1)
	trace = append(trace, n.Reset())
	trace = append(trace, n.ReadSequence(seq)...)
	n.Reset()
	return trace
}
