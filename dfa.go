package fsa

// DFA simulates a deterministic automaton. Reading a symbol with no defined
// transition leaves the simulator without a current state until Reset.
// A DFA is not safe for concurrent use.
type DFA struct {
	def     *DFADefinition
	current State
	defined bool
}

func NewDFA(def *DFADefinition) *DFA {
	return &DFA{def: def, current: def.initial, defined: true}
}

func (d *DFA) Definition() *DFADefinition {
	return d.def
}

// ReadSymbol Looks up (current, symbol). Returns the new current state, or
// false if the transition is undefined or the simulator was already dead.
func (d *DFA) ReadSymbol(symbol Symbol) (State, bool) {
	if !d.defined {
		return State{}, false
	}
	next, ok := d.def.transitions.Lookup(d.current, symbol)
	d.current, d.defined = next, ok
	return d.current, d.defined
}

// ReadSequence Reads every symbol in order and returns the final state.
func (d *DFA) ReadSequence(seq []Symbol) (State, bool) {
	for _, symbol := range seq {
		d.ReadSymbol(symbol)
	}
	return d.Current()
}

func (d *DFA) Reset() State {
	d.current, d.defined = d.def.initial, true
	return d.current
}

func (d *DFA) Current() (State, bool) {
	if !d.defined {
		return State{}, false
	}
	return d.current, true
}

// IsAcceptable Returns true if state is an accept state.
func (d *DFA) IsAcceptable(state State) bool {
	return d.def.acceptable.Contains(state)
}

// Accepts Returns true if seq drives the automaton from its initial state into
// an accept state. The simulator is reset before and after.
func (d *DFA) Accepts(seq []Symbol) bool {
	d.Reset()
	s, ok := d.ReadSequence(seq)
	d.Reset()
	return ok && d.IsAcceptable(s)
}
