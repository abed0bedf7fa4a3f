package fsa

// Run Returns true if the automaton accepts seq. An undefined transition rejects.
func Run(d *DFADefinition, seq []Symbol) bool {
	state := d.initial
	for _, symbol := range seq {
		next, ok := d.transitions.Lookup(state, symbol)
		if !ok {
			return false
		}
		state = next
	}
	return d.acceptable.Contains(state)
}
