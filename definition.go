package fsa

import "slices"

// NFADefinition is the 5-tuple of a nondeterministic automaton with epsilon
// moves. It is immutable once built; accessors return copies.
type NFADefinition struct {
	states      StateSet
	alphabet    []Symbol
	transitions NFATable
	initial     State
	acceptable  StateSet
}

// NewNFADefinition validates and copies the given tuple. Transitions may use
// Epsilon in addition to the alphabet symbols.
func NewNFADefinition(states []State, alphabet []Symbol, transitions NFATable, initial State, acceptable []State) (*NFADefinition, error) {
	d := &NFADefinition{
		states:      NewStateSet(states...),
		alphabet:    normalizeAlphabet(alphabet),
		transitions: transitions.clone(),
		initial:     initial,
		acceptable:  NewStateSet(acceptable...),
	}

	v := &violations{}
	checkCommon(v, d.states, alphabet, initial, acceptable)
	for _, key := range d.transitions.Keys() {
		checkKey(v, d.states, d.alphabet, key, true)
		for _, dest := range d.transitions[key].Sorted() {
			if !d.states.Contains(dest) {
				v.add("transitions", "destination of "+key.String()+" is not a declared state", dest.label)
			}
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *NFADefinition) States() []State {
	return d.states.Sorted()
}

func (d *NFADefinition) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

func (d *NFADefinition) Transitions() NFATable {
	return d.transitions.clone()
}

func (d *NFADefinition) Initial() State {
	return d.initial
}

func (d *NFADefinition) Acceptable() []State {
	return d.acceptable.Sorted()
}

func (d *NFADefinition) IsAcceptable(s State) bool {
	return d.acceptable.Contains(s)
}

// DFADefinition is the 5-tuple of a deterministic automaton. The transition
// function may be partial. It is immutable once built; accessors return copies.
type DFADefinition struct {
	states      StateSet
	alphabet    []Symbol
	transitions DFATable
	initial     State
	acceptable  StateSet
}

// NewDFADefinition validates and copies the given tuple.
func NewDFADefinition(states []State, alphabet []Symbol, transitions DFATable, initial State, acceptable []State) (*DFADefinition, error) {
	d := &DFADefinition{
		states:      NewStateSet(states...),
		alphabet:    normalizeAlphabet(alphabet),
		transitions: transitions.clone(),
		initial:     initial,
		acceptable:  NewStateSet(acceptable...),
	}

	v := &violations{}
	checkCommon(v, d.states, alphabet, initial, acceptable)
	for _, key := range d.transitions.Keys() {
		checkKey(v, d.states, d.alphabet, key, false)
		if dest := d.transitions[key]; !d.states.Contains(dest) {
			v.add("transitions", "destination of "+key.String()+" is not a declared state", dest.label)
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DFADefinition) States() []State {
	return d.states.Sorted()
}

func (d *DFADefinition) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

func (d *DFADefinition) Transitions() DFATable {
	return d.transitions.clone()
}

func (d *DFADefinition) Initial() State {
	return d.initial
}

func (d *DFADefinition) Acceptable() []State {
	return d.acceptable.Sorted()
}

func (d *DFADefinition) IsAcceptable(s State) bool {
	return d.acceptable.Contains(s)
}

// Step Performs lookup in transitions. Returns false if no transition is defined.
func (d *DFADefinition) Step(s State, symbol Symbol) (State, bool) {
	return d.transitions.Lookup(s, symbol)
}

func normalizeAlphabet(alphabet []Symbol) []Symbol {
	out := slices.Clone(alphabet)
	slices.SortFunc(out, Symbol.Compare)
	return slices.Compact(out)
}

func checkCommon(v *violations, states StateSet, alphabet []Symbol, initial State, acceptable []State) {
	for _, s := range alphabet {
		if s.IsEpsilon() {
			v.add("alphabet", "epsilon cannot be an alphabet symbol", "")
			break
		}
	}
	if initial.label == "" {
		v.add("initial", "initial state is required", "")
	} else if !states.Contains(initial) {
		v.add("initial", "initial state is not a declared state", initial.label)
	}
	for _, s := range acceptable {
		if !states.Contains(s) {
			v.add("acceptable", "acceptable state is not a declared state", s.label)
		}
	}
}

func checkKey(v *violations, states StateSet, alphabet []Symbol, key OrderedKey, allowEpsilon bool) {
	if !states.Contains(key.State) {
		v.add("transitions", "source of "+key.String()+" is not a declared state", key.State.label)
	}
	if key.Symbol.IsEpsilon() {
		if !allowEpsilon {
			v.add("transitions", "epsilon transitions are not allowed in a deterministic automaton", key.String())
		}
		return
	}
	if _, found := slices.BinarySearchFunc(alphabet, key.Symbol, Symbol.Compare); !found {
		v.add("transitions", "symbol of "+key.String()+" is not in the alphabet", key.Symbol.label)
	}
}
