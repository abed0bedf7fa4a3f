package fsa

import "slices"

// NFATable is the transition relation of a nondeterministic automaton.
// Defining the same key twice accumulates destinations by union.
type NFATable map[OrderedKey]StateSet

// Add Add destinations for (state, symbol). An empty destination list is a no-op.
func (t NFATable) Add(state State, symbol Symbol, dests ...State) {
	if len(dests) == 0 {
		return
	}
	key := Key(state, symbol)
	set, ok := t[key]
	if !ok {
		set = NewStateSet()
		t[key] = set
	}
	for _, d := range dests {
		set.Add(d)
	}
}

// Lookup Returns the destinations of (state, symbol), if any.
func (t NFATable) Lookup(state State, symbol Symbol) (StateSet, bool) {
	set, ok := t[Key(state, symbol)]
	return set, ok
}

// Keys Returns all keys in canonical order.
func (t NFATable) Keys() []OrderedKey {
	return sortedKeys(t)
}

func (t NFATable) clone() NFATable {
	c := make(NFATable, len(t))
	for k, v := range t {
		c[k] = v.Clone()
	}
	return c
}

// DFATable is the transition function of a deterministic automaton.
// Defining the same key twice keeps the later destination.
type DFATable map[OrderedKey]State

func (t DFATable) Set(state State, symbol Symbol, dest State) {
	t[Key(state, symbol)] = dest
}

// Lookup Performs lookup in transitions. Returns false if no transition is defined.
func (t DFATable) Lookup(state State, symbol Symbol) (State, bool) {
	dest, ok := t[Key(state, symbol)]
	return dest, ok
}

// Keys Returns all keys in canonical order.
func (t DFATable) Keys() []OrderedKey {
	return sortedKeys(t)
}

func (t DFATable) clone() DFATable {
	c := make(DFATable, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

func sortedKeys[V any](m map[OrderedKey]V) []OrderedKey {
	keys := make([]OrderedKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, OrderedKey.Compare)
	return keys
}
