package fsa

import "github.com/bits-and-blooms/bitset"

// stateIndex numbers the states of a definition in label order so that
// state sets can be kept in bitsets.
type stateIndex struct {
	states []State
	pos    map[State]uint
}

func newStateIndex(states []State) *stateIndex {
	idx := &stateIndex{
		states: states,
		pos:    make(map[State]uint, len(states)),
	}
	for i, s := range states {
		idx.pos[s] = uint(i)
	}
	return idx
}

func (x *stateIndex) len() uint {
	return uint(len(x.states))
}

func (x *stateIndex) toSet(bits *bitset.BitSet) StateSet {
	set := NewStateSet()
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		set.Add(x.states[i])
	}
	return set
}

// Returns the states reachable from the initial state following every
// alphabet symbol. If the bit is set then that state is reachable.
func getLiveStatesFromInitial(d *DFADefinition, idx *stateIndex) *bitset.BitSet {
	live := bitset.New(idx.len())
	start := idx.pos[d.initial]
	live.Set(start)

	workList := []uint{start}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		for _, symbol := range d.alphabet {
			dest, ok := d.transitions.Lookup(idx.states[s], symbol)
			if !ok {
				continue
			}
			if p := idx.pos[dest]; !live.Test(p) {
				live.Set(p)
				workList = append(workList, p)
			}
		}
	}
	return live
}

// Reachable Returns the states reachable from the initial state, the initial
// state included.
func Reachable(d *DFADefinition) StateSet {
	idx := newStateIndex(d.states.Sorted())
	return idx.toSet(getLiveStatesFromInitial(d, idx))
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(d *DFADefinition) bool {
	if d.acceptable.Len() == 0 {
		// Common case: no accept states at all
		return true
	}
	if d.acceptable.Contains(d.initial) {
		// Accepts the empty string
		return false
	}

	idx := newStateIndex(d.states.Sorted())
	accept := bitset.New(idx.len())
	for s := range d.acceptable.inner {
		accept.Set(idx.pos[s])
	}
	return getLiveStatesFromInitial(d, idx).IntersectionCardinality(accept) == 0
}
