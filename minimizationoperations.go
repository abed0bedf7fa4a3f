package fsa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Minimize Returns the minimal automaton accepting the same language as d,
// using table-filling (Myhill-Nerode) equivalence. Unreachable states are
// dropped and every equivalence class collapses into its smallest label.
// d is not modified.
func Minimize(d *DFADefinition) (*DFADefinition, error) {
	return Analyze(d).Quotient()
}

// Analysis holds the state equivalence of one automaton. It is computed once
// by Analyze and is read-only afterwards, so it may be shared between goroutines.
type Analysis struct {
	m *minimization
}

// Analyze Runs reachability pruning and distinguishability marking on d.
func Analyze(d *DFADefinition) *Analysis {
	m := newMinimization(d)
	m.markDistinguishable()
	m.selectRepresentatives()
	return &Analysis{m: m}
}

// Reachable Returns the reachable states in label order.
func (a *Analysis) Reachable() []State {
	return slices.Clone(a.m.idx.states)
}

// Distinguishable Returns true if p and q are both reachable and some string
// separates them. Unreachable states are outside the analysis.
func (a *Analysis) Distinguishable(p, q State) bool {
	i, ok1 := a.m.idx.pos[p]
	j, ok2 := a.m.idx.pos[q]
	if !ok1 || !ok2 || i == j {
		return false
	}
	return a.m.marked.Test(pairIndex(i, j))
}

// Equivalent Returns true if p and q are both reachable and accept the same strings.
func (a *Analysis) Equivalent(p, q State) bool {
	i, ok1 := a.m.idx.pos[p]
	j, ok2 := a.m.idx.pos[q]
	if !ok1 || !ok2 {
		return false
	}
	return i == j || !a.m.marked.Test(pairIndex(i, j))
}

// DistinguishablePairs Returns every distinguishable pair of reachable states
// in canonical order.
func (a *Analysis) DistinguishablePairs() []UnorderedKey {
	var pairs []UnorderedKey
	states := a.m.idx.states
	for j := 1; j < len(states); j++ {
		for i := 0; i < j; i++ {
			if a.m.marked.Test(pairIndex(uint(i), uint(j))) {
				pairs = append(pairs, NewUnorderedKey(states[i], states[j]))
			}
		}
	}
	slices.SortFunc(pairs, UnorderedKey.Compare)
	return pairs
}

// Representative Returns the representative of the class of s; false if s is unreachable.
func (a *Analysis) Representative(s State) (State, bool) {
	if _, ok := a.m.idx.pos[s]; !ok {
		return State{}, false
	}
	return a.m.resolve(s), true
}

// Classes Returns the equivalence classes, each in label order, ordered by representative.
func (a *Analysis) Classes() [][]State {
	byRep := make(map[State][]State)
	var reps []State
	for _, s := range a.m.idx.states {
		r := a.m.resolve(s)
		if r == s {
			reps = append(reps, r)
		}
		byRep[r] = append(byRep[r], s)
	}
	classes := make([][]State, len(reps))
	for i, r := range reps {
		classes[i] = byRep[r]
	}
	return classes
}

// Quotient Builds the automaton over one representative per class.
func (a *Analysis) Quotient() (*DFADefinition, error) {
	m := a.m
	var states, acceptable []State
	for _, s := range m.idx.states {
		if m.resolve(s) != s {
			continue
		}
		states = append(states, s)
		if m.def.acceptable.Contains(s) {
			acceptable = append(acceptable, s)
		}
	}

	transitions := make(DFATable)
	for _, key := range m.def.transitions.Keys() {
		if _, ok := m.idx.pos[key.State]; !ok {
			continue
		}
		src := m.resolve(key.State)
		dest := m.resolve(m.def.transitions[key])
		if prev, ok := transitions.Lookup(src, key.Symbol); ok && prev != dest {
			return nil, fmt.Errorf("%w: %s leads to both %s and %s after merging", ErrInconsistent, Key(src, key.Symbol), prev, dest)
		}
		transitions.Set(src, key.Symbol, dest)
	}

	out, err := NewDFADefinition(states, m.def.alphabet, transitions, m.resolve(m.def.initial), acceptable)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInconsistent, err)
	}
	return out, nil
}

// minimization is the scratch state of one Analyze call. Reachable states are
// numbered 0..n-1 in label order; number n is an implicit non-accepting sink
// standing in for every undefined transition.
type minimization struct {
	def   *DFADefinition
	idx   *stateIndex
	sink  uint
	delta [][]uint

	accept *bitset.BitSet
	// marked holds one bit per unordered pair, see pairIndex.
	marked         *bitset.BitSet
	dependents     map[uint][]uint
	representative map[State]State
}

func newMinimization(d *DFADefinition) *minimization {
	full := newStateIndex(d.states.Sorted())
	reachable := full.toSet(getLiveStatesFromInitial(d, full)).Sorted()
	idx := newStateIndex(reachable)

	n := idx.len()
	m := &minimization{
		def:            d,
		idx:            idx,
		sink:           n,
		delta:          make([][]uint, n+1),
		accept:         bitset.New(n + 1),
		marked:         bitset.New(pairIndex(0, n+1)),
		dependents:     make(map[uint][]uint),
		representative: make(map[State]State),
	}

	for i, s := range reachable {
		if d.acceptable.Contains(s) {
			m.accept.Set(uint(i))
		}
		row := make([]uint, len(d.alphabet))
		for a, symbol := range d.alphabet {
			if dest, ok := d.transitions.Lookup(s, symbol); ok {
				row[a] = idx.pos[dest]
			} else {
				row[a] = m.sink
			}
		}
		m.delta[i] = row
	}
	sinkRow := make([]uint, len(d.alphabet))
	for a := range sinkRow {
		sinkRow[a] = m.sink
	}
	m.delta[m.sink] = sinkRow

	return m
}

// pairIndex numbers the unordered pair {i, j}, i != j, densely:
// pairs of states below k occupy indexes [0, k*(k-1)/2).
func pairIndex(i, j uint) uint {
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

func (m *minimization) markDistinguishable() {
	size := m.sink + 1

	for j := uint(1); j < size; j++ {
		for i := uint(0); i < j; i++ {
			if m.accept.Test(i) != m.accept.Test(j) {
				m.marked.Set(pairIndex(i, j))
			}
		}
	}

	for j := uint(1); j < size; j++ {
		for i := uint(0); i < j; i++ {
			p := pairIndex(i, j)
			if m.marked.Test(p) {
				continue
			}
			for a := range m.def.alphabet {
				di, dj := m.delta[i][a], m.delta[j][a]
				if di == dj {
					continue
				}
				q := pairIndex(di, dj)
				if m.marked.Test(q) {
					m.mark(p)
					break
				}
				m.dependents[q] = append(m.dependents[q], p)
			}
		}
	}
}

// mark Marks pair p and, transitively, every pair waiting on it.
func (m *minimization) mark(p uint) {
	if m.marked.Test(p) {
		return
	}
	m.marked.Set(p)

	stack := []uint{p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, dep := range m.dependents[q] {
			if !m.marked.Test(dep) {
				m.marked.Set(dep)
				stack = append(stack, dep)
			}
		}
		delete(m.dependents, q)
	}
}

// selectRepresentatives maps every state that is not the smallest of its
// class to the smallest one.
func (m *minimization) selectRepresentatives() {
	states := m.idx.states
	for j := 1; j < len(states); j++ {
		for i := 0; i < j; i++ {
			if !m.marked.Test(pairIndex(uint(i), uint(j))) {
				m.representative[states[j]] = states[i]
				break
			}
		}
	}
}

// resolve Follows representative links to a fixed point.
func (m *minimization) resolve(s State) State {
	for steps := 0; steps <= len(m.representative); steps++ {
		r, ok := m.representative[s]
		if !ok || r == s {
			return s
		}
		s = r
	}
	return s
}
