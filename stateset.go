package fsa

import (
	"slices"
	"strings"
)

// StateSet is an unordered set of states. The zero value is not usable;
// create sets with NewStateSet.
type StateSet struct {
	inner map[State]struct{}
}

func NewStateSet(states ...State) StateSet {
	s := StateSet{inner: make(map[State]struct{}, len(states))}
	for _, state := range states {
		s.inner[state] = struct{}{}
	}
	return s
}

// Add Insert state, returning true if it was not yet present.
func (s StateSet) Add(state State) bool {
	if _, ok := s.inner[state]; ok {
		return false
	}
	s.inner[state] = struct{}{}
	return true
}

func (s StateSet) Contains(state State) bool {
	_, ok := s.inner[state]
	return ok
}

// Union Adds every member of other to s.
func (s StateSet) Union(other StateSet) {
	for state := range other.inner {
		s.inner[state] = struct{}{}
	}
}

// Len How many states this set has.
func (s StateSet) Len() int {
	return len(s.inner)
}

// Sorted Returns the members ordered by label.
func (s StateSet) Sorted() []State {
	states := make([]State, 0, len(s.inner))
	for state := range s.inner {
		states = append(states, state)
	}
	slices.SortFunc(states, State.Compare)
	return states
}

func (s StateSet) Clone() StateSet {
	c := StateSet{inner: make(map[State]struct{}, len(s.inner))}
	for state := range s.inner {
		c.inner[state] = struct{}{}
	}
	return c
}

func (s StateSet) Equal(other StateSet) bool {
	if len(s.inner) != len(other.inner) {
		return false
	}
	for state := range s.inner {
		if _, ok := other.inner[state]; !ok {
			return false
		}
	}
	return true
}

// String Returns the labels in order joined by ",", or "#" for the empty set.
func (s StateSet) String() string {
	return JoinStates(s.Sorted())
}

// JoinStates formats an ordered state list the way the interchange text does.
func JoinStates(states []State) string {
	if len(states) == 0 {
		return "#"
	}
	labels := make([]string, len(states))
	for i, state := range states {
		labels[i] = state.label
	}
	return strings.Join(labels, ",")
}
