package fsa

import "strings"

// Symbol is an input symbol of an automaton. Symbols with equal labels are
// interchangeable.
type Symbol struct {
	label string
}

// Epsilon is the empty-label symbol used for spontaneous transitions.
var Epsilon = Symbol{}

// NewSymbol Create a symbol with the given label. An empty label yields Epsilon.
func NewSymbol(label string) Symbol {
	return Symbol{label: label}
}

// Symbols maps every label to a Symbol, preserving order.
func Symbols(labels ...string) []Symbol {
	out := make([]Symbol, len(labels))
	for i, l := range labels {
		out[i] = NewSymbol(l)
	}
	return out
}

func (s Symbol) Label() string {
	return s.label
}

// IsEpsilon Returns true if this is the epsilon symbol.
func (s Symbol) IsEpsilon() bool {
	return s.label == ""
}

func (s Symbol) String() string {
	return s.label
}

// Compare orders symbols by label.
func (s Symbol) Compare(other Symbol) int {
	return strings.Compare(s.label, other.label)
}

// State is a state of an automaton, identified by its label.
type State struct {
	label string
}

func NewState(label string) State {
	return State{label: label}
}

// States maps every label to a State, preserving order.
func States(labels ...string) []State {
	out := make([]State, len(labels))
	for i, l := range labels {
		out[i] = NewState(l)
	}
	return out
}

func (s State) Label() string {
	return s.label
}

func (s State) String() string {
	return s.label
}

// Compare orders states by label.
func (s State) Compare(other State) int {
	return strings.Compare(s.label, other.label)
}

// Less Returns true if s sorts before other.
func (s State) Less(other State) bool {
	return s.label < other.label
}

// OrderedKey is the lookup key of a transition table.
type OrderedKey struct {
	State  State
	Symbol Symbol
}

func Key(state State, symbol Symbol) OrderedKey {
	return OrderedKey{State: state, Symbol: symbol}
}

// Compare orders keys by state, then by symbol.
func (k OrderedKey) Compare(other OrderedKey) int {
	if c := k.State.Compare(other.State); c != 0 {
		return c
	}
	return k.Symbol.Compare(other.Symbol)
}

func (k OrderedKey) String() string {
	return k.State.label + "," + k.Symbol.label
}

// UnorderedKey is a symmetric pair of states: NewUnorderedKey(a, b) and
// NewUnorderedKey(b, a) are equal under == and hash to the same map slot.
// The zero value is not a valid key; always use NewUnorderedKey.
type UnorderedKey struct {
	low, high State
}

// NewUnorderedKey Create a symmetric key; the pair is stored with the smaller
// label first.
func NewUnorderedKey(a, b State) UnorderedKey {
	if b.Less(a) {
		a, b = b, a
	}
	return UnorderedKey{low: a, high: b}
}

// First Returns the state with the smaller label.
func (k UnorderedKey) First() State {
	return k.low
}

// Second Returns the state with the larger label.
func (k UnorderedKey) Second() State {
	return k.high
}

// Contains Returns true if s is one of the two states.
func (k UnorderedKey) Contains(s State) bool {
	return k.low == s || k.high == s
}

func (k UnorderedKey) Compare(other UnorderedKey) int {
	if c := k.low.Compare(other.low); c != 0 {
		return c
	}
	return k.high.Compare(other.high)
}

func (k UnorderedKey) String() string {
	return "{" + k.low.label + "," + k.high.label + "}"
}
