package fsa

import "strconv"

// Automata builds small deterministic automata over a fixed alphabet.
type Automata struct {
	Alphabet []Symbol
}

// MakeEmpty
// Returns a new automaton with the empty language: a single, non-accepting
// state without transitions.
func (a *Automata) MakeEmpty() (*DFADefinition, error) {
	s := NewState("q0")
	return NewDFADefinition([]State{s}, a.Alphabet, DFATable{}, s, nil)
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (a *Automata) MakeEmptyString() (*DFADefinition, error) {
	s := NewState("q0")
	return NewDFADefinition([]State{s}, a.Alphabet, DFATable{}, s, []State{s})
}

// MakeAnyString
// Returns a new automaton that accepts all strings over the alphabet.
func (a *Automata) MakeAnyString() (*DFADefinition, error) {
	s := NewState("q0")
	t := DFATable{}
	for _, symbol := range a.Alphabet {
		t.Set(s, symbol, s)
	}
	return NewDFADefinition([]State{s}, a.Alphabet, t, s, []State{s})
}

// MakeString
// Returns a new automaton that accepts only word. States are named q0..qN.
func (a *Automata) MakeString(word []Symbol) (*DFADefinition, error) {
	states := make([]State, len(word)+1)
	for i := range states {
		states[i] = NewState("q" + strconv.Itoa(i))
	}
	t := DFATable{}
	for i, symbol := range word {
		t.Set(states[i], symbol, states[i+1])
	}
	return NewDFADefinition(states, a.Alphabet, t, states[0], states[len(word):])
}
