package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachable(t *testing.T) {
	def := mustDFA(t, "q0,q1,q2,q3", "a,b", "q3", "q0",
		"q0,a->q1",
		"q1,b->q0",
		"q2,a->q3",
		"q3,a->q3",
	)
	assert.Equal(t, States("q0", "q1"), Reachable(def).Sorted())
}

func TestIsEmpty(t *testing.T) {
	automata := &Automata{Alphabet: Symbols("a", "b")}

	empty, err := automata.MakeEmpty()
	require.NoError(t, err)
	assert.True(t, IsEmpty(empty))

	emptyString, err := automata.MakeEmptyString()
	require.NoError(t, err)
	assert.False(t, IsEmpty(emptyString))

	unreachableAccept := mustDFA(t, "q0,q1,q2", "a", "q2", "q0",
		"q0,a->q1",
		"q1,a->q0",
		"q2,a->q2",
	)
	assert.True(t, IsEmpty(unreachableAccept))

	deepAccept := mustDFA(t, "q0,q1,q2", "a", "q2", "q0",
		"q0,a->q1",
		"q1,a->q2",
	)
	assert.False(t, IsEmpty(deepAccept))
}

func TestRun(t *testing.T) {
	automata := &Automata{Alphabet: Symbols("m", "n", "o")}
	word, err := automata.MakeString(Symbols("m", "o", "m"))
	require.NoError(t, err)
	anyString, err := automata.MakeAnyString()
	require.NoError(t, err)

	tests := []struct {
		name string
		def  *DFADefinition
		w    []Symbol
		want bool
	}{
		{name: "exact word", def: word, w: Symbols("m", "o", "m"), want: true},
		{name: "prefix", def: word, w: Symbols("m", "o"), want: false},
		{name: "longer", def: word, w: Symbols("m", "o", "m", "m"), want: false},
		{name: "empty word", def: word, w: nil, want: false},
		{name: "any string", def: anyString, w: Symbols("n", "o", "n", "m"), want: true},
		{name: "any string empty", def: anyString, w: nil, want: true},
		{name: "unknown symbol", def: anyString, w: Symbols("z"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(tt.def, tt.w), "Run(%v)", tt.w)
		})
	}
}

func TestAutomata_MakeString(t *testing.T) {
	automata := &Automata{Alphabet: Symbols("a")}
	def, err := automata.MakeString(Symbols("a", "a"))
	require.NoError(t, err)

	assert.Equal(t, States("q0", "q1", "q2"), def.States())
	assert.Equal(t, States("q2"), def.Acceptable())

	_, err = automata.MakeString(Symbols("b"))
	assert.ErrorIs(t, err, ErrDefinition)
}
