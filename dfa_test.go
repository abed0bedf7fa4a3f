package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDFA_ReadSymbol(t *testing.T) {
	def := mustDFA(t, "q0,q1", "a,b", "q1", "q0",
		"q0,a->q1",
		"q1,a->q0",
	)
	d := NewDFA(def)
	a, b := NewSymbol("a"), NewSymbol("b")

	s, ok := d.ReadSymbol(a)
	assert.True(t, ok)
	assert.Equal(t, NewState("q1"), s)
	assert.True(t, d.IsAcceptable(s))

	_, ok = d.ReadSymbol(b)
	assert.False(t, ok)

	_, ok = d.ReadSymbol(a)
	assert.False(t, ok, "an undefined transition is absorbing")
	_, ok = d.Current()
	assert.False(t, ok)

	assert.Equal(t, NewState("q0"), d.Reset())
	cur, ok := d.Current()
	assert.True(t, ok)
	assert.Equal(t, NewState("q0"), cur)
}

func TestDFA_ReadSequence(t *testing.T) {
	def := mustDFA(t, "even,odd", "1", "even", "even",
		"even,1->odd",
		"odd,1->even",
	)
	d := NewDFA(def)

	s, ok := d.ReadSequence(Symbols("1", "1", "1"))
	assert.True(t, ok)
	assert.Equal(t, NewState("odd"), s)

	d.Reset()
	_, ok = d.ReadSequence(Symbols("1", "0", "1"))
	assert.False(t, ok)
}

func TestDFA_Accepts(t *testing.T) {
	def := mustDFA(t, "even,odd", "1", "even", "even",
		"even,1->odd",
		"odd,1->even",
	)
	d := NewDFA(def)

	assert.True(t, d.Accepts(nil))
	assert.False(t, d.Accepts(Symbols("1")))
	assert.True(t, d.Accepts(Symbols("1", "1")))
	assert.False(t, d.Accepts(Symbols("2")))

	cur, ok := d.Current()
	assert.True(t, ok)
	assert.Equal(t, NewState("even"), cur)
}
