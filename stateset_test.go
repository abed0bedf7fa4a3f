package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSet(t *testing.T) {
	tests := []struct {
		name       string
		states     []State
		wantSorted []State
		wantString string
	}{
		{
			name:       "empty",
			states:     nil,
			wantSorted: []State{},
			wantString: "#",
		},
		{
			name:       "duplicates collapse",
			states:     States("s2", "s0", "s2"),
			wantSorted: States("s0", "s2"),
			wantString: "s0,s2",
		},
		{
			name:       "label order",
			states:     States("b", "a", "c"),
			wantSorted: States("a", "b", "c"),
			wantString: "a,b,c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStateSet(tt.states...)
			assert.Equal(t, tt.wantSorted, s.Sorted())
			assert.Equal(t, len(tt.wantSorted), s.Len())
			assert.Equal(t, tt.wantString, s.String())
		})
	}
}

func TestStateSet_Operations(t *testing.T) {
	s := NewStateSet(NewState("a"))
	assert.True(t, s.Add(NewState("b")))
	assert.False(t, s.Add(NewState("a")))

	c := s.Clone()
	c.Add(NewState("z"))
	assert.False(t, s.Contains(NewState("z")), "clone must not share storage")
	assert.False(t, s.Equal(c))

	s.Union(NewStateSet(States("z", "y")...))
	assert.Equal(t, States("a", "b", "y", "z"), s.Sorted())
	assert.True(t, NewStateSet(States("b", "a")...).Equal(NewStateSet(States("a", "b")...)))
}
