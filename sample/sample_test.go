package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays a fixed sequence of draws.
type scripted struct {
	draws []int
	pos   int
}

func (s *scripted) Intn(n int) int {
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	return v % n
}

func TestIntsScripted(t *testing.T) {
	src := &scripted{draws: []int{0, 49, 99, 7}}

	got := Ints(src, 4, 1, 100)

	assert.Equal(t, []int{1, 50, 100, 8}, got)
}

func TestIntsBounds(t *testing.T) {
	src := New(1)

	got := Ints(src, 1000, 1, 100)

	require.Len(t, got, 1000)
	for _, v := range got {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestIntsEmpty(t *testing.T) {
	assert.Empty(t, Ints(New(1), 0, 1, 100))
}
