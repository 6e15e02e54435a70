package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	var s Selection

	s.Toggle(10)
	s.Toggle(3)
	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(3))
	assert.Equal(t, 2, s.Count())

	s.Toggle(10)
	assert.False(t, s.Contains(10))
	assert.Equal(t, 1, s.Count())
}

func TestSelectionSeatsSorted(t *testing.T) {
	var s Selection
	s.Toggle(42)
	s.Toggle(1)
	s.Toggle(17)

	assert.Equal(t, []int{1, 17, 42}, s.Seats())
}

func TestSelectionSeatsReturnsCopy(t *testing.T) {
	var s Selection
	s.Toggle(2)
	s.Toggle(1)

	seats := s.Seats()
	seats[0] = 99

	assert.Equal(t, []int{1, 2}, s.Seats())
}

func TestSelectionClear(t *testing.T) {
	var s Selection
	s.Toggle(1)
	s.Toggle(2)

	s.Clear()

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Seats())
}
