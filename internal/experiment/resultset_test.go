package experiment

import (
	"testing"

	"github.com/nvandessel/montyhall/internal/montyhall"
	"github.com/stretchr/testify/assert"
)

func TestResultSet_PreservesInsertionOrder(t *testing.T) {
	s := NewResultSet()
	s.Add(montyhall.Result{Doors: 10, Repetitions: 1000, Stay: 0.1})
	s.Add(montyhall.Result{Doors: 3, Repetitions: 10, Stay: 0.3})
	s.Add(montyhall.Result{Doors: 10, Repetitions: 10, Stay: 0.2})

	assert.Equal(t, []int{10, 3}, s.DoorCounts())
	assert.Equal(t, []int{1000, 10}, s.Repetitions(10))

	got := s.Results()
	assert.Len(t, got, 3)
	assert.Equal(t, 1000, got[0].Repetitions)
	assert.Equal(t, 10, got[1].Repetitions)
	assert.Equal(t, 3, got[2].Doors)
}

func TestResultSet_ReplaceKeepsPosition(t *testing.T) {
	s := NewResultSet()
	s.Add(montyhall.Result{Doors: 3, Repetitions: 10, Stay: 0.3})
	s.Add(montyhall.Result{Doors: 3, Repetitions: 100, Stay: 0.3})
	s.Add(montyhall.Result{Doors: 3, Repetitions: 10, Stay: 0.5})

	assert.Equal(t, []int{10, 100}, s.Repetitions(3))
	assert.Equal(t, 2, s.Len())

	r, ok := s.Get(3, 10)
	assert.True(t, ok)
	assert.Equal(t, 0.5, r.Stay)
}

func TestResultSet_Missing(t *testing.T) {
	s := NewResultSet()
	_, ok := s.Get(3, 10)
	assert.False(t, ok)
	assert.Empty(t, s.Repetitions(3))
	assert.Empty(t, s.ForDoors(3))
}

func TestResultSet_AccessorsReturnCopies(t *testing.T) {
	s := NewResultSet()
	s.Add(montyhall.Result{Doors: 3, Repetitions: 10})

	doors := s.DoorCounts()
	doors[0] = 99
	assert.Equal(t, []int{3}, s.DoorCounts())
}
