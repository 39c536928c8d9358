package experiment

import "github.com/nvandessel/montyhall/internal/montyhall"

// ResultSet maps door count → repetition count → Result, remembering the
// order in which keys were first added.
type ResultSet struct {
	doors   []int
	reps    map[int][]int
	results map[int]map[int]montyhall.Result
}

// NewResultSet creates an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{
		reps:    make(map[int][]int),
		results: make(map[int]map[int]montyhall.Result),
	}
}

// Add stores r under (r.Doors, r.Repetitions). Re-adding an existing pair
// replaces its result without changing its position.
func (s *ResultSet) Add(r montyhall.Result) {
	byReps, ok := s.results[r.Doors]
	if !ok {
		byReps = make(map[int]montyhall.Result)
		s.results[r.Doors] = byReps
		s.doors = append(s.doors, r.Doors)
	}
	if _, ok := byReps[r.Repetitions]; !ok {
		s.reps[r.Doors] = append(s.reps[r.Doors], r.Repetitions)
	}
	byReps[r.Repetitions] = r
}

// Get returns the result for (doors, repetitions).
func (s *ResultSet) Get(doors, repetitions int) (montyhall.Result, bool) {
	r, ok := s.results[doors][repetitions]
	return r, ok
}

// DoorCounts returns the door counts in insertion order.
func (s *ResultSet) DoorCounts() []int {
	return append([]int(nil), s.doors...)
}

// Repetitions returns the repetition counts recorded for doors, in insertion
// order.
func (s *ResultSet) Repetitions(doors int) []int {
	return append([]int(nil), s.reps[doors]...)
}

// ForDoors returns the results for one door count in insertion order.
func (s *ResultSet) ForDoors(doors int) []montyhall.Result {
	reps := s.reps[doors]
	out := make([]montyhall.Result, 0, len(reps))
	for _, k := range reps {
		out = append(out, s.results[doors][k])
	}
	return out
}

// Results returns every result, grouped by door count, in insertion order.
func (s *ResultSet) Results() []montyhall.Result {
	var out []montyhall.Result
	for _, n := range s.doors {
		out = append(out, s.ForDoors(n)...)
	}
	return out
}

// Len returns the number of stored pairs.
func (s *ResultSet) Len() int {
	total := 0
	for _, reps := range s.reps {
		total += len(reps)
	}
	return total
}
