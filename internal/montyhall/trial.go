package montyhall

// Trial records one simulated game. Doors are numbered 1..Doors.
type Trial struct {
	Doors       int
	Gift        int
	FirstChoice int
	// Opened holds the N-2 doors the host opened, in draw order.
	Opened []int
	// Alternate is the one closed door other than FirstChoice.
	Alternate int
}

// StayWins reports whether keeping the first choice wins.
func (t Trial) StayWins() bool {
	return t.FirstChoice == t.Gift
}

// SwitchWins reports whether switching to the alternate door wins.
func (t Trial) SwitchWins() bool {
	return t.Alternate == t.Gift
}

// Result holds the empirical win rates of both strategies for one
// (door count, repetition count) pair.
type Result struct {
	Doors       int     `json:"doors"`
	Repetitions int     `json:"repetitions"`
	Stay        float64 `json:"stay"`
	Switch      float64 `json:"switch"`
}
