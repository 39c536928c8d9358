// Package montyhall simulates the Monty Hall game generalized to N doors.
//
// A game hides one gift behind N doors. The player picks a door, the host
// opens N-2 of the others without revealing the gift (unless the player
// already holds it), and exactly one other door stays closed. The "stay"
// strategy keeps the first choice; the "switch" strategy takes that single
// remaining closed door.
package montyhall

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/nvandessel/montyhall/internal/logging"
)

// MinDoors is the smallest door count for which the host can open N-2 doors
// and still leave one alternate.
const MinDoors = 3

// ErrInvalidArgument is returned for door counts below MinDoors and for
// repetition counts below one.
var ErrInvalidArgument = errors.New("invalid argument")

// traceTrialLimit caps per-trial trace logging to small batches.
const traceTrialLimit = 100

// Simulator plays Monty Hall trials against an explicit random source.
// It is not safe for concurrent use; the underlying *rand.Rand is not.
type Simulator struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// New creates a Simulator drawing from rng.
func New(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// NewSeeded creates a Simulator backed by a PCG generator seeded with seed.
// Two simulators with the same seed produce identical trial sequences.
func NewSeeded(seed uint64) *Simulator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// NewUnseeded creates a Simulator seeded from the runtime's entropy source.
// Results are not reproducible across runs.
func NewUnseeded() *Simulator {
	return New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// SetLogger sets the structured logger used for trial tracing.
func (s *Simulator) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Trial plays a single game with the given number of doors.
func (s *Simulator) Trial(doors int) (Trial, error) {
	if err := validateDoors(doors); err != nil {
		return Trial{}, err
	}
	var sc scratch
	t := s.play(doors, &sc)
	t.Opened = append([]int(nil), t.Opened...)
	return t, nil
}

// Simulate plays repetitions independent games with the given number of doors
// and returns the fraction won by each strategy.
func (s *Simulator) Simulate(doors, repetitions int) (Result, error) {
	if err := validateDoors(doors); err != nil {
		return Result{}, err
	}
	if repetitions < 1 {
		return Result{}, fmt.Errorf("repetitions must be at least 1, got %d: %w", repetitions, ErrInvalidArgument)
	}

	trace := repetitions <= traceTrialLimit && logging.TraceEnabled(s.logger)

	var sc scratch
	var stayWins, switchWins int
	for i := 0; i < repetitions; i++ {
		t := s.play(doors, &sc)
		if t.StayWins() {
			stayWins++
		}
		if t.SwitchWins() {
			switchWins++
		}
		if trace {
			s.logger.Log(context.Background(), logging.LevelTrace, "trial",
				"doors", doors, "index", i, "gift", t.Gift, "first_choice", t.FirstChoice,
				"opened", t.Opened, "alternate", t.Alternate)
		}
	}

	return Result{
		Doors:       doors,
		Repetitions: repetitions,
		Stay:        float64(stayWins) / float64(repetitions),
		Switch:      float64(switchWins) / float64(repetitions),
	}, nil
}

// scratch holds the candidate buffer reused across trials of one batch.
type scratch struct {
	candidates []int
}

// play runs one trial. The returned Opened slice aliases sc and is only valid
// until the next call.
func (s *Simulator) play(doors int, sc *scratch) Trial {
	gift := s.rng.IntN(doors) + 1
	first := s.rng.IntN(doors) + 1

	// The host may open anything except the player's door and, when the
	// player missed it, the gift door.
	c := sc.candidates[:0]
	for d := 1; d <= doors; d++ {
		if d == first || d == gift {
			continue
		}
		c = append(c, d)
	}
	sc.candidates = c

	// Partial Fisher-Yates: the first open entries become a uniform sample
	// without replacement.
	open := doors - 2
	for i := 0; i < open; i++ {
		j := i + s.rng.IntN(len(c)-i)
		c[i], c[j] = c[j], c[i]
	}

	// A candidate left unopened is the alternate. Otherwise every candidate
	// was opened and the gift door is the only other closed door.
	alternate := gift
	if len(c) > open {
		alternate = c[open]
	}

	return Trial{
		Doors:       doors,
		Gift:        gift,
		FirstChoice: first,
		Opened:      c[:open],
		Alternate:   alternate,
	}
}

func validateDoors(doors int) error {
	if doors < MinDoors {
		return fmt.Errorf("number of doors must be at least %d, got %d: %w", MinDoors, doors, ErrInvalidArgument)
	}
	return nil
}

// Theoretical returns the exact win probabilities of the stay (1/N) and
// switch ((N-1)/N) strategies.
func Theoretical(doors int) (stay, switchProb float64) {
	n := float64(doors)
	return 1 / n, (n - 1) / n
}
