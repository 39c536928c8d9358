// Package experiment runs the simulator over a matrix of door counts and
// repetition counts and collects the results in presentation order.
package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nvandessel/montyhall/internal/montyhall"
)

// Simulator runs one batch of trials for a fixed door and repetition count.
type Simulator interface {
	Simulate(doors, repetitions int) (montyhall.Result, error)
}

// Observer receives progress as the runner works through the matrix.
// Calls arrive in iteration order on the runner's goroutine.
type Observer interface {
	BeginDoors(doors int) error
	Result(r montyhall.Result) error
}

// Runner iterates a Simulator over (door count, repetition count) pairs.
type Runner struct {
	sim      Simulator
	observer Observer
	logger   *slog.Logger
}

// NewRunner creates a Runner. observer may be nil.
func NewRunner(sim Simulator, observer Observer) *Runner {
	return &Runner{sim: sim, observer: observer}
}

// SetLogger sets the structured logger for per-pair timing.
func (r *Runner) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Run simulates every pair of doors × repetitions. Simulator errors are
// returned wrapped but otherwise unchanged; nothing is retried. The context
// is checked between pairs.
func (r *Runner) Run(ctx context.Context, doors, repetitions []int) (*ResultSet, error) {
	set := NewResultSet()

	for _, n := range doors {
		if r.observer != nil {
			if err := r.observer.BeginDoors(n); err != nil {
				return set, fmt.Errorf("observer: %w", err)
			}
		}

		for _, k := range repetitions {
			if err := ctx.Err(); err != nil {
				return set, err
			}

			start := time.Now()
			res, err := r.sim.Simulate(n, k)
			if err != nil {
				return set, fmt.Errorf("simulate %d doors x %d repetitions: %w", n, k, err)
			}
			set.Add(res)

			if r.logger != nil {
				r.logger.Debug("pair simulated",
					"doors", n, "repetitions", k,
					"stay", res.Stay, "switch", res.Switch,
					"elapsed", time.Since(start))
			}

			if r.observer != nil {
				if err := r.observer.Result(res); err != nil {
					return set, fmt.Errorf("observer: %w", err)
				}
			}
		}
	}

	return set, nil
}

// Run is a convenience wrapper for NewRunner(sim, observer).Run.
func Run(ctx context.Context, sim Simulator, doors, repetitions []int, observer Observer) (*ResultSet, error) {
	return NewRunner(sim, observer).Run(ctx, doors, repetitions)
}
