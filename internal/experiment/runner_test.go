package experiment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nvandessel/montyhall/internal/logging"
	"github.com/nvandessel/montyhall/internal/montyhall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSimulator returns predictable results and records each call.
type fakeSimulator struct {
	calls   [][2]int
	failOn  int
	failErr error
}

func (f *fakeSimulator) Simulate(doors, reps int) (montyhall.Result, error) {
	f.calls = append(f.calls, [2]int{doors, reps})
	if doors == f.failOn {
		return montyhall.Result{}, f.failErr
	}
	return montyhall.Result{
		Doors:       doors,
		Repetitions: reps,
		Stay:        1 / float64(doors),
		Switch:      float64(reps) / 1e6,
	}, nil
}

// recordingObserver captures the event stream as strings.
type recordingObserver struct {
	events []string
	err    error
}

func (o *recordingObserver) BeginDoors(doors int) error {
	o.events = append(o.events, fmt.Sprintf("doors %d", doors))
	return o.err
}

func (o *recordingObserver) Result(r montyhall.Result) error {
	o.events = append(o.events, fmt.Sprintf("result %d/%d", r.Doors, r.Repetitions))
	return nil
}

func TestRun_VisitsEveryPairInOrder(t *testing.T) {
	sim := &fakeSimulator{}
	obs := &recordingObserver{}

	set, err := Run(context.Background(), sim, []int{5, 3}, []int{100, 10}, obs)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{5, 100}, {5, 10}, {3, 100}, {3, 10}}, sim.calls)
	assert.Equal(t, []string{
		"doors 5", "result 5/100", "result 5/10",
		"doors 3", "result 3/100", "result 3/10",
	}, obs.events)

	assert.Equal(t, []int{5, 3}, set.DoorCounts())
	assert.Equal(t, []int{100, 10}, set.Repetitions(5))
	assert.Equal(t, 4, set.Len())

	r, ok := set.Get(3, 10)
	require.True(t, ok)
	assert.InDelta(t, 1.0/3, r.Stay, 1e-12)
}

func TestRun_PropagatesSimulatorError(t *testing.T) {
	sim := &fakeSimulator{failOn: 2, failErr: montyhall.ErrInvalidArgument}

	set, err := Run(context.Background(), sim, []int{3, 2, 4}, []int{10}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, montyhall.ErrInvalidArgument)

	// No retries and no further pairs after the failure.
	assert.Equal(t, [][2]int{{3, 10}, {2, 10}}, sim.calls)
	assert.Equal(t, 1, set.Len())
}

func TestRun_RealSimulatorInvalidDoors(t *testing.T) {
	_, err := Run(context.Background(), montyhall.NewSeeded(1), []int{3, 2}, []int{10}, nil)
	assert.ErrorIs(t, err, montyhall.ErrInvalidArgument)
}

func TestRun_ObserverError(t *testing.T) {
	boom := errors.New("write failed")
	obs := &recordingObserver{err: boom}

	_, err := Run(context.Background(), &fakeSimulator{}, []int{3}, []int{10}, obs)
	assert.ErrorIs(t, err, boom)
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := &fakeSimulator{}
	_, err := Run(ctx, sim, []int{3}, []int{10}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sim.calls)
}

func TestRun_EmptyInputs(t *testing.T) {
	set, err := Run(context.Background(), &fakeSimulator{}, nil, []int{10}, nil)
	require.NoError(t, err)
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Results())
}

func TestRunner_LogsPairs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(montyhall.NewSeeded(1), nil)
	r.SetLogger(logging.NewLogger("debug", &buf))

	_, err := r.Run(context.Background(), []int{3, 4}, []int{10})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "pair simulated"))
}

func TestRun_Seeded(t *testing.T) {
	set, err := Run(context.Background(), montyhall.NewSeeded(42), []int{3, 10}, []int{10000}, nil)
	require.NoError(t, err)

	r3, ok := set.Get(3, 10000)
	require.True(t, ok)
	assert.InDelta(t, 0.33, r3.Stay, 0.02)
	assert.InDelta(t, 0.67, r3.Switch, 0.02)

	r10, ok := set.Get(10, 10000)
	require.True(t, ok)
	assert.InDelta(t, 0.10, r10.Stay, 0.02)
	assert.InDelta(t, 0.90, r10.Switch, 0.02)
}
