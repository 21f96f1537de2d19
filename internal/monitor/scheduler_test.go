package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type countingRunner struct {
	calls   atomic.Int32
	running atomic.Int32
	overlap atomic.Bool
	stopAt  int32
	cancel  context.CancelFunc
	err     error
}

func (r *countingRunner) RunCycle(context.Context) (*CycleSummary, error) {
	if r.running.Add(1) > 1 {
		r.overlap.Store(true)
	}
	defer r.running.Add(-1)

	if r.calls.Add(1) == r.stopAt {
		r.cancel()
	}
	return &CycleSummary{CycleID: "test", State: StateEnd}, r.err
}

func TestScheduler_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner := &countingRunner{stopAt: 3, cancel: cancel}

	cycles := NewScheduler(runner, 5*time.Millisecond, zerolog.Nop()).Run(ctx)

	assert.Equal(t, 3, cycles)
	assert.EqualValues(t, 3, runner.calls.Load())
	assert.False(t, runner.overlap.Load())
}

func TestScheduler_ContinuesAfterFailedCycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner := &countingRunner{stopAt: 2, cancel: cancel, err: errors.New("upstream down")}

	cycles := NewScheduler(runner, 5*time.Millisecond, zerolog.Nop()).Run(ctx)

	assert.Equal(t, 2, cycles)
}

func TestScheduler_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := &countingRunner{}

	cycles := NewScheduler(runner, time.Hour, zerolog.Nop()).Run(ctx)

	assert.Zero(t, cycles)
	assert.Zero(t, runner.calls.Load())
}
