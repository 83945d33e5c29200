package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/creativeprojects/mailwatch/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBlock struct {
	id     string
	delays []time.Duration
	err    error
	calls  int
	times  []time.Time
}

func (b *countingBlock) ID() string {
	return b.id
}

func (b *countingBlock) Update(ctx context.Context) (time.Duration, error) {
	b.times = append(b.times, time.Now())
	delay := time.Duration(0)
	if b.calls < len(b.delays) {
		delay = b.delays[b.calls]
	}
	b.calls++
	return delay, b.err
}

func TestRunWithoutBlock(t *testing.T) {
	err := New(lib.NewTestLogger(t, "scheduler")).Run(context.Background())
	assert.NoError(t, err)
}

func TestBlockStopsScheduling(t *testing.T) {
	block := &countingBlock{
		id:     "stop",
		delays: []time.Duration{10 * time.Millisecond, 10 * time.Millisecond},
	}
	err := New(lib.NewTestLogger(t, "scheduler"), block).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, block.calls)
	require.Len(t, block.times, 3)
	assert.GreaterOrEqual(t, block.times[1].Sub(block.times[0]), 10*time.Millisecond)
	assert.GreaterOrEqual(t, block.times[2].Sub(block.times[1]), 10*time.Millisecond)
}

func TestFailedUpdateIsRescheduled(t *testing.T) {
	updateErr := errors.New("cannot open mail directory")
	block := &countingBlock{
		id:     "failing",
		delays: []time.Duration{time.Millisecond, time.Millisecond},
		err:    updateErr,
	}
	errs := make([]error, 0)
	scheduler := New(lib.NewTestLogger(t, "scheduler"), block)
	scheduler.OnUpdate = func(b Block, err error) {
		assert.Equal(t, "failing", b.ID())
		errs = append(errs, err)
	}
	err := scheduler.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, block.calls)
	assert.Equal(t, []error{updateErr, updateErr, updateErr}, errs)
}

func TestBlocksRunInOrderOfDelay(t *testing.T) {
	fast := &countingBlock{
		id:     "fast",
		delays: []time.Duration{5 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond},
	}
	slow := &countingBlock{
		id:     "slow",
		delays: []time.Duration{time.Hour},
	}
	order := make([]string, 0)
	scheduler := New(lib.NewTestLogger(t, "scheduler"), slow, fast)
	scheduler.OnUpdate = func(b Block, err error) {
		order = append(order, b.ID())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := scheduler.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, []string{"slow", "fast", "fast", "fast", "fast"}, order)
	assert.Equal(t, 1, slow.calls)
	assert.Equal(t, 4, fast.calls)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	block := &countingBlock{
		id:     "forever",
		delays: []time.Duration{time.Hour},
	}
	ctx, cancel := context.WithCancel(context.Background())
	scheduler := New(lib.NewTestLogger(t, "scheduler"), block)
	scheduler.OnUpdate = func(b Block, err error) {
		cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- scheduler.Run(ctx)
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler didn't stop")
	}
	assert.Equal(t, 1, block.calls)
}
