package scheduler

import (
	"container/heap"
	"context"
	"time"

	"github.com/creativeprojects/mailwatch/lib"
)

// Block is updated on a schedule. Update returns the delay before the next update,
// or zero (or negative) to stop being scheduled.
type Block interface {
	ID() string
	Update(ctx context.Context) (time.Duration, error)
}

// Scheduler runs each block once, then again after the delay the block asked for.
// Blocks are updated one at a time, from the goroutine calling Run.
type Scheduler struct {
	blocks []Block
	log    lib.Logger
	// OnUpdate is called after each update, successful or not
	OnUpdate func(block Block, err error)
}

func New(logger lib.Logger, blocks ...Block) *Scheduler {
	return &Scheduler{
		blocks: blocks,
		log:    lib.OrNoLog(logger),
	}
}

// Run returns when the context is done, or when no block is left to update
func (s *Scheduler) Run(ctx context.Context) error {
	queue := make(taskQueue, 0, len(s.blocks))
	now := time.Now()
	for i, block := range s.blocks {
		queue = append(queue, &task{block: block, next: now, order: i})
	}
	heap.Init(&queue)

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for queue.Len() > 0 {
		next := queue[0]
		wait := time.Until(next.next)
		if wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		}

		delay, err := next.block.Update(ctx)
		if err != nil {
			s.log.Printf("block %s: update failed: %s", next.block.ID(), err)
		}
		if s.OnUpdate != nil {
			s.OnUpdate(next.block, err)
		}
		if delay <= 0 {
			s.log.Printf("block %s: no more update", next.block.ID())
			heap.Pop(&queue)
			continue
		}
		next.next = time.Now().Add(delay)
		heap.Fix(&queue, 0)
	}
	return nil
}

type task struct {
	block Block
	next  time.Time
	order int
}

// taskQueue is a min-heap on the time of the next update
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].next.Equal(q[j].next) {
		return q[i].order < q[j].order
	}
	return q[i].next.Before(q[j].next)
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*task))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
