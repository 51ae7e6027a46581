// Package schedule runs one-shot callbacks after a delay measured in
// simulated game time.
//
// A Queue has no clock of its own. The owner advances it once per logic
// tick with the tick's delta, so pausing the game pauses every pending
// callback and headless runs are deterministic.
package schedule

import (
	"container/heap"
	"time"
)

// Queue holds pending callbacks ordered by fire time. Callbacks with the
// same fire time run in the order they were scheduled. Queue is not safe
// for concurrent use.
type Queue struct {
	now     time.Duration
	seq     uint64
	pending timerHeap
}

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// New returns an empty queue at time zero.
func New() *Queue {
	return &Queue{}
}

// After schedules fn to run once, d after the current queue time.
// A non-positive d fires on the next Advance. Scheduled callbacks
// cannot be cancelled.
func (q *Queue) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	q.seq++
	heap.Push(&q.pending, timer{at: q.now + d, seq: q.seq, fn: fn})
}

// Advance moves the queue time forward by dt and runs every callback
// that has come due, in fire-time order. While a callback runs, Now
// reports its fire time, so a delay it schedules counts from when it was
// due. Anything that falls due within the same window runs before
// Advance returns. It reports how many callbacks ran.
func (q *Queue) Advance(dt time.Duration) int {
	target := q.now
	if dt > 0 {
		target += dt
	}

	fired := 0
	for q.pending.Len() > 0 && q.pending[0].at <= target {
		t := heap.Pop(&q.pending).(timer)
		if t.at > q.now {
			q.now = t.at
		}
		t.fn()
		fired++
	}
	q.now = target
	return fired
}

// Now returns the total time the queue has been advanced by.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Len returns the number of callbacks still waiting to fire.
func (q *Queue) Len() int {
	return q.pending.Len()
}

// NextIn returns how long until the earliest pending callback fires.
// ok is false when nothing is pending.
func (q *Queue) NextIn() (d time.Duration, ok bool) {
	if q.pending.Len() == 0 {
		return 0, false
	}
	return q.pending[0].at - q.now, true
}

type timerHeap []timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = timer{}
	*h = old[:n-1]
	return t
}
