package game

import (
	"sort"
	"time"
)

// Task is a scheduled callback that can be cancelled before it runs.
type Task struct {
	at        time.Time
	seq       uint64
	fn        func(due time.Time)
	cancelled bool
	done      bool
}

// Cancel stops the task from running. It is a no-op once the task ran.
func (t *Task) Cancel() {
	if t != nil && !t.done {
		t.cancelled = true
	}
}

// Done reports whether the task ran or was cancelled.
func (t *Task) Done() bool {
	return t == nil || t.done || t.cancelled
}

// Scheduler runs deferred callbacks from the tick loop.
// It is not safe for concurrent use; all calls come from the tick goroutine.
type Scheduler struct {
	pending []*Task
	seq     uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn for time at. fn receives the scheduled time, not the
// time Advance was called, so chained tasks keep an exact cadence.
func (s *Scheduler) After(at time.Time, fn func(due time.Time)) *Task {
	s.seq++
	t := &Task{at: at, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance runs every task due at or before now, in due order. Tasks scheduled
// by a running task also run if they fall due before now.
func (s *Scheduler) Advance(now time.Time) {
	for {
		t := s.next(now)
		if t == nil {
			return
		}
		t.done = true
		t.fn(t.at)
	}
}

// Pending returns the number of live tasks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.Done() {
			n++
		}
	}
	return n
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.pending {
		t.Cancel()
	}
	s.pending = s.pending[:0]
}

func (s *Scheduler) next(now time.Time) *Task {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.Done() {
			live = append(live, t)
		}
	}
	s.pending = live
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at.Equal(live[j].at) {
			return live[i].seq < live[j].seq
		}
		return live[i].at.Before(live[j].at)
	})
	if live[0].at.After(now) {
		return nil
	}
	return live[0]
}
