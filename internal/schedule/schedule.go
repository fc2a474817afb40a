// Package schedule runs delayed work that can be cancelled. A Task is the
// handle to one delayed call; a Group cancels every outstanding task at
// once, for teardown.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Task is a call to fn scheduled after a delay. Its result is available
// from Wait once Done is closed.
type Task[T any] struct {
	parent context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	fired     bool
	cancelled bool

	val T
	ok  bool
}

// After schedules fn to run once d has elapsed. The task is cancelled when
// ctx is.
func After[T any](ctx context.Context, d time.Duration, fn func() T) *Task[T] {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{parent: parent, cancel: cancel, done: make(chan struct{})}
	go t.run(ctx, d, fn)
	return t
}

func (t *Task[T]) run(ctx context.Context, d time.Duration, fn func() T) {
	defer close(t.done)
	defer t.cancel()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	// Cancel takes mu before cancelling, so once fired is set no caller can
	// observe a cancel that succeeded after the call began.
	t.mu.Lock()
	if ctx.Err() != nil {
		t.mu.Unlock()
		return
	}
	t.fired = true
	t.mu.Unlock()

	t.val = fn()
	t.ok = true
}

// Cancel stops the task if fn has not started. It reports whether this call
// prevented the run; later calls report false, as do calls made after the
// parent context was cancelled or the task settled. When it returns true the
// task's goroutine has exited.
func (t *Task[T]) Cancel() bool {
	t.mu.Lock()
	if t.fired || t.cancelled {
		t.mu.Unlock()
		return false
	}
	t.cancelled = true
	t.cancel()
	settled := t.parent.Err() != nil
	select {
	case <-t.done:
		settled = true
	default:
	}
	t.mu.Unlock()
	if settled {
		return false
	}

	<-t.done
	return true
}

// Done is closed when the task has finished or been cancelled.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Wait blocks until the task settles. ok is false when the task was
// cancelled before fn ran.
func (t *Task[T]) Wait() (T, bool) {
	<-t.done
	return t.val, t.ok
}

// Canceller is the type-independent view of a Task.
type Canceller interface {
	Cancel() bool
	Done() <-chan struct{}
}

// Group tracks outstanding tasks so they can be cancelled together. The
// zero value is ready to use.
type Group struct {
	mu    sync.Mutex
	tasks []Canceller
}

// Add tracks c. Finished tasks are pruned as new ones are added.
func (g *Group) Add(c Canceller) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks = append(pruneSettled(g.tasks), c)
}

// Pending returns the number of tracked tasks that have not settled.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks = pruneSettled(g.tasks)
	return len(g.tasks)
}

// CancelAll cancels every tracked task and reports how many were stopped
// before running.
func (g *Group) CancelAll() int {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = nil
	g.mu.Unlock()

	n := 0
	for _, c := range tasks {
		if c.Cancel() {
			n++
		}
	}
	return n
}

func pruneSettled(tasks []Canceller) []Canceller {
	live := tasks[:0]
	for _, c := range tasks {
		select {
		case <-c.Done():
		default:
			live = append(live, c)
		}
	}
	clear(tasks[len(live):])
	return live
}
