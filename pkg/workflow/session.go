// Package workflow coordinates long-running recomputation behind the
// UI. A Session owns one derived artifact (a clustered bundle, a
// filtered selection) and replaces it through a recompute function
// that runs off the UI thread, posting results back through the host
// dispatcher so rendering and input handling never block.
package workflow

import (
	"sync"

	"github.com/ranveeraggarwal/dipy/pkg/errors"
)

// RecomputeFunc derives a new artifact from the current one. amount is
// the step requested by the caller, positive to expand and negative to
// reduce. It runs on a worker goroutine and must not touch widgets or
// the scene.
type RecomputeFunc[T any] func(current T, amount float64) (T, error)

// Session serializes recomputation of one artifact. At most one
// recompute runs at a time; Apply calls issued while one is in flight
// are reported as busy rather than queued, matching the interactive
// use where a slider drag fires many requests and only the settled one
// matters.
type Session[T any] struct {
	recompute RecomputeFunc[T]
	dispatch  func(func())

	mu      sync.Mutex
	current T
	busy    bool
}

// NewSession starts a session on an initial artifact. dispatch must
// run its argument on the UI thread; hosts pass their frame-loop
// executor, tests pass a synchronous function.
func NewSession[T any](initial T, recompute RecomputeFunc[T], dispatch func(func())) *Session[T] {
	return &Session[T]{
		current:   initial,
		recompute: recompute,
		dispatch:  dispatch,
	}
}

// Current returns the latest artifact.
func (s *Session[T]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Busy reports whether a recompute is in flight.
func (s *Session[T]) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Apply recomputes the artifact by amount on a worker goroutine and
// posts the result back through the dispatcher, where onDone (if not
// nil) observes the new artifact. It returns false when a recompute is
// already in flight and the request was dropped. Recompute errors and
// panics are reported to the error handler; the artifact keeps its
// prior value and the session returns to idle either way.
func (s *Session[T]) Apply(amount float64, onDone func(T)) bool {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return false
	}
	s.busy = true
	current := s.current
	s.mu.Unlock()

	go func() {
		// A recompute panic is reported by Recover below, but the busy
		// flag must still clear or the session would drop every later
		// Apply. Deferred funcs run innermost-first, so Recover has
		// already consumed the panic when this one posts the reset.
		completed := false
		defer func() {
			if completed {
				return
			}
			s.dispatch(func() {
				s.mu.Lock()
				s.busy = false
				s.mu.Unlock()
			})
		}()
		defer errors.Recover("workflow.Apply")
		next, err := s.recompute(current, amount)

		s.dispatch(func() {
			s.mu.Lock()
			s.busy = false
			if err == nil {
				s.current = next
			}
			s.mu.Unlock()

			if err != nil {
				errors.Report(&errors.UIError{
					Op:   "workflow.Apply",
					Kind: errors.KindDispatch,
					Err:  err,
				})
				return
			}
			if onDone != nil {
				onDone(next)
			}
		})
		completed = true
	}()
	return true
}
