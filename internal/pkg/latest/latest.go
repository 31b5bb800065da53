// Package latest implements latest-wins request coordination: starting a new
// operation under a key cancels the previous in-flight one, so a stale
// response can never overwrite the result of a newer request for the same
// view.
package latest

import (
	"context"
	"sync"
)

type entry struct {
	cancel context.CancelFunc
}

// Tracker coordinates in-flight operations by key.
type Tracker struct {
	mu       sync.Mutex
	inflight map[string]*entry
}

func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[string]*entry)}
}

// Begin registers a new operation under key, cancelling any previous one
// still in flight. The returned context is derived from ctx; the returned
// done func must be called when the operation finishes.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	e := &entry{cancel: cancel}

	t.mu.Lock()
	if prev, ok := t.inflight[key]; ok {
		prev.cancel()
	}
	t.inflight[key] = e
	t.mu.Unlock()

	done := func() {
		cancel()
		t.mu.Lock()
		if t.inflight[key] == e {
			delete(t.inflight, key)
		}
		t.mu.Unlock()
	}
	return ctx, done
}
