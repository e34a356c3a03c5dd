package dashboard

import (
	"context"
	"sync"
)

// Panel holds the last successful snapshot of one remote resource.
//
// Every Refresh takes a ticket. A completion is applied only if no later
// ticket has been applied already, so a slow stale fetch can never overwrite
// a newer one. Failures leave the snapshot untouched.
type Panel[T any] struct {
	name  string
	fetch func(ctx context.Context) (T, error)

	mu      sync.Mutex
	issued  uint64
	applied uint64
	data    T
	loaded  bool
	lastErr error
}

func NewPanel[T any](name string, fetch func(ctx context.Context) (T, error)) *Panel[T] {
	return &Panel[T]{name: name, fetch: fetch}
}

func (p *Panel[T]) Name() string { return p.name }

// Refresh fetches once and returns the fetch error, if any. A fetch that
// completes after a newer one has been applied is discarded, error included.
func (p *Panel[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.issued++
	ticket := p.issued
	p.mu.Unlock()

	data, err := p.fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if ticket < p.applied {
		return nil
	}
	if err != nil {
		p.lastErr = err
		return err
	}
	p.applied = ticket
	p.data = data
	p.loaded = true
	p.lastErr = nil
	return nil
}

// Snapshot returns the data of the newest applied fetch and whether any
// fetch has succeeded yet.
func (p *Panel[T]) Snapshot() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data, p.loaded
}

// Err returns the error of the newest failed fetch that has not been
// superseded by a success.
func (p *Panel[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

type refresher interface {
	Name() string
	Refresh(ctx context.Context) error
}
