package persist

import (
	"context"
	"sync"
)

// Pending tracks one asynchronous save. The mutation it belongs to is already
// visible in memory; Pending only reports when the bytes reached the sink.
type Pending struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolved returns a Pending that is already complete with err.
func Resolved(err error) *Pending {
	p := newPending()
	p.resolve(err)
	return p
}

func (p *Pending) resolve(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Done is closed once the save finished, successfully or not.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Err returns the save error. It is nil until Done is closed.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the save finished or ctx ends. It returns the save error,
// or ctx.Err() if the context ended first.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
