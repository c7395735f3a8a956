package persist

import (
	"context"
	"errors"
	"sync"

	"github.com/five82/clusterfav/internal/logging"
)

// ErrClosed is recorded on saves submitted after Close.
var ErrClosed = errors.New("persist: writer closed")

type job struct {
	data    []byte
	pending *Pending
}

// Writer serializes saves to a Sink on one background goroutine.
type Writer struct {
	sink Sink

	mu     sync.Mutex
	queue  []job
	closed bool

	wake    chan struct{}
	stopped chan struct{}
}

// NewWriter starts the writer goroutine for sink.
func NewWriter(sink Sink) *Writer {
	w := &Writer{
		sink:    sink,
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit queues data for saving and returns immediately.
func (w *Writer) Submit(data []byte) *Pending {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return Resolved(ErrClosed)
	}
	p := newPending()
	w.queue = append(w.queue, job{data: data, pending: p})
	// Signalled under the lock so Close cannot close wake in between.
	select {
	case w.wake <- struct{}{}:
	default:
	}
	w.mu.Unlock()
	return p
}

// Close flushes queued saves and stops the goroutine. It waits at most until
// ctx ends; the sink itself is not closed.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.wake)
	}
	w.mu.Unlock()

	select {
	case <-w.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stopped is closed once the goroutine has finished its last save.
func (w *Writer) Stopped() <-chan struct{} {
	return w.stopped
}

func (w *Writer) run() {
	defer close(w.stopped)
	for range w.wake {
		w.flush()
	}
	w.flush()
}

func (w *Writer) flush() {
	w.mu.Lock()
	batch := w.queue
	w.queue = nil
	w.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	// Only the newest snapshot matters; older queued ones are superseded.
	latest := batch[len(batch)-1]
	err := w.sink.Save(context.Background(), latest.data)
	if err != nil {
		log := logging.WithComponent("persist")
		log.Error().Err(err).Str("location", w.sink.Location()).Msg("save favorites failed")
	}
	for _, j := range batch {
		j.pending.resolve(err)
	}
}
