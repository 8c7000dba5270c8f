package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultDelay bounds search-as-you-type request volume against the domain API.
const DefaultDelay = 300 * time.Millisecond

var (
	// ErrSuperseded is returned to a caller whose scheduled search was
	// cancelled by a newer keystroke.
	ErrSuperseded = errors.New("superseded by a newer query")
	// ErrEmptyQuery is returned when the query was cleared; the pending
	// search (if any) is cancelled and no request is issued.
	ErrEmptyQuery = errors.New("empty query")
)

type result[T any] struct {
	val T
	err error
}

// Debouncer schedules a search as a cancellable task: every call cancels the
// previously scheduled task and schedules a new one delay out. Only the most
// recent caller's function runs; superseded callers get ErrSuperseded.
type Debouncer[T any] struct {
	mu     sync.Mutex
	delay  time.Duration
	gen    uint64
	timer  *time.Timer
	cancel chan struct{}
}

func New[T any](delay time.Duration) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay}
}

// Do schedules fn(ctx, query) after the debounce delay and waits for its
// outcome. A subsequent Do cancels the wait with ErrSuperseded. An empty query
// cancels any pending task and returns ErrEmptyQuery without calling fn.
func (d *Debouncer[T]) Do(ctx context.Context, query string, fn func(context.Context, string) (T, error)) (T, error) {
	var zero T

	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		close(d.cancel)
		d.cancel = nil
	}
	if strings.TrimSpace(query) == "" {
		d.mu.Unlock()
		return zero, ErrEmptyQuery
	}

	cancel := make(chan struct{})
	d.cancel = cancel
	res := make(chan result[T], 1)
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.gen != gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.cancel = nil
		d.mu.Unlock()

		val, err := fn(ctx, query)
		res <- result[T]{val: val, err: err}
	})
	d.mu.Unlock()

	select {
	case <-cancel:
		return zero, ErrSuperseded
	case r := <-res:
		return r.val, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
