package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Result is the outcome of one submitted computation.
type Result struct {
	State   State
	Elapsed time.Duration
	Err     error
}

// Computer runs coefficient computations in the background. Each Submit
// cancels the previous in-flight request; results that arrive after a newer
// submission carry ErrStale and must not be applied. Resubmitting the same
// generation supersedes the earlier run too.
type Computer struct {
	mu     sync.Mutex
	latest uint64
	ticket uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewComputer() *Computer {
	return &Computer{}
}

// Submit starts computing s and returns a channel that receives exactly one
// Result. A state older than the latest submission is rejected as stale
// without being computed.
func (c *Computer) Submit(ctx context.Context, s State) <-chan Result {
	out := make(chan Result, 1)

	c.mu.Lock()
	if s.Generation < c.latest {
		c.mu.Unlock()
		out <- Result{State: s, Err: ErrStale}
		return out
	}
	ctx, cancel := context.WithCancel(ctx)
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.latest = s.Generation
	c.ticket++
	ticket := c.ticket
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()

		start := time.Now()
		computed, err := s.Compute(ctx)
		res := Result{State: computed, Elapsed: time.Since(start), Err: err}

		if !c.current(ticket) {
			Logger().Debug("discarding stale result",
				slog.Uint64("generation", s.Generation))
			res.Err = ErrStale
		}
		out <- res
	}()
	return out
}

// IsLatest reports whether gen is the newest submitted generation.
func (c *Computer) IsLatest(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.latest
}

func (c *Computer) current(ticket uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ticket == c.ticket
}

// Wait blocks until every submitted computation has delivered its result.
func (c *Computer) Wait() {
	c.wg.Wait()
}

// Close cancels the in-flight computation, if any, and waits for it.
func (c *Computer) Close() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
	c.wg.Wait()
}
