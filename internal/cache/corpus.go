package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gracobjo/sentencias/internal/model"
)

// CorpusCache memoizes the corpus report. Recomputation happens on at most
// one goroutine at a time and is bounded by a timeout; while it runs, other
// readers get the previous report marked stale instead of blocking.
type CorpusCache struct {
	ttl     time.Duration
	timeout time.Duration

	mu          sync.Mutex
	report      *model.CorpusReport
	computedAt  time.Time
	recomputing bool
	done        chan struct{}
}

// NewCorpusCache creates a corpus cache. ttl is how long a report stays
// fresh; timeout bounds one recomputation.
func NewCorpusCache(ttl, timeout time.Duration) *CorpusCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CorpusCache{ttl: ttl, timeout: timeout}
}

// Report returns the cached corpus report, recomputing it with compute when
// expired. On recompute failure a previous report is served stale; with no
// previous report the error is returned, mapping deadline expiry to
// ErrAggregationTimeout.
func (c *CorpusCache) Report(ctx context.Context, compute func(context.Context) (*model.CorpusReport, error)) (*model.CorpusReport, error) {
	c.mu.Lock()
	if c.report != nil && time.Since(c.computedAt) < c.ttl {
		r := c.report
		c.mu.Unlock()
		return r, nil
	}
	if c.recomputing {
		if c.report != nil {
			stale := *c.report
			stale.Stale = true
			c.mu.Unlock()
			return &stale, nil
		}
		done := c.done
		c.mu.Unlock()
		select {
		case <-done:
			c.mu.Lock()
			r := c.report
			c.mu.Unlock()
			if r != nil {
				return r, nil
			}
			return nil, model.ErrAggregationTimeout
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	c.recomputing = true
	c.done = make(chan struct{})
	c.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	report, err := compute(cctx)
	cancel()

	c.mu.Lock()
	c.recomputing = false
	close(c.done)
	if err != nil {
		if c.report != nil {
			stale := *c.report
			stale.Stale = true
			c.mu.Unlock()
			return &stale, nil
		}
		c.mu.Unlock()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, model.ErrAggregationTimeout
		}
		return nil, err
	}
	c.report = report
	c.computedAt = time.Now()
	c.mu.Unlock()
	return report, nil
}

// Invalidate drops the cached report so the next call recomputes
func (c *CorpusCache) Invalidate() {
	c.mu.Lock()
	c.report = nil
	c.computedAt = time.Time{}
	c.mu.Unlock()
}
