package dictionary

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cached memoizes answers from another Lookuper. Failed lookups are not
// cached, and concurrent lookups of the same word share one call.
//
// The shared call runs detached from any one caller's context, bounded by
// timeout instead; a caller that gives up stops waiting without failing
// the others.
type Cached struct {
	next    Lookuper
	timeout time.Duration
	group   singleflight.Group

	mu      sync.RWMutex
	answers map[string]bool
}

// NewCached wraps next. A zero timeout leaves the shared call unbounded.
func NewCached(next Lookuper, timeout time.Duration) *Cached {
	return &Cached{next: next, timeout: timeout, answers: make(map[string]bool)}
}

// Lookup implements Lookuper.
func (c *Cached) Lookup(ctx context.Context, word, language string) (bool, error) {
	key := language + "|" + word

	c.mu.RLock()
	ok, hit := c.answers[key]
	c.mu.RUnlock()
	if hit {
		return ok, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		callCtx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(callCtx, c.timeout)
			defer cancel()
		}
		ok, err := c.next.Lookup(callCtx, word, language)
		if err != nil {
			return false, err
		}
		c.mu.Lock()
		c.answers[key] = ok
		c.mu.Unlock()
		return ok, nil
	})

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return false, res.Err
		}
		return res.Val.(bool), nil
	}
}

// Len returns the number of cached answers.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.answers)
}
