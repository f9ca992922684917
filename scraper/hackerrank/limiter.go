package hackerrank

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// BrowserLimiter caps how many Chrome processes run at once across all
// requests. A nil semaphore means unbounded.
type BrowserLimiter struct {
	sem *semaphore.Weighted
	max int
}

func NewBrowserLimiter(max int) *BrowserLimiter {
	l := &BrowserLimiter{max: max}
	if max > 0 {
		l.sem = semaphore.NewWeighted(int64(max))
	}
	return l
}

// Acquire blocks until a browser slot is free or ctx is done.
// The returned release must be called exactly once.
func (l *BrowserLimiter) Acquire(ctx context.Context) (func(), error) {
	if l == nil || l.sem == nil {
		return func() {}, nil
	}
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for a browser slot (max %d): %w", l.max, err)
	}
	return func() { l.sem.Release(1) }, nil
}
