package hackerrank

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBrowserLimiterBlocksWhenFull(t *testing.T) {
	l := NewBrowserLimiter(1)

	release, err := l.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	release()

	again, err := l.Acquire(context.Background())
	require.NoError(t, err)
	again()
}

func TestBrowserLimiterUnbounded(t *testing.T) {
	l := NewBrowserLimiter(0)
	for i := 0; i < 10; i++ {
		_, err := l.Acquire(context.Background())
		require.NoError(t, err)
	}

	var nilLimiter *BrowserLimiter
	release, err := nilLimiter.Acquire(context.Background())
	require.NoError(t, err)
	release()
}
