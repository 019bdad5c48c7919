package aladhan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBackoffDoublesUpToMax(t *testing.T) {
	b := newBackoff(time.Millisecond, 4*time.Millisecond)
	ctx := context.Background()

	require.Equal(t, time.Millisecond, b.current)
	b.Sleep(ctx)
	require.Equal(t, 2*time.Millisecond, b.current)
	b.Sleep(ctx)
	require.Equal(t, 4*time.Millisecond, b.current)
	b.Sleep(ctx)
	require.Equal(t, 4*time.Millisecond, b.current)

	b.Reset()
	require.Equal(t, time.Millisecond, b.current)
}

func TestBackoffDefaultsAndFloor(t *testing.T) {
	b := newBackoff(0, 0)
	require.Equal(t, 300*time.Millisecond, b.base)
	require.Equal(t, 300*time.Millisecond, b.max)
}

func TestBackoffSleepReturnsOnCancelledContext(t *testing.T) {
	b := newBackoff(time.Minute, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	b.Sleep(ctx)
	require.Less(t, time.Since(start), time.Second)
}
