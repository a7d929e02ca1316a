// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayWithinBounds(t *testing.T) {
	min, max := 2*time.Second, 5*time.Second
	th := NewThrottle(min, max, rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		d := th.Delay()
		require.GreaterOrEqual(t, d, min)
		require.LessOrEqual(t, d, max)
	}
}

func TestDelayDeterministicWithSeed(t *testing.T) {
	a := NewThrottle(time.Second, 3*time.Second, rand.New(rand.NewSource(42)))
	b := NewThrottle(time.Second, 3*time.Second, rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Delay(), b.Delay())
	}
}

func TestDelayEqualBounds(t *testing.T) {
	th := NewThrottle(time.Second, time.Second, rand.New(rand.NewSource(1)))
	assert.Equal(t, time.Second, th.Delay())
}

func TestNewThrottleSwapsInvertedBounds(t *testing.T) {
	th := NewThrottle(5*time.Second, 2*time.Second, rand.New(rand.NewSource(1)))
	d := th.Delay()
	assert.GreaterOrEqual(t, d, 2*time.Second)
	assert.LessOrEqual(t, d, 5*time.Second)
}

func TestWaitZeroDelayReturnsImmediately(t *testing.T) {
	th := NewThrottle(0, 0, rand.New(rand.NewSource(1)))

	start := time.Now()
	err := th.Wait(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitCancelled(t *testing.T) {
	th := NewThrottle(10*time.Second, 10*time.Second, rand.New(rand.NewSource(1)))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := th.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitBlocksForDrawnDelay(t *testing.T) {
	th := NewThrottle(30*time.Millisecond, 30*time.Millisecond, rand.New(rand.NewSource(1)))

	start := time.Now()
	err := th.Wait(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
