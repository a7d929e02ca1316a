// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across commands.
package httputil

import (
	"context"
	"math/rand"
	"net/http"
	"time"
)

// Throttle enforces a randomized pause before each outbound lookup. Scholar
// blocks clients that query on a fixed cadence, so the delay is drawn
// uniformly from [min, max] per request rather than being constant.
type Throttle struct {
	min time.Duration
	max time.Duration
	rng *rand.Rand
}

// NewThrottle returns a Throttle over [min, max]. The random source is
// injected so tests can seed it and assert exact delays; a nil rng falls
// back to a time-seeded source. When max < min the bounds are swapped.
func NewThrottle(min, max time.Duration, rng *rand.Rand) *Throttle {
	if max < min {
		min, max = max, min
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Throttle{min: min, max: max, rng: rng}
}

// Delay draws the next pause duration from [min, max].
func (t *Throttle) Delay() time.Duration {
	if t.max == t.min {
		return t.min
	}
	return t.min + time.Duration(t.rng.Int63n(int64(t.max-t.min)+1))
}

// Wait blocks for one drawn delay. It returns early with ctx.Err() if the
// context is cancelled during the pause. Call it exactly once per lookup
// attempt, before the request goes out.
func (t *Throttle) Wait(ctx context.Context) error {
	d := t.Delay()
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// NewClient returns an HTTP client with the given per-request timeout. The
// timeout bounds the individual network call, not the overall run.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
