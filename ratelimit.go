// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/juju/clock"
)

// rateLimitTracker tracks the service's rate limit windows from
// response headers. Trello enforces a fixed request budget per rolling
// interval, separately for the API key and the member token, and
// advertises both as remaining-count and interval-length header pairs.
// The token window is the tighter of the two, so the tracker follows
// it and falls back to the key window when token headers are absent.
//
// The tracker provides preemptive blocking: when the last response
// reported an exhausted window, the next request sleeps out the
// remainder of the interval instead of collecting a guaranteed 429.
type rateLimitTracker struct {
	mu        sync.Mutex
	remaining int
	interval  time.Duration
	observed  time.Time // when the exhausted window was reported
	known     bool
	clock     clock.Clock
}

func newRateLimitTracker(clk clock.Clock) *rateLimitTracker {
	return &rateLimitTracker{clock: clk}
}

// update records rate limit state from response headers. Called after
// every response; responses without rate limit headers leave the
// tracker unchanged.
func (tracker *rateLimitTracker) update(header http.Header) {
	remaining, interval, ok := windowFromHeaders(header, "X-Rate-Limit-Api-Token-Remaining", "X-Rate-Limit-Api-Token-Interval-Ms")
	if !ok {
		remaining, interval, ok = windowFromHeaders(header, "X-Rate-Limit-Api-Key-Remaining", "X-Rate-Limit-Api-Key-Interval-Ms")
	}
	if !ok {
		return
	}

	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	tracker.remaining = remaining
	tracker.interval = interval
	tracker.observed = tracker.clock.Now()
	tracker.known = true
}

// wait blocks until the current window can have reset if the tracker
// knows the budget is exhausted. Returns immediately when the budget
// is not exhausted, not yet known, or the window has already rolled
// over. Returns an error only if the context is cancelled while
// waiting.
func (tracker *rateLimitTracker) wait(ctx context.Context) error {
	tracker.mu.Lock()
	if !tracker.known || tracker.remaining > 0 {
		tracker.mu.Unlock()
		return nil
	}
	sleepDuration := tracker.observed.Add(tracker.interval).Sub(tracker.clock.Now())
	tracker.mu.Unlock()

	if sleepDuration <= 0 {
		return nil
	}

	select {
	case <-tracker.clock.After(sleepDuration):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retryAfter computes the backoff duration from a rate-limited
// response. The Retry-After header (seconds) takes precedence; without
// it the advertised window interval is used, preferring the token
// window over the key window like update does. Returns zero when the
// response carries no backoff information, in which case the caller
// surfaces the 429 instead of retrying.
func (tracker *rateLimitTracker) retryAfter(header http.Header) time.Duration {
	if retryValue := header.Get("Retry-After"); retryValue != "" {
		if seconds, err := strconv.Atoi(retryValue); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}

	if _, interval, ok := windowFromHeaders(header, "X-Rate-Limit-Api-Token-Remaining", "X-Rate-Limit-Api-Token-Interval-Ms"); ok && interval > 0 {
		return interval
	}
	if _, interval, ok := windowFromHeaders(header, "X-Rate-Limit-Api-Key-Remaining", "X-Rate-Limit-Api-Key-Interval-Ms"); ok && interval > 0 {
		return interval
	}

	return 0
}

// windowFromHeaders parses one remaining-count and interval-length
// header pair.
func windowFromHeaders(header http.Header, remainingName, intervalName string) (remaining int, interval time.Duration, ok bool) {
	remainingValue := header.Get(remainingName)
	intervalValue := header.Get(intervalName)
	if remainingValue == "" || intervalValue == "" {
		return 0, 0, false
	}

	remaining, err := strconv.Atoi(remainingValue)
	if err != nil {
		return 0, 0, false
	}

	intervalMs, err := strconv.Atoi(intervalValue)
	if err != nil {
		return 0, 0, false
	}

	return remaining, time.Duration(intervalMs) * time.Millisecond, true
}
