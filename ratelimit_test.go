// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
)

func TestRetryAfterPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    time.Duration
	}{
		{
			"retry-after wins",
			map[string]string{
				"Retry-After":                        "30",
				"X-Rate-Limit-Api-Token-Remaining":   "0",
				"X-Rate-Limit-Api-Token-Interval-Ms": "5000",
			},
			30 * time.Second,
		},
		{
			"window interval fallback",
			map[string]string{
				"X-Rate-Limit-Api-Token-Remaining":   "0",
				"X-Rate-Limit-Api-Token-Interval-Ms": "5000",
			},
			5 * time.Second,
		},
		{
			"zero retry-after falls through",
			map[string]string{
				"Retry-After":                        "0",
				"X-Rate-Limit-Api-Token-Remaining":   "0",
				"X-Rate-Limit-Api-Token-Interval-Ms": "2000",
			},
			2 * time.Second,
		},
		{
			"key window fallback",
			map[string]string{
				"X-Rate-Limit-Api-Key-Remaining":   "0",
				"X-Rate-Limit-Api-Key-Interval-Ms": "8000",
			},
			8 * time.Second,
		},
		{
			"token window beats key window",
			map[string]string{
				"X-Rate-Limit-Api-Token-Remaining":   "0",
				"X-Rate-Limit-Api-Token-Interval-Ms": "3000",
				"X-Rate-Limit-Api-Key-Remaining":     "0",
				"X-Rate-Limit-Api-Key-Interval-Ms":   "60000",
			},
			3 * time.Second,
		},
		{"no hint", map[string]string{}, 0},
		{
			"unparsable retry-after",
			map[string]string{"Retry-After": "Wed, 21 Oct 2026 07:28:00 GMT"},
			0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tracker := newRateLimitTracker(testclock.NewClock(time.Unix(0, 0)))
			header := http.Header{}
			for name, value := range test.headers {
				header.Set(name, value)
			}
			if got := tracker.retryAfter(header); got != test.want {
				t.Errorf("retryAfter = %v, want %v", got, test.want)
			}
		})
	}
}

func TestRateLimitWaitReturnsImmediately(t *testing.T) {
	clk := testclock.NewClock(time.Unix(0, 0))
	tracker := newRateLimitTracker(clk)
	ctx := context.Background()

	// Nothing observed yet.
	if err := tracker.wait(ctx); err != nil {
		t.Fatalf("wait before any update: %v", err)
	}

	// Budget remaining.
	header := http.Header{}
	header.Set("X-Rate-Limit-Api-Token-Remaining", "40")
	header.Set("X-Rate-Limit-Api-Token-Interval-Ms", "10000")
	tracker.update(header)
	if err := tracker.wait(ctx); err != nil {
		t.Fatalf("wait with budget remaining: %v", err)
	}

	// Exhausted, but the window has already rolled over.
	header.Set("X-Rate-Limit-Api-Token-Remaining", "0")
	tracker.update(header)
	clk.Advance(11 * time.Second)
	if err := tracker.wait(ctx); err != nil {
		t.Fatalf("wait after window rollover: %v", err)
	}
}

func TestRateLimitWaitBlocksOutWindow(t *testing.T) {
	clk := testclock.NewClock(time.Unix(0, 0))
	tracker := newRateLimitTracker(clk)

	header := http.Header{}
	header.Set("X-Rate-Limit-Api-Token-Remaining", "0")
	header.Set("X-Rate-Limit-Api-Token-Interval-Ms", "5000")
	tracker.update(header)

	done := make(chan error, 1)
	go func() {
		done <- tracker.wait(context.Background())
	}()

	if err := clk.WaitAdvance(5*time.Second, time.Second, 1); err != nil {
		t.Fatalf("WaitAdvance: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("wait: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return after the window elapsed")
	}
}

func TestRateLimitFallsBackToKeyWindow(t *testing.T) {
	clk := testclock.NewClock(time.Unix(0, 0))
	tracker := newRateLimitTracker(clk)

	header := http.Header{}
	header.Set("X-Rate-Limit-Api-Key-Remaining", "0")
	header.Set("X-Rate-Limit-Api-Key-Interval-Ms", "3000")
	tracker.update(header)

	done := make(chan error, 1)
	go func() {
		done <- tracker.wait(context.Background())
	}()

	if err := clk.WaitAdvance(3*time.Second, time.Second, 1); err != nil {
		t.Fatalf("WaitAdvance: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("wait: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return after the key window elapsed")
	}
}

func TestRateLimitPrefersTokenWindow(t *testing.T) {
	clk := testclock.NewClock(time.Unix(0, 0))
	tracker := newRateLimitTracker(clk)

	header := http.Header{}
	header.Set("X-Rate-Limit-Api-Token-Remaining", "0")
	header.Set("X-Rate-Limit-Api-Token-Interval-Ms", "3000")
	header.Set("X-Rate-Limit-Api-Key-Remaining", "0")
	header.Set("X-Rate-Limit-Api-Key-Interval-Ms", "60000")
	tracker.update(header)

	done := make(chan error, 1)
	go func() {
		done <- tracker.wait(context.Background())
	}()

	// Advancing by the token interval must release the wait; only the
	// key interval would still be pending.
	if err := clk.WaitAdvance(3*time.Second, time.Second, 1); err != nil {
		t.Fatalf("WaitAdvance: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("wait: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("wait still blocked after the token window elapsed")
	}
}
