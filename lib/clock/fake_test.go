// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockAdvanceIgnoresNegative(t *testing.T) {
	clock := Fake(epoch)
	clock.Advance(-time.Hour)
	clock.Advance(0)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
}

func TestFakeClockSet(t *testing.T) {
	clock := Fake(epoch)
	earlier := epoch.Add(-24 * time.Hour)
	clock.Set(earlier)
	if got := clock.Now(); !got.Equal(earlier) {
		t.Fatalf("Now() after Set = %v, want %v", got, earlier)
	}
}

func TestSince(t *testing.T) {
	clock := Fake(epoch)
	clock.Advance(1500 * time.Millisecond)
	if got := Since(clock, epoch); got != 1500*time.Millisecond {
		t.Fatalf("Since() = %v, want 1.5s", got)
	}
}

func TestFakeClockConcurrentAdvance(t *testing.T) {
	clock := Fake(epoch)
	var group sync.WaitGroup
	for range 50 {
		group.Add(1)
		go func() {
			defer group.Done()
			clock.Advance(time.Second)
			_ = clock.Now()
		}()
	}
	group.Wait()
	if got := Since(clock, epoch); got != 50*time.Second {
		t.Fatalf("Since() = %v, want 50s", got)
	}
}

func TestRealClockMovesForward(t *testing.T) {
	clock := Real()
	first := clock.Now()
	second := clock.Now()
	if second.Before(first) {
		t.Fatalf("Real().Now() went backwards: %v then %v", first, second)
	}
}
