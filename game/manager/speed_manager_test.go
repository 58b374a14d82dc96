package manager

import (
	"testing"
	"time"

	"classic-snake/game/types"
)

func TestNextDelayTiers(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		in, want time.Duration
	}{
		{200 * ms, 195 * ms},
		{155 * ms, 150 * ms},
		{151 * ms, 146 * ms},
		{150 * ms, 147 * ms},
		{101 * ms, 98 * ms},
		{100 * ms, 98 * ms},
		{51 * ms, 49 * ms},
		{50 * ms, 49 * ms},
		{26 * ms, 25 * ms},
		{25 * ms, 25 * ms},
	}

	for _, tt := range tests {
		if got := NextDelay(tt.in); got != tt.want {
			t.Errorf("NextDelay(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNextDelayMonotonicWithFloor(t *testing.T) {
	delay := types.BaseDelay
	for i := 0; i < 500; i++ {
		next := NextDelay(delay)
		if next > delay {
			t.Fatalf("step %d: delay increased from %v to %v", i, delay, next)
		}
		if next < types.MinDelay {
			t.Fatalf("step %d: delay %v below floor", i, next)
		}
		delay = next
	}
	if delay != types.MinDelay {
		t.Errorf("delay converged to %v, want %v", delay, types.MinDelay)
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[int]string{0: "000", 7: "007", 42: "042", 399: "399", 1234: "1234"}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Errorf("FormatScore(%d) = %q, want %q", in, got, want)
		}
	}
}
