package deck

import (
	"testing"
	"time"
)

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name   string
		startX int
		endX   int
		want   Swipe
	}{
		{"long drag left is forward", 300, 200, SwipeForward},
		{"long drag right is backward", 200, 300, SwipeBackward},
		{"small movement ignored", 300, 280, SwipeNone},
		{"threshold itself is not enough", 300, 250, SwipeNone},
		{"one past threshold triggers", 300, 249, SwipeForward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := SwipeTracker{Threshold: 50}
			tracker.Start(tt.startX)
			if got := tracker.End(tt.endX); got != tt.want {
				t.Errorf("End(%d) = %v, want %v", tt.endX, got, tt.want)
			}
		})
	}
}

func TestSwipeTracker_EndWithoutStart(t *testing.T) {
	tracker := SwipeTracker{Threshold: 50}
	if got := tracker.End(100); got != SwipeNone {
		t.Errorf("End without Start = %v, want SwipeNone", got)
	}
}

func TestSwipeTracker_ReleaseConsumesGesture(t *testing.T) {
	tracker := SwipeTracker{Threshold: 50}
	tracker.Start(300)
	tracker.End(200)
	if got := tracker.End(0); got != SwipeNone {
		t.Errorf("second End = %v, want SwipeNone", got)
	}
}

func TestWheelDebounce(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	debounce := WheelDebounce{Window: 800 * time.Millisecond}

	if !debounce.Allow(base) {
		t.Fatal("first event must pass")
	}
	if debounce.Allow(base.Add(300 * time.Millisecond)) {
		t.Error("event inside the window must be swallowed")
	}
	if debounce.Allow(base.Add(799 * time.Millisecond)) {
		t.Error("event just inside the window must be swallowed")
	}
	if !debounce.Allow(base.Add(800 * time.Millisecond)) {
		t.Error("event at the window edge must pass")
	}
	if debounce.Allow(base.Add(900 * time.Millisecond)) {
		t.Error("the passing event must open a new window")
	}
}
