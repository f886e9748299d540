package deck

import "time"

// Swipe is the outcome of a completed horizontal drag.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeForward
	SwipeBackward
)

// SwipeTracker turns press/release X coordinates into swipe gestures.
// Movements of Threshold or less are ignored as tap jitter.
type SwipeTracker struct {
	Threshold int

	startX   int
	tracking bool
}

// Start records the press coordinate.
func (s *SwipeTracker) Start(x int) {
	s.startX = x
	s.tracking = true
}

// Tracking reports whether a press is awaiting its release.
func (s *SwipeTracker) Tracking() bool { return s.tracking }

// End completes the gesture with the release coordinate. A positive drag
// (release left of press) means forward.
func (s *SwipeTracker) End(x int) Swipe {
	if !s.tracking {
		return SwipeNone
	}
	s.tracking = false
	diff := s.startX - x
	switch {
	case diff > s.Threshold:
		return SwipeForward
	case diff < -s.Threshold:
		return SwipeBackward
	default:
		return SwipeNone
	}
}

// WheelDebounce collapses a continuous scroll gesture into a single
// navigation step per window.
type WheelDebounce struct {
	Window time.Duration

	last time.Time
}

// Allow reports whether a wheel event at now may trigger navigation, and
// if so opens a new window.
func (w *WheelDebounce) Allow(now time.Time) bool {
	if !w.last.IsZero() && now.Sub(w.last) < w.Window {
		return false
	}
	w.last = now
	return true
}
