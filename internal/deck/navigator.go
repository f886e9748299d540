package deck

import "github.com/rs/zerolog"

// PositionStore persists the last-viewed slide index per deck.
type PositionStore interface {
	// Load returns the stored index for the deck and whether one exists.
	Load(deckID string) (int, bool)
	// Save records the index for the deck.
	Save(deckID string, slide int) error
}

// Navigator owns the navigation state of a loaded deck: the current slide
// index, the animation lock, and the transition tags on the slides. All
// invalid requests (out-of-range target, request during the lock window,
// request equal to the current position) are silent no-ops.
//
// Navigator performs no scheduling of its own. The caller drives the two
// deferred steps of a transition: Activate on the next frame boundary and
// Settle after the configured settle delay. Until Settle runs, further
// navigation is dropped, not queued.
type Navigator struct {
	deckID    string
	slides    []*Slide
	store     PositionStore
	log       zerolog.Logger
	current   int
	incoming  int
	animating bool
}

// NewNavigator restores the persisted position for the deck, clamped to
// [1, len(slides)] and defaulting to 1 when absent or invalid, and marks
// exactly that slide active. A start > 0 overrides the store.
func NewNavigator(deckID string, slides []*Slide, start int, store PositionStore, log zerolog.Logger) *Navigator {
	n := &Navigator{
		deckID:  deckID,
		slides:  slides,
		store:   store,
		log:     log,
		current: 1,
	}
	if start > 0 {
		n.current = clamp(start, 1, len(slides))
	} else if store != nil {
		if saved, ok := store.Load(deckID); ok {
			n.current = clamp(saved, 1, len(slides))
		}
	}
	n.applyActive()
	return n
}

// Current returns the 1-based index of the current slide.
func (n *Navigator) Current() int { return n.current }

// Total returns the number of slides in the deck.
func (n *Navigator) Total() int { return len(n.slides) }

// Animating reports whether a transition is in flight.
func (n *Navigator) Animating() bool { return n.animating }

// Slides exposes the slide list for rendering.
func (n *Navigator) Slides() []*Slide { return n.slides }

// Slide returns the slide at the 1-based index, or nil when out of range.
func (n *Navigator) Slide(i int) *Slide {
	if i < 1 || i > len(n.slides) {
		return nil
	}
	return n.slides[i-1]
}

// AtFirst reports whether the current slide is the first one.
func (n *Navigator) AtFirst() bool { return n.current == 1 }

// AtLast reports whether the current slide is the last one.
func (n *Navigator) AtLast() bool { return n.current == len(n.slides) }

// Progress returns the position as a percentage of the deck.
func (n *Navigator) Progress() float64 {
	if len(n.slides) == 0 {
		return 0
	}
	return float64(n.current) / float64(len(n.slides)) * 100
}

// Next advances to the following slide. Dropped while a transition is in
// flight or when already on the last slide.
func (n *Navigator) Next() bool {
	if n.animating || n.AtLast() {
		return false
	}
	return n.GoTo(n.current + 1)
}

// Prev returns to the preceding slide. Dropped while a transition is in
// flight or when already on the first slide.
func (n *Navigator) Prev() bool {
	if n.animating || n.AtFirst() {
		return false
	}
	return n.GoTo(n.current - 1)
}

// GoTo starts a transition to the target slide. It tags the outgoing and
// incoming slides with their exit and entry directions, advances the current
// index and persists it. The caller must follow up with Activate and Settle.
// Returns false when the request was dropped.
func (n *Navigator) GoTo(target int) bool {
	if n.animating || target == n.current || target < 1 || target > len(n.slides) {
		return false
	}

	n.animating = true
	forward := target > n.current

	outgoing := n.slides[n.current-1]
	incoming := n.slides[target-1]
	if forward {
		outgoing.Transition = ExitingLeft
		incoming.Transition = EnteringRight
	} else {
		outgoing.Transition = ExitingRight
		incoming.Transition = EnteringLeft
	}
	outgoing.Active = false

	n.incoming = target
	n.current = target
	n.persist()

	n.log.Debug().
		Int("from", outgoing.Index).
		Int("to", target).
		Bool("forward", forward).
		Msg("transition started")
	return true
}

// Activate applies the frame-boundary step of a transition: the incoming
// slide's entry tag is cleared and the slide becomes active. A no-op when no
// transition is in flight.
func (n *Navigator) Activate() {
	if n.incoming == 0 {
		return
	}
	s := n.slides[n.incoming-1]
	s.Transition = TransitionNone
	s.Active = true
}

// Settle finishes a transition: every transition tag is cleared, exactly the
// current slide is active, and the lock is released.
func (n *Navigator) Settle() {
	for _, s := range n.slides {
		s.Transition = TransitionNone
	}
	n.applyActive()
	n.incoming = 0
	n.animating = false
}

// Replace swaps in a freshly parsed slide list, preserving the current
// position where possible. Any in-flight transition is discarded.
func (n *Navigator) Replace(slides []*Slide) {
	n.slides = slides
	n.current = clamp(n.current, 1, len(slides))
	n.incoming = 0
	n.animating = false
	n.applyActive()
	n.persist()
	n.log.Debug().Int("slides", len(slides)).Int("current", n.current).Msg("deck replaced")
}

func (n *Navigator) applyActive() {
	for i, s := range n.slides {
		s.Active = i == n.current-1
	}
}

func (n *Navigator) persist() {
	if n.store == nil {
		return
	}
	if err := n.store.Save(n.deckID, n.current); err != nil {
		n.log.Warn().Err(err).Int("slide", n.current).Msg("position not saved")
	}
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
