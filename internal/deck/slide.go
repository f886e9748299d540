package deck

// Transition is the transient direction tag a slide carries while a
// navigation is in flight.
type Transition uint8

const (
	TransitionNone Transition = iota
	EnteringLeft
	EnteringRight
	ExitingLeft
	ExitingRight
)

// String returns the tag name used in logs.
func (t Transition) String() string {
	switch t {
	case EnteringLeft:
		return "entering-left"
	case EnteringRight:
		return "entering-right"
	case ExitingLeft:
		return "exiting-left"
	case ExitingRight:
		return "exiting-right"
	default:
		return "none"
	}
}

// Entering reports whether the tag is one of the entry directions.
func (t Transition) Entering() bool {
	return t == EnteringLeft || t == EnteringRight
}

// Ornament is a decorative string rendered alongside the slide body.
// Animated ornaments are excluded from the pointer parallax effect.
type Ornament struct {
	Text     string
	Animated bool
}

// Slide is a single page of the deck. Index is 1-based and fixed once the
// deck is parsed.
type Slide struct {
	Index      int
	Content    string
	Ornaments  []Ornament
	Active     bool
	Transition Transition
}

// Meta holds the deck-level frontmatter.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Theme  string `yaml:"theme"`
}

// Deck couples the metadata with the ordered slide list.
type Deck struct {
	Meta   Meta
	Slides []*Slide
}
