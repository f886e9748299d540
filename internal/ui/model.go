package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/kyaoi/slidedeck/internal/config"
	"github.com/kyaoi/slidedeck/internal/deck"
)

const (
	headerHeight    = 1
	footerHeight    = 2
	minContentWidth = 20
	// enterShift is the horizontal displacement of a slide that still
	// carries its entry tag.
	enterShift = 6
	// maxParallaxShift bounds the ornament offset at the viewport edges.
	maxParallaxShift = 3
)

// Model implements the Bubble Tea program for the slide presenter.
type Model struct {
	nav    *deck.Navigator
	meta   deck.Meta
	cfg    config.Config
	log    zerolog.Logger
	keymap KeyMap

	contentVP  viewport.Model
	renderer   *glamour.TermRenderer
	progress   progress.Model
	headerPath string
	deckPath   string

	// renderedSlide caches the glamour output of the current slide; the
	// viewport content is recomposed from it on transition and parallax
	// changes without re-rendering markdown.
	renderedSlide string
	renderedIndex int

	width    int
	height   int
	ready    bool
	err      error
	showHelp bool

	// transitionSeq invalidates frame/settle ticks of abandoned
	// transitions (e.g. after a live reload).
	transitionSeq int

	wheel    deck.WheelDebounce
	swipe    deck.SwipeTracker
	parallax int

	searchInput   textinput.Model
	searchActive  bool
	searchQuery   string
	searchMatches []int
	searchIndex   int

	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	initialWatchPath string
}

type frameMsg struct{ seq int }

type settleMsg struct{ seq int }

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the presenter model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)
	contentVP.MouseWheelEnabled = false

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	m := &Model{
		nav:              state.Navigator,
		meta:             state.Meta,
		cfg:              state.Config,
		log:              state.Logger,
		keymap:           DefaultKeyMap(),
		contentVP:        contentVP,
		progress:         bar,
		headerPath:       state.HeaderPath,
		deckPath:         state.DeckPath,
		wheel:            deck.WheelDebounce{Window: state.Config.WheelDebounce()},
		swipe:            deck.SwipeTracker{Threshold: state.Config.SwipeThreshold},
		searchIndex:      -1,
		initialWatchPath: state.DeckPath,
	}

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "検索語"
	searchInput.CursorEnd()
	searchInput.Blur()
	m.searchInput = searchInput

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.seq == m.transitionSeq {
			m.nav.Activate()
			m.refreshContent()
		}
		return m, nil

	case settleMsg:
		if msg.seq == m.transitionSeq {
			m.nav.Settle()
			m.refreshContent()
		}
		return m, nil

	case fileEventMsg:
		return m, m.handleFileEvent(msg)

	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		switch msg.Type {
		case tea.KeyEnter:
			query := m.searchInput.Value()
			m.exitSearchMode()
			return m, m.performSearch(query)
		case tea.KeyEsc, tea.KeyCtrlC:
			m.exitSearchMode()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		switch msg.String() {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keymap.Search):
		return m, m.enterSearchMode()
	case key.Matches(msg, m.keymap.NextMatch):
		return m, m.gotoMatch(1)
	case key.Matches(msg, m.keymap.PrevMatch):
		return m, m.gotoMatch(-1)
	case key.Matches(msg, m.keymap.Next):
		return m, m.navigate(m.nav.Next)
	case key.Matches(msg, m.keymap.Prev):
		return m, m.navigate(m.nav.Prev)
	case key.Matches(msg, m.keymap.First):
		return m, m.navigate(func() bool { return m.nav.GoTo(1) })
	case key.Matches(msg, m.keymap.Last):
		return m, m.navigate(func() bool { return m.nav.GoTo(m.nav.Total()) })
	case key.Matches(msg, m.keymap.ScrollDown):
		m.contentVP.HalfViewDown()
		return m, nil
	case key.Matches(msg, m.keymap.ScrollUp):
		m.contentVP.HalfViewUp()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.updateParallax(msg.X)
		return nil

	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		if m.wheel.Allow(time.Now()) {
			return m.navigate(m.nav.Next)
		}
		return nil

	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		if m.wheel.Allow(time.Now()) {
			return m.navigate(m.nav.Prev)
		}
		return nil

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.swipe.Start(msg.X)
		return nil

	case msg.Action == tea.MouseActionRelease:
		switch m.swipe.End(msg.X) {
		case deck.SwipeForward:
			return m.navigate(m.nav.Next)
		case deck.SwipeBackward:
			return m.navigate(m.nav.Prev)
		}
		return m.handleClick(msg.X, msg.Y)
	}
	return nil
}

// handleClick hit-tests a sub-threshold release against the dot row.
func (m *Model) handleClick(x, y int) tea.Cmd {
	if y != m.height-1 {
		return nil
	}
	target, slide := m.footerTarget(x)
	switch target {
	case targetPrev:
		return m.navigate(m.nav.Prev)
	case targetNext:
		return m.navigate(m.nav.Next)
	case targetDot:
		return m.navigate(func() bool { return m.nav.GoTo(slide) })
	}
	return nil
}

// navigate runs a navigation operation and, when it takes effect, schedules
// the two deferred transition steps.
func (m *Model) navigate(op func() bool) tea.Cmd {
	if !op() {
		return nil
	}
	return m.startTransition()
}

func (m *Model) startTransition() tea.Cmd {
	m.transitionSeq++
	seq := m.transitionSeq
	m.refreshContent()
	return tea.Batch(
		tea.Tick(m.cfg.FrameInterval(), func(time.Time) tea.Msg { return frameMsg{seq} }),
		tea.Tick(m.cfg.SettleDelay(), func(time.Time) tea.Msg { return settleMsg{seq} }),
	)
}

func (m *Model) updateParallax(x int) {
	shift := parallaxShift(x, m.width, maxParallaxShift)
	if shift == m.parallax {
		return
	}
	m.parallax = shift
	if s := m.nav.Slide(m.nav.Current()); s != nil && len(s.Ornaments) > 0 {
		m.refreshContent()
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= headerHeight+footerHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true

	contentWidth := max(width, minContentWidth)
	m.contentVP.Width = contentWidth
	m.contentVP.Height = max(height-headerHeight-footerHeight, 1)
	m.progress.Width = max(width-4, 1)

	wrapWidth := contentWidth - m.contentVP.Style.GetHorizontalFrameSize() - enterShift
	if wrapWidth < 0 {
		wrapWidth = 0
	}

	renderer, err := newRenderer(wrapWidth, m.theme())
	if err != nil {
		m.err = err
		return
	}
	m.renderer = renderer
	m.renderedIndex = 0
	m.refreshContent()
}

func (m *Model) theme() string {
	if m.meta.Theme != "" {
		return m.meta.Theme
	}
	return m.cfg.Theme
}

// refreshContent re-renders the current slide if needed and recomposes the
// viewport content from the cached render.
func (m *Model) refreshContent() {
	if m.renderer == nil {
		return
	}
	s := m.nav.Slide(m.nav.Current())
	if s == nil {
		return
	}
	if s.Index != m.renderedIndex {
		rendered, err := m.renderer.Render(s.Content)
		if err != nil {
			m.err = err
			return
		}
		m.err = nil
		m.renderedSlide = rendered
		m.renderedIndex = s.Index
		m.contentVP.GotoTop()
	}
	m.contentVP.SetContent(m.composeContent(s))
}

func newRenderer(width int, theme string) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(theme)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	return glamour.NewTermRenderer(opts...)
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

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
