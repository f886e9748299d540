package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/slidedeck/internal/deck"
)

var (
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#c0caf5")).
			Background(lipgloss.Color("#1f2335"))
	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7")).
			Bold(true)
	dotActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7"))
	dotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b4261"))
	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6"))
	// Edge controls stay clickable; only the affordance dims.
	controlDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b4261")).
			Faint(true)
	ornamentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
	errLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b"))
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
	searchBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
)

// clickTarget classifies a click on the footer dot row.
type clickTarget int

const (
	targetNone clickTarget = iota
	targetPrev
	targetNext
	targetDot
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	body := m.contentVP.View()
	if m.err != nil {
		errLine := errLineStyle.Render(m.err.Error())
		body = lipgloss.JoinVertical(lipgloss.Left, errLine, body)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.progressView(),
		m.dotRowView(),
	)

	if m.showHelp {
		helpContent := strings.Join([]string{
			"ヘルプ (?:閉じる / Esc)",
			"→ / ↓ / Space / PgDn : 次のスライド",
			"← / ↑ / PgUp         : 前のスライド",
			"Home / End           : 最初 / 最後のスライドへ",
			"ホイール / スワイプ  : スライド移動",
			"ドットをクリック     : そのスライドへ移動",
			"/                    : 検索モード開始",
			"n / N                : 次 / 前の一致へ移動",
			"q / Ctrl+c           : 終了",
		}, "\n")
		helpOverlay := helpBoxStyle.Render(helpContent)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
		}
		return helpOverlay
	}

	if m.searchActive {
		screen = lipgloss.JoinVertical(lipgloss.Left, screen, searchBarStyle.Render(m.searchInput.View()))
	} else if m.searchQuery != "" {
		if status := m.searchStatusLine(); status != "" {
			screen = lipgloss.JoinVertical(lipgloss.Left, screen, searchBarStyle.Render(status))
		}
	}

	return screen
}

func (m *Model) headerView() string {
	title := m.meta.Title
	if title == "" {
		title = m.headerPath
	}
	counter := counterStyle.Render(fmt.Sprintf("%d / %d", m.nav.Current(), m.nav.Total()))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(counter) - headerStyle.GetHorizontalPadding()
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(m.width).Render(title + strings.Repeat(" ", gap) + counter)
}

func (m *Model) progressView() string {
	bar := m.progress.ViewAs(m.nav.Progress() / 100)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
}

// dotRowView renders "‹ ● ○ ○ ›" centered. The layout must stay in sync
// with footerTarget.
func (m *Model) dotRowView() string {
	prev := controlStyle.Render("‹")
	if m.nav.AtFirst() {
		prev = controlDimStyle.Render("‹")
	}
	next := controlStyle.Render("›")
	if m.nav.AtLast() {
		next = controlDimStyle.Render("›")
	}

	dots := make([]string, m.nav.Total())
	for i := range dots {
		if i+1 == m.nav.Current() {
			dots[i] = dotActiveStyle.Render("●")
		} else {
			dots[i] = dotStyle.Render("○")
		}
	}

	line := prev + " " + strings.Join(dots, " ") + " " + next
	left := (m.width - m.dotRowWidth()) / 2
	if left < 0 {
		left = 0
	}
	return strings.Repeat(" ", left) + line
}

func (m *Model) dotRowWidth() int {
	// "‹ " + dots separated by single spaces + " ›"
	return 2 + 2*m.nav.Total() - 1 + 2
}

// footerTarget maps a column on the dot row to the control or dot under it.
func (m *Model) footerTarget(x int) (clickTarget, int) {
	left := (m.width - m.dotRowWidth()) / 2
	if left < 0 {
		left = 0
	}
	rel := x - left
	if rel < 0 || rel >= m.dotRowWidth() {
		return targetNone, 0
	}
	if rel == 0 {
		return targetPrev, 0
	}
	if rel == m.dotRowWidth()-1 {
		return targetNext, 0
	}
	rel -= 2
	if rel < 0 || rel > 2*(m.nav.Total()-1) || rel%2 != 0 {
		return targetNone, 0
	}
	return targetDot, rel/2 + 1
}

// composeContent builds the viewport content for the slide: the ornament
// line with its parallax offset, then the body displaced while the slide
// carries its entry tag.
func (m *Model) composeContent(s *deck.Slide) string {
	body := offsetBody(m.renderedSlide, s.Transition)
	orn := ornamentLine(s.Ornaments, m.contentVP.Width, m.parallax)
	if orn == "" {
		return body
	}
	return orn + "\n" + body
}

// offsetBody displaces the slide body toward the side it enters from:
// indentation for a right entry, a left cut for a left entry.
func offsetBody(body string, t deck.Transition) string {
	if !t.Entering() {
		return body
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if t == deck.EnteringRight {
			lines[i] = strings.Repeat(" ", enterShift) + line
		} else {
			lines[i] = ansi.TruncateLeft(line, enterShift, "")
		}
	}
	return strings.Join(lines, "\n")
}

// ornamentLine spreads the ornaments across the width. Non-animated
// ornaments shift with the pointer; self-animating ones hold position.
func ornamentLine(ornaments []deck.Ornament, width, shift int) string {
	if len(ornaments) == 0 || width <= 0 {
		return ""
	}
	step := width / (len(ornaments) + 1)
	var b strings.Builder
	col := 0
	for i, o := range ornaments {
		w := lipgloss.Width(o.Text)
		pos := step * (i + 1)
		if !o.Animated {
			pos += shift
		}
		pos = clamp(pos, 0, max(width-w, 0))
		if pos > col {
			b.WriteString(strings.Repeat(" ", pos-col))
			col = pos
		}
		b.WriteString(ornamentStyle.Render(o.Text))
		col += w
	}
	return b.String()
}

// parallaxShift scales the pointer position relative to the viewport center
// into a bounded horizontal offset.
func parallaxShift(x, width, maxShift int) int {
	center := width / 2
	if center <= 0 {
		return 0
	}
	return (x - center) * maxShift / center
}
