package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/slidedeck/internal/deck"
)

func (m *Model) enterSearchMode() tea.Cmd {
	m.searchActive = true
	if m.searchQuery != "" {
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.CursorEnd()
	} else {
		m.searchInput.SetValue("")
	}
	return m.searchInput.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchActive = false
	m.searchInput.Blur()
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = -1
	m.err = nil
}

// performSearch collects the slides matching the query and jumps to the
// first one.
func (m *Model) performSearch(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		m.clearSearch()
		return nil
	}
	m.searchQuery = query
	m.searchMatches = findMatchingSlides(m.nav.Slides(), query)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("%q に一致しません。", query)
		return nil
	}
	m.searchIndex = 0
	m.err = nil
	return m.jumpToMatch()
}

// gotoMatch cycles through the matches in the given direction.
func (m *Model) gotoMatch(delta int) tea.Cmd {
	if len(m.searchMatches) == 0 {
		return nil
	}
	if m.searchIndex < 0 {
		m.searchIndex = 0
	} else {
		n := len(m.searchMatches)
		m.searchIndex = ((m.searchIndex+delta)%n + n) % n
	}
	m.err = nil
	return m.jumpToMatch()
}

// jumpToMatch navigates to the matched slide. Landing on the current slide
// is not a transition, and a jump during the lock window is dropped like
// any other navigation.
func (m *Model) jumpToMatch() tea.Cmd {
	target := m.searchMatches[m.searchIndex]
	return m.navigate(func() bool { return m.nav.GoTo(target) })
}

// refreshMatches recomputes the match list after the deck was reloaded,
// keeping the selection on the closest surviving match.
func (m *Model) refreshMatches() {
	if m.searchQuery == "" {
		return
	}
	prev := -1
	if m.searchIndex >= 0 && m.searchIndex < len(m.searchMatches) {
		prev = m.searchMatches[m.searchIndex]
	}

	m.searchMatches = findMatchingSlides(m.nav.Slides(), m.searchQuery)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("%q に一致しません。", m.searchQuery)
		return
	}
	if prev >= 0 {
		m.searchIndex = closestMatchIndex(m.searchMatches, prev)
	} else {
		m.searchIndex = 0
	}
	m.err = nil
}

func (m *Model) searchStatusLine() string {
	if m.searchQuery == "" {
		return ""
	}
	total := len(m.searchMatches)
	if total == 0 || m.searchIndex < 0 {
		return fmt.Sprintf("/%s (0/0)", m.searchQuery)
	}
	return fmt.Sprintf("/%s (%d/%d)", m.searchQuery, m.searchIndex+1, total)
}

// findMatchingSlides returns the 1-based indices of slides whose source
// contains the query, case-insensitively.
func findMatchingSlides(slides []*deck.Slide, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var matches []int
	for _, s := range slides {
		if strings.Contains(strings.ToLower(s.Content), query) {
			matches = append(matches, s.Index)
		}
	}
	return matches
}

func closestMatchIndex(matches []int, slide int) int {
	if len(matches) == 0 {
		return 0
	}
	bestIndex := 0
	bestDiff := absInt(matches[0] - slide)
	for i := 1; i < len(matches); i++ {
		if diff := absInt(matches[i] - slide); diff < bestDiff {
			bestDiff = diff
			bestIndex = i
		}
	}
	return bestIndex
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
