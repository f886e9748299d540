package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/slidedeck/internal/deck"
)

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)

	go m.watchLoop()
	return nil
}

func (m *Model) watchLoop() {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if m.watchChan != nil {
				m.watchChan <- fileEventMsg{path: event.Name, op: event.Op}
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			if m.watchChan != nil {
				m.watchChan <- fileWatchErrMsg{err: err}
			}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-m.watchChan
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" {
		return m.waitForFileEvent()
	}
	if filepath.Clean(msg.path) != filepath.Clean(m.watchedFile) {
		return m.waitForFileEvent()
	}

	m.reloadDeck()
	return m.waitForFileEvent()
}

// reloadDeck re-parses the deck file in place, preserving the viewing
// position where possible.
func (m *Model) reloadDeck() {
	d, err := deck.ParseFile(m.deckPath)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.meta = d.Meta
	m.nav.Replace(d.Slides)

	// In-flight ticks belong to a transition that no longer exists.
	m.transitionSeq++
	m.renderedIndex = 0
	m.refreshMatches()
	if m.ready {
		// The frontmatter may have changed the theme; rebuild the renderer.
		m.resize(m.width, m.height)
	} else {
		m.refreshContent()
	}
	m.log.Info().Int("slides", m.nav.Total()).Msg("deck reloaded")
}
