package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/peek/internal/logger"
	"github.com/LFroesch/peek/internal/opener"
)

// Helper functions

type openResultMsg struct {
	path string
	err  error
}

type clearLastKeyMsg struct{ seq int }

// inputSession is a scoped line-input mode. release restores the mode that
// was active before it started and is safe to call more than once.
type inputSession struct {
	m    *model
	prev mode
}

func (m *model) beginInput(md mode, prompt string) (*inputSession, tea.Cmd) {
	s := &inputSession{m: m, prev: m.mode}
	m.textInput.Prompt = prompt
	m.textInput.SetValue("")
	m.mode = md
	m.input = s
	return s, m.textInput.Focus()
}

func (s *inputSession) release() {
	if s == nil || s.m.input != s {
		return
	}
	s.m.textInput.Blur()
	s.m.textInput.SetValue("")
	s.m.mode = s.prev
	s.m.input = nil
}

func (m *model) copyPath() {
	path := m.nav.FullPath()
	if path == "" {
		return
	}
	if err := m.copyToClipboard(path); err != nil {
		logger.Error("Failed to copy %s: %v", path, err)
		m.statusMsg = fmt.Sprintf("Failed to copy: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("Copied: %s", path)
}

// openSelected opens the selected file with the application configured for
// its extension. Directories are ignored.
func (m *model) openSelected() tea.Cmd {
	e, ok := m.nav.Current()
	if !ok || e.IsDir {
		return nil
	}
	path := m.nav.FullPath()
	app := opener.AppFor(e.Name, m.config.Apps, m.config.DefaultApp)
	op := m.opener
	return func() tea.Msg {
		return openResultMsg{path: path, err: op.Open(app, path)}
	}
}

func (m *model) recordKey(msg tea.KeyMsg) tea.Cmd {
	m.lastKey = msg.String()
	m.lastKeySeq++
	seq := m.lastKeySeq
	return tea.Tick(lastKeyDuration, func(time.Time) tea.Msg {
		return clearLastKeyMsg{seq: seq}
	})
}
