package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/peek/internal/fileops"
	"github.com/LFroesch/peek/internal/logger"
	"github.com/LFroesch/peek/internal/search"
)

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("peek")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetRows(m.listRows())
		m.clampBookmarkCursor()
		return m, nil

	case clearLastKeyMsg:
		if msg.seq == m.lastKeySeq {
			m.lastKey = ""
		}
		return m, nil

	case openResultMsg:
		if msg.err != nil {
			m.showMessage("Error: Could not open file, press any key!", modeBrowse)
		} else {
			m.statusMsg = fmt.Sprintf("Opened: %s", filepath.Base(msg.path))
		}
		return m, nil

	case tea.KeyMsg:
		tick := m.recordKey(msg)
		cmd := m.handleKey(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, tea.Batch(tick, cmd)
	}

	// Cursor blink and other input bookkeeping
	if m.input != nil {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeMessage:
		// Any key dismisses the message
		m.message = ""
		m.mode = m.messageNext
		return nil
	case modeConfirmDelete:
		return m.handleConfirmDelete(msg)
	case modeConfirmRename:
		return m.handleConfirmRename(msg)
	case modeRenameInput:
		return m.handleRenameInput(msg)
	case modeSearchInput:
		return m.handleSearchInput(msg)
	case modeBookmarks:
		return m.handleBookmarks(msg)
	case modeBookmarkConfirmStale, modeBookmarkConfirmDelete:
		return m.handleBookmarkConfirm(msg)
	default:
		return m.handleBrowse(msg)
	}
}

func (m *model) handleBrowse(msg tea.KeyMsg) tea.Cmd {
	m.statusMsg = ""

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true

	case key.Matches(msg, keys.Up):
		m.nav.MoveUp()
	case key.Matches(msg, keys.Down):
		m.nav.MoveDown()
	case key.Matches(msg, keys.PageUp):
		m.nav.PageUp()
	case key.Matches(msg, keys.PageDown):
		m.nav.PageDown()
	case key.Matches(msg, keys.Home):
		m.nav.Home()
	case key.Matches(msg, keys.End):
		m.nav.End()

	case key.Matches(msg, keys.Delete):
		if m.nav.ArmDelete() {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.Rename):
		if _, ok := m.nav.Current(); ok {
			m.mode = modeConfirmRename
		}

	case key.Matches(msg, keys.Enter):
		entered, err := m.nav.EnterDirectory()
		if err != nil {
			m.showMessage("Error: Could not enter directory, press any key!", modeBrowse)
		} else if entered {
			m.listingReplaced()
		}
	case key.Matches(msg, keys.Back):
		back, err := m.nav.GoBack()
		if err != nil {
			m.showMessage("Error: Could not go back, press any key!", modeBrowse)
		} else if back {
			m.listingReplaced()
		}

	case key.Matches(msg, keys.Search):
		_, cmd := m.beginInput(modeSearchInput, "/")
		return cmd
	case key.Matches(msg, keys.NextMatch):
		if idx, ok := m.search.Navigate(1); ok {
			m.nav.Select(idx)
		}
	case key.Matches(msg, keys.PrevMatch):
		if idx, ok := m.search.Navigate(-1); ok {
			m.nav.Select(idx)
		}
	case key.Matches(msg, keys.ExitSearch):
		m.search.Exit()

	case key.Matches(msg, keys.CopyPath):
		m.copyPath()
	case key.Matches(msg, keys.ToggleSort):
		if err := m.nav.ToggleSort(); err != nil {
			m.showMessage("Error: Could not read directory, press any key!", modeBrowse)
		} else {
			m.listingReplaced()
		}
	case key.Matches(msg, keys.Reload):
		if err := m.nav.Reload(); err != nil {
			m.showMessage("Error: Could not read directory, press any key!", modeBrowse)
		} else {
			m.listingReplaced()
		}

	case key.Matches(msg, keys.AddBookmark):
		m.addBookmark()
	case key.Matches(msg, keys.RemoveBookmark):
		m.removeBookmark()
	case key.Matches(msg, keys.Bookmarks):
		m.openBookmarks()

	case key.Matches(msg, keys.Open):
		return m.openSelected()
	}
	return nil
}

func (m *model) handleConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	m.mode = modeBrowse
	switch msg.String() {
	case "y", "Y":
		if err := m.nav.ConfirmDelete(); err != nil {
			m.showMessage("Error: Could not delete file, press any key!", modeBrowse)
			return nil
		}
		m.listingReplaced()
	default:
		m.nav.CancelDelete()
	}
	return nil
}

func (m *model) handleConfirmRename(msg tea.KeyMsg) tea.Cmd {
	m.mode = modeBrowse
	switch msg.String() {
	case "y", "Y":
		_, cmd := m.beginInput(modeRenameInput, "New name: ")
		return cmd
	}
	return nil
}

func (m *model) handleRenameInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.input.release()
		return nil
	case "enter":
		newName := m.textInput.Value()
		m.input.release()

		if err := m.nav.Rename(newName); err != nil {
			if fileops.KindOf(err) == fileops.InvalidInput {
				m.showMessage(fmt.Sprintf("Error: Invalid name %q, press any key!", newName), modeBrowse)
			} else {
				m.showMessage("Error: Could not rename, press any key!", modeBrowse)
			}
			return nil
		}
		m.listingReplaced()
		return nil
	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return cmd
	}
}

func (m *model) handleSearchInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.input.release()
		m.search.Exit()
		return nil
	case "enter":
		term := m.textInput.Value()
		m.input.release()

		names := m.nav.Names()
		if m.search.Start(term, names) {
			if idx, ok := m.search.Selected(); ok {
				m.nav.Select(idx)
			}
		} else if term != "" {
			m.showMessage(search.NotFoundMessage(term, names), modeBrowse)
		}
		return nil
	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return cmd
	}
}

func (m *model) addBookmark() {
	path := m.nav.Path
	if err := m.bookmarks.Add(path); err != nil {
		m.showMessage("Error: Could not save bookmark, press any key!", modeBrowse)
		return
	}
	m.bookmarked = true
	m.statusMsg = "Bookmark added: " + path
}

func (m *model) removeBookmark() {
	path := m.nav.Path
	removed, err := m.bookmarks.Remove(path)
	if err != nil {
		m.showMessage("Error: Could not save bookmark, press any key!", modeBrowse)
		return
	}
	if removed {
		m.bookmarked = false
		m.statusMsg = "Bookmark removed: " + path
	} else {
		m.statusMsg = "Not bookmarked: " + path
	}
}

func (m *model) openBookmarks() {
	list, err := m.bookmarks.List()
	if err != nil {
		logger.Error("Failed to load bookmarks: %v", err)
	}
	if len(list) == 0 {
		m.showMessage("No bookmarks found", modeBrowse)
		return
	}
	m.bookmarkList = list
	m.bookmarkCursor = 0
	m.bookmarkTop = 0
	m.mode = modeBookmarks
}

func (m *model) handleBookmarks(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.mode = modeBrowse
	case "k", "up":
		if m.bookmarkCursor > 0 {
			m.bookmarkCursor--
		}
	case "j", "down":
		if m.bookmarkCursor < len(m.bookmarkList)-1 {
			m.bookmarkCursor++
		}
	case "enter":
		if len(m.bookmarkList) == 0 {
			break
		}
		target := m.bookmarkList[m.bookmarkCursor]
		if !fileops.Exists(target) {
			m.mode = modeBookmarkConfirmStale
			return nil
		}
		if err := m.nav.OpenPath(target); err != nil {
			m.showMessage("Error: Could not open bookmark, press any key!", modeBookmarks)
			return nil
		}
		m.listingReplaced()
		m.mode = modeBrowse
	case "]":
		if len(m.bookmarkList) > 0 {
			m.mode = modeBookmarkConfirmDelete
		}
	}
	m.clampBookmarkCursor()
	return nil
}

func (m *model) handleBookmarkConfirm(msg tea.KeyMsg) tea.Cmd {
	m.mode = modeBookmarks
	switch msg.String() {
	case "y", "Y":
		target := m.bookmarkList[m.bookmarkCursor]
		if _, err := m.bookmarks.Remove(target); err != nil {
			m.showMessage("Error: Could not save bookmark, press any key!", modeBookmarks)
			return nil
		}
		list, err := m.bookmarks.List()
		if err != nil {
			logger.Error("Failed to reload bookmarks: %v", err)
		}
		m.bookmarkList = list
		m.refreshBookmarked()
		m.clampBookmarkCursor()
	}
	return nil
}

// clampBookmarkCursor keeps the overlay cursor inside the snapshot and on screen.
func (m *model) clampBookmarkCursor() {
	n := len(m.bookmarkList)
	if m.bookmarkCursor >= n {
		m.bookmarkCursor = n - 1
	}
	if m.bookmarkCursor < 0 {
		m.bookmarkCursor = 0
	}
	rows := m.bookmarkRows()
	if m.bookmarkCursor < m.bookmarkTop {
		m.bookmarkTop = m.bookmarkCursor
	}
	if m.bookmarkCursor >= m.bookmarkTop+rows {
		m.bookmarkTop = m.bookmarkCursor - rows + 1
	}
	if m.bookmarkTop < 0 {
		m.bookmarkTop = 0
	}
}
