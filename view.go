package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/LFroesch/peek/internal/fileops"
	"github.com/LFroesch/peek/internal/icons"
	"github.com/LFroesch/peek/internal/search"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	pathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3))
	selectedStyle  = lipgloss.NewStyle().Reverse(true).Faint(true)
	deleteStyle    = lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.ANSIColor(1))
	matchStyle     = lipgloss.NewStyle().Bold(true)
	promptStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Faint(true)
	modTimeStyle   = lipgloss.NewStyle().Foreground(icons.Directory.Color()).Faint(true)
	messageStyle   = lipgloss.NewStyle().Bold(true)
	bookmarkStyle  = lipgloss.NewStyle().Reverse(true)
)

func (m *model) View() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = defaultWidth, defaultHeight
	}

	var lines []string
	switch m.mode {
	case modeBookmarks, modeBookmarkConfirmStale, modeBookmarkConfirmDelete:
		lines = m.renderBookmarks(width, height)
	default:
		lines = m.renderBrowser(width, height)
	}

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderHeader() string {
	header := titleStyle.Render("peek") + " " + pathStyle.Render(m.nav.Path)
	if m.nav.SortByModTime {
		header += " " + indicatorStyle.Render("[mtime]")
	}
	if m.bookmarked {
		header += " " + indicatorStyle.Render("★")
	}
	return header
}

// renderBrowser draws the header, the visible slice of the listing and the
// status line. It only reads navigation state.
func (m *model) renderBrowser(width, height int) []string {
	lines := make([]string, 0, height)
	lines = append(lines, m.renderHeader())

	start, end := m.nav.Window()
	for i := start; i < end && len(lines) < height-1; i++ {
		lines = append(lines, m.renderEntry(i, width))
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}

	lines = append(lines, m.renderStatusLine(width))
	return lines
}

func (m *model) renderEntry(i, width int) string {
	e := m.nav.Entries[i]
	info := icons.ClassifyPath(m.nav.Path, e.Name, e.IsDir)
	selected := i == m.nav.Selected
	name := runewidth.Truncate(e.Name, width/2, "")

	var prompt string
	if selected {
		switch m.mode {
		case modeConfirmDelete:
			prompt = "  Delete? (y/n)"
		case modeConfirmRename:
			prompt = "  Rename? (y/n)"
		}
	}

	var left string
	if selected {
		style := selectedStyle
		if m.nav.DeletePending {
			style = deleteStyle
		}
		left = " " + style.Render(info.Glyph+name)
	} else {
		glyph := lipgloss.NewStyle().Foreground(info.Category.Color()).Render(info.Glyph)
		if search.Matches(e.Name, m.search.Term) {
			name = matchStyle.Render(name)
		}
		left = " " + glyph + name
	}
	if prompt != "" {
		left += promptStyle.Render(prompt)
	}

	if e.IsDir {
		return left
	}
	modTime := fileops.FormatModTime(fileops.JoinPath(m.nav.Path, e.Name), m.config.DateFormat)
	if modTime == "" {
		return left
	}
	// Right-align with two columns of padding when there is room
	gap := width - 2 - runewidth.StringWidth(modTime) - lipgloss.Width(left)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + modTimeStyle.Render(modTime)
}

func (m *model) renderStatusLine(width int) string {
	var left string
	switch {
	case m.mode == modeRenameInput || m.mode == modeSearchInput:
		left = m.textInput.View()
	case m.mode == modeMessage:
		left = messageStyle.Render(m.message)
	case m.search.Active():
		left = dimStyle.Render(m.search.Status())
	case m.statusMsg != "":
		left = dimStyle.Render(m.statusMsg)
	}
	return withLastKey(left, m.lastKey, width)
}

// withLastKey puts the last pressed key in the bottom right corner.
func withLastKey(left, lastKey string, width int) string {
	if lastKey == "" {
		return left
	}
	gap := width - 1 - runewidth.StringWidth(lastKey) - lipgloss.Width(left)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + dimStyle.Render(lastKey)
}

func (m *model) renderBookmarks(width, height int) []string {
	lines := make([]string, 0, height)
	lines = append(lines, "Bookmarks (q to exit, Enter to select, ] to delete):", "")

	rows := m.bookmarkRows()
	for i := m.bookmarkTop; i < len(m.bookmarkList) && i < m.bookmarkTop+rows && len(lines) < height-1; i++ {
		path := m.bookmarkList[i]
		if i == m.bookmarkCursor {
			path = bookmarkStyle.Render(path)
		}
		lines = append(lines, " "+path)
	}
	for len(lines) < height-1 {
		lines = append(lines, "")
	}

	var status string
	switch m.mode {
	case modeBookmarkConfirmStale:
		status = promptStyle.Render("Path no longer exists. Delete bookmark? (y/n)")
	case modeBookmarkConfirmDelete:
		status = promptStyle.Render("Delete bookmark? (y/n)")
	}
	lines = append(lines, withLastKey(status, m.lastKey, width))
	return lines
}
