package main

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/LFroesch/peek/internal/bookmarks"
	"github.com/LFroesch/peek/internal/config"
	"github.com/LFroesch/peek/internal/fileops"
	"github.com/LFroesch/peek/internal/logger"
	"github.com/LFroesch/peek/internal/nav"
	"github.com/LFroesch/peek/internal/opener"
	"github.com/LFroesch/peek/internal/search"
)

// Terminal dimension constants
const (
	defaultWidth   = 80
	defaultHeight  = 24
	uiOverhead     = 2 // Header (1) + status (1)
	inputCharLimit = 255
)

// How long the last pressed key stays in the corner
const lastKeyDuration = 2 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeConfirmDelete
	modeConfirmRename
	modeRenameInput
	modeSearchInput
	modeBookmarks
	modeBookmarkConfirmStale
	modeBookmarkConfirmDelete
	modeMessage
)

type model struct {
	mode   mode
	nav    *nav.State
	search search.State
	config *config.Config

	bookmarks  bookmarks.Store
	bookmarked bool // current directory is bookmarked

	// Bookmark overlay, a snapshot taken when the overlay opens
	bookmarkList   []string
	bookmarkCursor int
	bookmarkTop    int

	opener          opener.Opener
	copyToClipboard func(string) error

	textInput textinput.Model
	input     *inputSession

	message     string // blocking message, dismissed by any key
	messageNext mode   // mode to return to after the message

	statusMsg string // cleared by the next key press

	lastKey    string
	lastKeySeq int

	width    int
	height   int
	quitting bool
}

// newModel lists path and builds the browser. When selectName is set the
// cursor starts on that entry.
func newModel(path, selectName string, cfg *config.Config, store bookmarks.Store, op opener.Opener) (*model, error) {
	lister := fileops.NewLister(cfg.ShowHidden, cfg.HidePatterns)
	state, err := nav.New(path, lister, defaultHeight-uiOverhead)
	if err != nil {
		return nil, err
	}
	if selectName != "" {
		state.SelectName(selectName)
	}

	ti := textinput.New()
	ti.CharLimit = inputCharLimit
	ti.Width = 50

	m := &model{
		mode:            modeBrowse,
		nav:             state,
		search:          search.New(),
		config:          cfg,
		bookmarks:       store,
		opener:          op,
		copyToClipboard: clipboard.WriteAll,
		textInput:       ti,
	}
	m.refreshBookmarked()
	return m, nil
}

// listRows is the number of listing rows between the header and status line.
func (m *model) listRows() int {
	h := m.height
	if h == 0 {
		h = defaultHeight
	}
	return max(h-uiOverhead, 1)
}

// bookmarkRows leaves an extra blank line under the overlay title.
func (m *model) bookmarkRows() int {
	return max(m.listRows()-1, 1)
}

func (m *model) refreshBookmarked() {
	ok, err := m.bookmarks.Contains(m.nav.Path)
	if err != nil {
		logger.Warn("Failed to read bookmarks: %v", err)
	}
	m.bookmarked = ok
}

// showMessage blocks input until any key is pressed, then returns to next.
func (m *model) showMessage(msg string, next mode) {
	m.message = msg
	m.messageNext = next
	m.mode = modeMessage
}

// listingReplaced is called after anything that swaps the listing. Search
// indices would point at the wrong entries, so the search is dropped.
func (m *model) listingReplaced() {
	m.search.Exit()
	m.refreshBookmarked()
}
