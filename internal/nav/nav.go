// Package nav holds the browser's navigation state: the current directory,
// its listing, the cursor and the scroll window.
package nav

import (
	"github.com/LFroesch/peek/internal/fileops"
	"github.com/LFroesch/peek/internal/logger"
)

// Lister reads a directory listing.
type Lister interface {
	ReadDir(path string) ([]fileops.Entry, error)
}

// State is the navigation state of one browser.
//
// Invariants kept by every method: the cursor is inside the listing (or 0
// when the listing is empty) and Top <= Selected < Top+Rows.
type State struct {
	Path          string
	Entries       []fileops.Entry
	Selected      int
	Top           int
	Rows          int
	DeletePending bool
	SortByModTime bool

	lister Lister
}

// New lists path and returns a state with the cursor on the first entry.
func New(path string, lister Lister, rows int) (*State, error) {
	s := &State{Path: path, Rows: rows, lister: lister}
	entries, err := s.read(path)
	if err != nil {
		return nil, err
	}
	s.Entries = entries
	s.Clamp()
	return s, nil
}

func (s *State) read(path string) ([]fileops.Entry, error) {
	entries, err := s.lister.ReadDir(path)
	if err != nil {
		logger.Error("Failed to list %s: %v", path, err)
		return nil, err
	}
	if s.SortByModTime {
		fileops.SortByModTime(entries)
	}
	return entries, nil
}

// Clamp restores the cursor and scroll invariants.
func (s *State) Clamp() {
	if s.Rows < 1 {
		s.Rows = 1
	}
	n := len(s.Entries)
	switch {
	case n == 0:
		s.Selected = 0
	case s.Selected >= n:
		s.Selected = n - 1
	case s.Selected < 0:
		s.Selected = 0
	}

	if s.Selected < s.Top {
		s.Top = s.Selected
	}
	if s.Selected >= s.Top+s.Rows {
		s.Top = s.Selected - s.Rows + 1
	}
	if s.Top < 0 {
		s.Top = 0
	}
}

// Window returns the half-open range of entry indices that fit on screen.
func (s *State) Window() (start, end int) {
	start = s.Top
	end = min(s.Top+max(s.Rows, 1), len(s.Entries))
	if start > end {
		start = end
	}
	return start, end
}

// Current returns the entry under the cursor.
func (s *State) Current() (fileops.Entry, bool) {
	if len(s.Entries) == 0 {
		return fileops.Entry{}, false
	}
	return s.Entries[s.Selected], true
}

// FullPath returns the full path of the entry under the cursor, or "" when
// the listing is empty.
func (s *State) FullPath() string {
	e, ok := s.Current()
	if !ok {
		return ""
	}
	return fileops.JoinPath(s.Path, e.Name)
}

// Names returns the listing's names in display order.
func (s *State) Names() []string {
	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = e.Name
	}
	return names
}

func (s *State) MoveUp() {
	if s.Selected > 0 {
		s.Selected--
	}
	s.Clamp()
}

func (s *State) MoveDown() {
	if s.Selected < len(s.Entries)-1 {
		s.Selected++
	}
	s.Clamp()
}

func (s *State) PageUp() {
	s.Selected -= s.Rows
	s.Clamp()
}

func (s *State) PageDown() {
	s.Selected = min(s.Selected+s.Rows, len(s.Entries)-1)
	s.Clamp()
}

func (s *State) Home() {
	s.Selected = 0
	s.Clamp()
}

func (s *State) End() {
	s.Selected = len(s.Entries) - 1
	s.Clamp()
}

// Select moves the cursor to i and scrolls it into view.
func (s *State) Select(i int) {
	s.Selected = i
	s.Clamp()
}

// SelectName moves the cursor to the entry called name.
func (s *State) SelectName(name string) bool {
	for i, e := range s.Entries {
		if e.Name == name {
			s.Select(i)
			return true
		}
	}
	return false
}

// SetRows updates the number of visible rows after a resize.
func (s *State) SetRows(rows int) {
	s.Rows = rows
	s.Clamp()
}

// replace swaps in a new directory and resets the cursor.
func (s *State) replace(path string, entries []fileops.Entry) {
	s.Path = path
	s.Entries = entries
	s.Selected = 0
	s.Top = 0
	s.DeletePending = false
	s.Clamp()
}

// OpenPath switches to the directory at path. On failure nothing changes.
func (s *State) OpenPath(path string) error {
	entries, err := s.read(path)
	if err != nil {
		return err
	}
	s.replace(path, entries)
	return nil
}

// EnterDirectory descends into the selected directory. It reports false
// without error when the cursor is not on a directory.
func (s *State) EnterDirectory() (bool, error) {
	e, ok := s.Current()
	if !ok || !e.IsDir {
		return false, nil
	}
	if err := s.OpenPath(fileops.JoinPath(s.Path, e.Name)); err != nil {
		return false, err
	}
	return true, nil
}

// GoBack moves to the parent directory. It is a no-op at the root.
func (s *State) GoBack() (bool, error) {
	if fileops.IsRoot(s.Path) {
		return false, nil
	}
	if err := s.OpenPath(fileops.ParentPath(s.Path)); err != nil {
		return false, err
	}
	return true, nil
}

// Reload rereads the current directory, keeping the cursor where possible.
func (s *State) Reload() error {
	entries, err := s.read(s.Path)
	if err != nil {
		return err
	}
	s.Entries = entries
	s.Clamp()
	return nil
}

// ArmDelete marks the selected entry for deletion pending confirmation.
func (s *State) ArmDelete() bool {
	if len(s.Entries) == 0 {
		return false
	}
	s.DeletePending = true
	return true
}

func (s *State) CancelDelete() {
	s.DeletePending = false
}

// ConfirmDelete removes the armed entry (recursively for directories) and
// relists. On failure the listing is left as it was.
func (s *State) ConfirmDelete() error {
	if !s.DeletePending {
		return nil
	}
	s.DeletePending = false

	e, ok := s.Current()
	if !ok {
		return nil
	}
	if err := fileops.Delete(fileops.JoinPath(s.Path, e.Name), e.IsDir); err != nil {
		logger.Error("Delete failed: %v", err)
		return err
	}
	logger.Info("Deleted %s", fileops.JoinPath(s.Path, e.Name))
	return s.Reload()
}

// Rename renames the selected entry within the current directory.
func (s *State) Rename(newName string) error {
	e, ok := s.Current()
	if !ok {
		return nil
	}
	if err := fileops.Rename(fileops.JoinPath(s.Path, e.Name), newName); err != nil {
		logger.Error("Rename failed: %v", err)
		return err
	}
	logger.Info("Renamed %s to %s", e.Name, newName)
	return s.Reload()
}

// ToggleSort flips between listing order and newest-first order and rereads
// the directory. If the reread fails the previous order is kept.
func (s *State) ToggleSort() error {
	s.SortByModTime = !s.SortByModTime
	entries, err := s.read(s.Path)
	if err != nil {
		s.SortByModTime = !s.SortByModTime
		return err
	}
	s.Entries = entries
	s.Selected = 0
	s.Top = 0
	s.Clamp()
	return nil
}
