package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"github.com/LFroesch/peek/internal/logger"
)

// Entry is one item of a directory listing
type Entry struct {
	Name    string
	IsDir   bool
	ModTime time.Time
}

// Lister reads directory listings, skipping entries hidden by configuration.
type Lister struct {
	showHidden bool
	hide       []glob.Glob
}

// NewLister compiles the hide patterns. Invalid patterns are logged and ignored.
func NewLister(showHidden bool, hidePatterns []string) *Lister {
	l := &Lister{showHidden: showHidden}
	for _, pattern := range hidePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			logger.Warn("Ignoring invalid hide pattern %q: %v", pattern, err)
			continue
		}
		l.hide = append(l.hide, g)
	}
	return l
}

var defaultLister = NewLister(true, nil)

// ReadDir lists path with the default lister (everything shown).
func ReadDir(path string) ([]Entry, error) {
	return defaultLister.ReadDir(path)
}

// List is ReadDir without the error: failures yield an empty listing and a log line.
func List(path string) []Entry {
	return defaultLister.List(path)
}

// List returns the listing of path, or nil after logging the failure.
func (l *Lister) List(path string) []Entry {
	entries, err := l.ReadDir(path)
	if err != nil {
		logger.Error("Error opening dir: %v", err)
		return nil
	}
	return entries
}

// ReadDir returns the immediate entries of path in the order the OS reports
// them. Symlinks are followed; entries that cannot be stat'ed (broken links,
// races with deletion) are skipped.
func (l *Lister) ReadDir(path string) ([]Entry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, newError("open", path, PathAccess, err)
	}
	defer dir.Close()

	// Readdirnames keeps the underlying readdir order, os.ReadDir would sort
	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, newError("read", path, PathAccess, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if name == "." || name == ".." || l.hidden(name) {
			continue
		}
		info, err := os.Stat(JoinPath(path, name))
		if err != nil {
			logger.Debug("Skipping %s: %v", name, err)
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			IsDir:   info.IsDir(),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}

func (l *Lister) hidden(name string) bool {
	if !l.showHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range l.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// JoinPath builds the full path of name inside base. The root directory
// does not get a doubled separator.
func JoinPath(base, name string) string {
	return filepath.Join(base, name)
}

// ParentPath returns the parent directory of path; the root is its own parent.
func ParentPath(path string) string {
	return filepath.Dir(filepath.Clean(path))
}

// IsRoot reports whether path is a filesystem root.
func IsRoot(path string) bool {
	clean := filepath.Clean(path)
	return filepath.Dir(clean) == clean
}

// FormatModTime formats the modification time of path with layout, returning
// an empty string when the path cannot be stat'ed.
func FormatModTime(path, layout string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return info.ModTime().Local().Format(layout)
}

// SortByModTime orders files newest first and puts directories after all
// files. Ties keep their listing order.
func SortByModTime(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return 1
			}
			return -1
		}
		if a.IsDir {
			return 0
		}
		return b.ModTime.Compare(a.ModTime)
	})
}

// Delete removes path, recursively when it is a directory.
func Delete(path string, isDir bool) error {
	var err error
	if isDir {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return newError("delete", path, FilesystemMutation, err)
	}
	return nil
}

// ValidateName rejects names that would not stay inside the current directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return newError("rename", name, InvalidInput, errors.New("name is empty"))
	case name == "." || name == "..":
		return newError("rename", name, InvalidInput, errors.New("reserved name"))
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return newError("rename", name, InvalidInput, errors.New("name contains a path separator"))
	}
	return nil
}

// Rename renames a file or directory within its parent directory
func Rename(oldPath, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}
	newPath := JoinPath(filepath.Dir(oldPath), newName)
	if err := os.Rename(oldPath, newPath); err != nil {
		return newError("rename", oldPath, FilesystemMutation, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
