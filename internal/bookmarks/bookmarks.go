package bookmarks

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/LFroesch/peek/internal/logger"
)

const fileName = ".peek_bookmarks"

// Store is an ordered, duplicate-free set of bookmarked directory paths.
type Store interface {
	List() ([]string, error)
	Add(path string) error
	// Remove reports whether path was bookmarked.
	Remove(path string) (bool, error)
	Contains(path string) (bool, error)
}

// DefaultPath returns ${HOME}/.peek_bookmarks, or ./.peek_bookmarks when HOME is unset.
func DefaultPath() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = "."
	}
	return filepath.Join(home, fileName)
}

// FileStore keeps one path per line in a text file. Every call rereads the
// file so edits from other peek instances are picked up.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The file is created on first Add.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) read() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read bookmarks: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || slices.Contains(paths, line) {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read bookmarks: %w", err)
	}
	return paths, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (s *FileStore) write(paths []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create bookmark directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot write bookmarks: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write bookmarks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write bookmarks: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		logger.Warn("Failed to chmod bookmark file: %v", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("cannot write bookmarks: %w", err)
	}
	return nil
}

func (s *FileStore) Add(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := s.read()
	if err != nil {
		return err
	}
	if slices.Contains(paths, path) {
		return nil
	}
	if err := s.write(append(paths, path)); err != nil {
		logger.Error("Failed to add bookmark %s: %v", path, err)
		return err
	}
	logger.Info("Bookmark added: %s", path)
	return nil
}

func (s *FileStore) Remove(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := s.read()
	if err != nil {
		return false, err
	}
	i := slices.Index(paths, path)
	if i < 0 {
		return false, nil
	}
	if err := s.write(slices.Delete(paths, i, i+1)); err != nil {
		logger.Error("Failed to remove bookmark %s: %v", path, err)
		return false, err
	}
	logger.Info("Bookmark removed: %s", path)
	return true, nil
}

func (s *FileStore) Contains(path string) (bool, error) {
	paths, err := s.List()
	if err != nil {
		return false, err
	}
	return slices.Contains(paths, path), nil
}

// MemoryStore is a Store that never touches disk.
type MemoryStore struct {
	mu    sync.Mutex
	paths []string
}

// NewMemoryStore returns a store seeded with paths, duplicates dropped.
func NewMemoryStore(paths ...string) *MemoryStore {
	s := &MemoryStore{}
	for _, p := range paths {
		if p != "" && !slices.Contains(s.paths, p) {
			s.paths = append(s.paths, p)
		}
	}
	return s
}

func (s *MemoryStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.paths), nil
}

func (s *MemoryStore) Add(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.paths, path) {
		s.paths = append(s.paths, path)
	}
	return nil
}

func (s *MemoryStore) Remove(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.Index(s.paths, path)
	if i < 0 {
		return false, nil
	}
	s.paths = slices.Delete(s.paths, i, i+1)
	return true, nil
}

func (s *MemoryStore) Contains(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.paths, path), nil
}
