package nav

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/peek/internal/fileops"
)

// fakeLister serves canned listings; unknown paths fail like a missing directory.
type fakeLister map[string][]fileops.Entry

func (f fakeLister) ReadDir(path string) ([]fileops.Entry, error) {
	entries, ok := f[path]
	if !ok {
		return nil, &fileops.Error{Op: "open", Path: path, Kind: fileops.PathAccess, Err: os.ErrNotExist}
	}
	return append([]fileops.Entry(nil), entries...), nil
}

func files(names ...string) []fileops.Entry {
	entries := make([]fileops.Entry, len(names))
	for i, n := range names {
		entries[i] = fileops.Entry{Name: n}
	}
	return entries
}

func assertInvariants(t *testing.T, s *State) {
	t.Helper()
	if len(s.Entries) == 0 {
		assert.Equal(t, 0, s.Selected)
		return
	}
	assert.GreaterOrEqual(t, s.Selected, 0)
	assert.Less(t, s.Selected, len(s.Entries))
	assert.LessOrEqual(t, s.Top, s.Selected)
	assert.Less(t, s.Selected, s.Top+s.Rows)
}

func TestScrollFollowsCursor(t *testing.T) {
	var names []string
	for i := 0; i < 20; i++ {
		names = append(names, fmt.Sprintf("f%02d", i))
	}
	s, err := New("/d", fakeLister{"/d": files(names...)}, 5)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		s.MoveDown()
		assertInvariants(t, s)
	}
	assert.Equal(t, 7, s.Selected)
	assert.Equal(t, 3, s.Top)

	start, end := s.Window()
	assert.Equal(t, 3, start)
	assert.Equal(t, 8, end)

	for i := 0; i < 10; i++ {
		s.MoveUp()
		assertInvariants(t, s)
	}
	assert.Equal(t, 0, s.Selected)
	assert.Equal(t, 0, s.Top)

	s.End()
	assertInvariants(t, s)
	assert.Equal(t, 19, s.Selected)
	s.MoveDown()
	assert.Equal(t, 19, s.Selected)

	s.PageUp()
	assertInvariants(t, s)
	assert.Equal(t, 14, s.Selected)

	s.Home()
	s.PageDown()
	assertInvariants(t, s)
	assert.Equal(t, 5, s.Selected)
}

func TestEmptyListing(t *testing.T) {
	s, err := New("/empty", fakeLister{"/empty": nil}, 10)
	require.NoError(t, err)

	s.MoveDown()
	s.PageDown()
	s.End()
	assertInvariants(t, s)

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Empty(t, s.FullPath())
	assert.False(t, s.ArmDelete())

	entered, err := s.EnterDirectory()
	assert.NoError(t, err)
	assert.False(t, entered)
}

func TestSetRowsReclamps(t *testing.T) {
	s, err := New("/d", fakeLister{"/d": files("a", "b", "c", "d", "e", "f")}, 6)
	require.NoError(t, err)
	s.Select(5)
	assert.Equal(t, 0, s.Top)

	s.SetRows(2)
	assertInvariants(t, s)
	assert.Equal(t, 4, s.Top)

	s.SetRows(0)
	assert.Equal(t, 1, s.Rows)
	assertInvariants(t, s)
}

func TestEnterAndGoBack(t *testing.T) {
	lister := fakeLister{
		"/home":      {{Name: "notes.txt"}, {Name: "user", IsDir: true}},
		"/home/user": files("a", "b"),
	}
	s, err := New("/home", lister, 10)
	require.NoError(t, err)

	// Enter on a file does nothing
	entered, err := s.EnterDirectory()
	require.NoError(t, err)
	assert.False(t, entered)

	s.MoveDown()
	entered, err = s.EnterDirectory()
	require.NoError(t, err)
	assert.True(t, entered)
	assert.Equal(t, "/home/user", s.Path)
	assert.Equal(t, 0, s.Selected)
	assert.Equal(t, 0, s.Top)

	s.MoveDown()
	back, err := s.GoBack()
	require.NoError(t, err)
	assert.True(t, back)
	assert.Equal(t, "/home", s.Path)
	assert.Equal(t, 0, s.Selected)
}

func TestEnterUnreadableDirectoryKeepsState(t *testing.T) {
	lister := fakeLister{"/d": {{Name: "locked", IsDir: true}}}
	s, err := New("/d", lister, 10)
	require.NoError(t, err)

	entered, err := s.EnterDirectory()
	assert.False(t, entered)
	require.Error(t, err)
	assert.Equal(t, fileops.PathAccess, fileops.KindOf(err))
	assert.Equal(t, "/d", s.Path)
	assert.Len(t, s.Entries, 1)
}

func TestGoBackAtRootIsNoop(t *testing.T) {
	s, err := New("/", fakeLister{"/": files("bin", "etc")}, 10)
	require.NoError(t, err)
	s.MoveDown()

	back, err := s.GoBack()
	require.NoError(t, err)
	assert.False(t, back)
	assert.Equal(t, "/", s.Path)
	assert.Equal(t, 1, s.Selected)
}

func TestOpenPathFailureKeepsState(t *testing.T) {
	s, err := New("/d", fakeLister{"/d": files("a")}, 10)
	require.NoError(t, err)

	require.Error(t, s.OpenPath("/gone"))
	assert.Equal(t, "/d", s.Path)
}

func TestDeleteLastEntry(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	s, err := New(dir, fileops.NewLister(true, nil), 10)
	require.NoError(t, err)
	s.Select(2)
	victim := s.Entries[2].Name

	require.True(t, s.ArmDelete())
	require.NoError(t, s.ConfirmDelete())

	assert.False(t, s.DeletePending)
	assert.Len(t, s.Entries, 2)
	assert.Equal(t, 1, s.Selected)
	assertInvariants(t, s)
	assert.False(t, fileops.Exists(filepath.Join(dir, victim)))
}

func TestDeleteDirectoryRecursively(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tree", "deep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree", "deep", "f"), nil, 0644))

	s, err := New(dir, fileops.NewLister(true, nil), 10)
	require.NoError(t, err)

	s.ArmDelete()
	require.NoError(t, s.ConfirmDelete())
	assert.Empty(t, s.Entries)
	assertInvariants(t, s)
}

func TestCancelDelete(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep"), nil, 0644))

	s, err := New(dir, fileops.NewLister(true, nil), 10)
	require.NoError(t, err)

	s.ArmDelete()
	s.CancelDelete()
	require.NoError(t, s.ConfirmDelete())
	assert.True(t, fileops.Exists(filepath.Join(dir, "keep")))
}

func TestDeleteFailureKeepsListing(t *testing.T) {
	s, err := New("/d", fakeLister{"/d": files("ghost")}, 10)
	require.NoError(t, err)

	s.ArmDelete()
	err = s.ConfirmDelete()
	require.Error(t, err)
	assert.Equal(t, fileops.FilesystemMutation, fileops.KindOf(err))
	assert.False(t, s.DeletePending)
	assert.Len(t, s.Entries, 1)
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.txt"), nil, 0644))

	s, err := New(dir, fileops.NewLister(true, nil), 10)
	require.NoError(t, err)

	require.NoError(t, s.Rename("new.txt"))
	require.Len(t, s.Entries, 1)
	assert.Equal(t, "new.txt", s.Entries[0].Name)

	err = s.Rename("../escape")
	assert.Equal(t, fileops.InvalidInput, fileops.KindOf(err))
	assert.Equal(t, "new.txt", s.Entries[0].Name)
}

func TestToggleSortPutsDirectoriesLast(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-time.Hour)
	newer := time.Now()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "b.txt"), old, old))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "a.txt"), newer, newer))
	// Newest of all, still sorted after the files
	future := newer.Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "sub"), future, future))

	s, err := New(dir, fileops.NewLister(true, nil), 10)
	require.NoError(t, err)
	s.Select(2)

	require.NoError(t, s.ToggleSort())
	assert.True(t, s.SortByModTime)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, s.Names())
	assert.Equal(t, 0, s.Selected)

	// Sort survives relisting
	require.NoError(t, s.Reload())
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, s.Names())

	require.NoError(t, s.ToggleSort())
	assert.False(t, s.SortByModTime)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "sub"}, s.Names())
}

func TestToggleSortFailureRestoresFlag(t *testing.T) {
	lister := fakeLister{"/d": files("a")}
	s, err := New("/d", lister, 10)
	require.NoError(t, err)

	delete(lister, "/d")
	require.Error(t, s.ToggleSort())
	assert.False(t, s.SortByModTime)
}

func TestSelectName(t *testing.T) {
	s, err := New("/d", fakeLister{"/d": files("a", "b", "c")}, 2)
	require.NoError(t, err)

	assert.True(t, s.SelectName("c"))
	assert.Equal(t, 2, s.Selected)
	assert.Equal(t, "/d/c", s.FullPath())
	assertInvariants(t, s)

	assert.False(t, s.SelectName("zzz"))
	assert.Equal(t, 2, s.Selected)
}
