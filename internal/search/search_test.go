package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstringMatchNames(t *testing.T) {
	names := []string{
		"file1.txt",
		"file2.txt",
		"document.pdf",
		"readme.md",
		"config.json",
	}

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{"exact match", "file1.txt", 1},
		{"substring match", "file", 2}, // matches "file1" and "file2"
		{"partial match", "doc", 1},
		{"case insensitive", "FILE", 2}, // should match file1 and file2
		{"no match", "xyz", 0},
		{"empty query", "", 0}, // empty query returns no results
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := SubstringMatchNames(tt.query, names)
			if len(results) != tt.expectedCount {
				t.Errorf("SubstringMatchNames(%s) returned %d results, expected %d", tt.query, len(results), tt.expectedCount)
			}
		})
	}
}

func TestSubstringMatchRunePositions(t *testing.T) {
	results := SubstringMatchNames("é", []string{"café.txt"})
	require.Len(t, results, 1)
	assert.Equal(t, []int{3}, results[0].MatchedIndexes)
}

func TestStartCaseInsensitive(t *testing.T) {
	s := New()
	ok := s.Start("RE", []string{"Readme.md", "main.cpp", "report.txt"})

	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, s.Matches)
	assert.Equal(t, 0, s.Current)

	idx, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "/RE (1/2)", s.Status())
}

func TestStartNoMatchClears(t *testing.T) {
	s := New()
	require.True(t, s.Start("a", []string{"a", "b"}))

	assert.False(t, s.Start("zzz", []string{"a", "b"}))
	assert.Empty(t, s.Term)
	assert.Nil(t, s.Matches)
	assert.Equal(t, -1, s.Current)

	assert.False(t, s.Start("", []string{"a"}))
	assert.False(t, s.Active())
}

func TestNavigateWraps(t *testing.T) {
	s := New()
	names := []string{"x1", "y", "x2", "x3"}
	require.True(t, s.Start("x", names))

	// n pressed N times returns to the start
	for i := 0; i < len(s.Matches); i++ {
		s.Navigate(1)
	}
	assert.Equal(t, 0, s.Current)

	idx, ok := s.Navigate(-1)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 2, s.Current)

	idx, _ = s.Navigate(1)
	assert.Equal(t, 0, idx)
}

func TestNavigateInactive(t *testing.T) {
	s := New()
	_, ok := s.Navigate(1)
	assert.False(t, ok)
}

func TestExit(t *testing.T) {
	s := New()
	require.True(t, s.Start("a", []string{"a"}))
	s.Exit()
	assert.Equal(t, New(), s)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Readme.md", "rEaD"))
	assert.False(t, Matches("main.cpp", "re"))
	assert.False(t, Matches("anything", ""))
}

func TestNotFoundMessage(t *testing.T) {
	names := []string{"config.yaml", "main.go"}

	assert.Equal(t, "Pattern not found: cfgyml (closest: config.yaml)", NotFoundMessage("cfgyml", names))
	assert.Equal(t, "Pattern not found: qqq", NotFoundMessage("qqq", names))
}
