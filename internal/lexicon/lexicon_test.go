package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() map[Category][]string {
	return map[Category][]string{
		CategoryAnxiety:    {"anxious", "panic", "racing thoughts"},
		CategoryStress:     {"stressed", "deadline", "overwhelmed"},
		CategoryDepression: {"hopeless", "worthless", "empty"},
		CategoryCritical:   {"want to die", "kill myself", "end it all"},
	}
}

func TestNewRequiresAllCategories(t *testing.T) {
	entries := testEntries()
	delete(entries, CategoryDepression)

	_, err := New(entries)
	assert.Error(t, err)
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	entries := testEntries()
	entries[Category("Euphoria")] = []string{"great"}

	_, err := New(entries)
	assert.Error(t, err)
}

func TestNewNormalizesPhrases(t *testing.T) {
	entries := testEntries()
	entries[CategoryStress] = []string{"  Deadline  ", "STRESSED"}

	lex, err := New(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{"deadline", "stressed"}, lex.Phrases(CategoryStress))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	content := `{
		"Anxiety": ["anxious"],
		"Stress": ["stressed"],
		"Depression": ["hopeless"],
		"Critical Distress": ["want to die"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"want to die"}, lex.Phrases(CategoryCritical))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/lexicon.json")
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestContainsPhraseWordBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   bool
	}{
		{"exact word", "i want to die", "die", true},
		{"embedded in longer word", "i am on a diet", "die", false},
		{"multi word phrase", "i really want to die today", "want to die", true},
		{"phrase split by punctuation", "die-hard fan", "die", true},
		{"prefix of longer word", "stressedout", "stressed", false},
		{"at start", "panic attack coming", "panic", true},
		{"at end", "full of panic", "panic", true},
		{"absent", "a lovely day", "panic", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPhrase(tt.text, tt.phrase))
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	lex, err := New(testEntries())
	require.NoError(t, err)
	m := NewMatcher(lex)

	keywords := m.ExtractKeywords("I feel Stressed and ANXIOUS about the deadline, so stressed")
	assert.Equal(t, []string{"anxious", "deadline", "stressed"}, keywords)
}

func TestCategoryMatchesWeights(t *testing.T) {
	lex, err := New(testEntries())
	require.NoError(t, err)
	m := NewMatcher(lex)

	matches := m.CategoryMatches("I want to die, I will end it all, I feel hopeless")
	assert.Equal(t, 2*CriticalWeight, matches[CategoryCritical])
	assert.Equal(t, 1, matches[CategoryDepression])
	assert.Equal(t, 0, matches[CategoryAnxiety])
	assert.Equal(t, 0, matches[CategoryStress])
	assert.Equal(t, 21, matches.TotalWeight())
	assert.True(t, matches.HasAny())
}

func TestCategoryMatchesPresenceBased(t *testing.T) {
	lex, err := New(testEntries())
	require.NoError(t, err)
	m := NewMatcher(lex)

	// A phrase found twice still contributes its weight once.
	matches := m.CategoryMatches("stressed stressed stressed")
	assert.Equal(t, 1, matches[CategoryStress])
}
