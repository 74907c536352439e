package lexicon

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matches maps each category to its weighted match count for one input.
type Matches map[Category]int

// TotalWeight sums the weighted counts across all categories.
func (m Matches) TotalWeight() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// HasAny reports whether any category matched at all.
func (m Matches) HasAny() bool {
	for _, n := range m {
		if n > 0 {
			return true
		}
	}
	return false
}

// Matcher computes keyword extraction and weighted category counts for a
// single Lexicon. It is stateless apart from the lexicon reference and
// safe for concurrent use.
type Matcher struct {
	lex *Lexicon
}

func NewMatcher(lex *Lexicon) *Matcher {
	return &Matcher{lex: lex}
}

// ExtractKeywords returns the deduplicated, sorted set of lexicon phrases
// found in the text.
func (m *Matcher) ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	for _, cat := range Categories() {
		for _, phrase := range m.lex.Phrases(cat) {
			if ContainsPhrase(lower, phrase) {
				seen[phrase] = struct{}{}
			}
		}
	}
	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}

// CategoryMatches returns the weighted match count per category. Each
// distinct lexicon phrase contributes its weight once when present,
// regardless of how many times it occurs in the text.
func (m *Matcher) CategoryMatches(text string) Matches {
	lower := strings.ToLower(text)
	matches := make(Matches, len(Categories()))
	for _, cat := range Categories() {
		matches[cat] = 0
		for _, phrase := range m.lex.Phrases(cat) {
			if ContainsPhrase(lower, phrase) {
				matches[cat] += cat.Weight()
			}
		}
	}
	return matches
}

// ContainsPhrase reports whether phrase occurs in text on word boundaries.
// A match is rejected when it is embedded in a longer alphanumeric run, so
// "die" does not match "diet" but "want to die" matches "i want to die".
// Both arguments are expected to be lowercase.
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start <= len(text)-len(phrase); {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start
		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(phrase)) {
			return true
		}
		start = idx + 1
	}
	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
