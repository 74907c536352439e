package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Category is one of the fixed emotional categories tracked by the lexicon.
type Category string

const (
	CategoryAnxiety    Category = "Anxiety"
	CategoryStress     Category = "Stress"
	CategoryDepression Category = "Depression"
	CategoryCritical   Category = "Critical Distress"
)

// Categories returns all categories in canonical order.
func Categories() []Category {
	return []Category{CategoryAnxiety, CategoryStress, CategoryDepression, CategoryCritical}
}

// CriticalWeight is the match weight carried by Critical Distress phrases.
// All other categories contribute weight 1 per matched phrase.
const CriticalWeight = 10

// Weight returns the match weight for a single phrase of this category.
func (c Category) Weight() int {
	if c == CategoryCritical {
		return CriticalWeight
	}
	return 1
}

// Lexicon is an immutable mapping of category to diagnostic phrases.
// It is loaded once at startup and safe for concurrent reads.
type Lexicon struct {
	phrases map[Category][]string
}

// New builds a Lexicon from the given entries. Every category must be
// present with at least one phrase; phrases are lowercased and trimmed.
func New(entries map[Category][]string) (*Lexicon, error) {
	phrases := make(map[Category][]string, len(entries))
	for _, cat := range Categories() {
		list, ok := entries[cat]
		if !ok || len(list) == 0 {
			return nil, fmt.Errorf("lexicon: category %q is missing or empty", cat)
		}
		normalized := make([]string, 0, len(list))
		for _, p := range list {
			p = strings.ToLower(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			normalized = append(normalized, p)
		}
		if len(normalized) == 0 {
			return nil, fmt.Errorf("lexicon: category %q has no usable phrases", cat)
		}
		phrases[cat] = normalized
	}
	for cat := range entries {
		if _, ok := phrases[cat]; !ok {
			return nil, fmt.Errorf("lexicon: unknown category %q", cat)
		}
	}
	return &Lexicon{phrases: phrases}, nil
}

// Load reads a lexicon document from a JSON file. A missing or malformed
// file is an initialization failure and should halt startup.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	var raw map[Category][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("lexicon: parse %s: %w", path, err)
	}
	lex, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("lexicon: validate %s: %w", path, err)
	}
	return lex, nil
}

// Phrases returns the phrase list for a category. The returned slice must
// not be mutated.
func (l *Lexicon) Phrases(cat Category) []string {
	return l.phrases[cat]
}
