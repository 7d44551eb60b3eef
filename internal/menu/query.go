package menu

import "strings"

// categoryKeywords are tested against the raw lowered query text, in
// order; the first matching group wins. Each group carries the English
// keyword plus Indonesian synonyms.
var categoryKeywords = []struct {
	category Category
	words    []string
}{
	{CategoryFood, []string{"food", "makanan", "makan", "lapar"}},
	{CategoryDrink, []string{"drink", "minuman", "minum", "haus"}},
	{CategoryDessert, []string{"dessert", "pencuci mulut", "manis"}},
}

func isQueryDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '+', '&':
		return true
	}
	return false
}

// ParseQuery tokenizes free text into the set of canonical tags it
// mentions. Tokens pass through the synonym table first; tokens that are
// neither aliases nor known catalog tags are dropped silently, since free
// text is expected to contain noise words.
func ParseQuery(catalog *Catalog, synonyms SynonymTable, text string) map[string]struct{} {
	tags := make(map[string]struct{})
	for _, word := range strings.FieldsFunc(strings.ToLower(text), isQueryDelimiter) {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if synonyms.Has(word) {
			tags[synonyms.Normalize(word)] = struct{}{}
		} else if catalog.HasTag(word) {
			tags[word] = struct{}{}
		}
	}
	return tags
}

// DetectCategory scans the raw lowered text for category keywords.
// At most one category is detected; ok is false when none matches.
func DetectCategory(text string) (Category, bool) {
	lowered := strings.ToLower(text)
	for _, group := range categoryKeywords {
		for _, w := range group.words {
			if strings.Contains(lowered, w) {
				return group.category, true
			}
		}
	}
	return "", false
}
