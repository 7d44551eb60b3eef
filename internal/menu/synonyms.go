package menu

import "strings"

// SynonymTable maps alias tokens (mostly Indonesian) to canonical tags.
// It is read-only after construction.
type SynonymTable struct {
	m map[string]string
}

func NewSynonymTable(entries map[string]string) SynonymTable {
	m := make(map[string]string, len(entries))
	for alias, canonical := range entries {
		m[strings.ToLower(strings.TrimSpace(alias))] = strings.ToLower(strings.TrimSpace(canonical))
	}
	return SynonymTable{m: m}
}

// Normalize returns the canonical tag for token, or the token unchanged
// when no mapping exists.
func (t SynonymTable) Normalize(token string) string {
	if canonical, ok := t.m[token]; ok {
		return canonical
	}
	return token
}

// Has reports whether token is a known alias.
func (t SynonymTable) Has(token string) bool {
	_, ok := t.m[token]
	return ok
}

func (t SynonymTable) Len() int {
	return len(t.m)
}
