package menu

import (
	"sort"
)

const (
	maxRecommendedItems = 8
	maxSuggestedCombos  = 3
)

// Engine answers free-text menu queries against a fixed catalog,
// synonym table and combo catalog. It is read-only and safe to share.
type Engine struct {
	catalog  *Catalog
	synonyms SynonymTable
	combos   *ComboCatalog
}

func NewEngine(catalog *Catalog, synonyms SynonymTable, combos *ComboCatalog) *Engine {
	return &Engine{
		catalog:  catalog,
		synonyms: synonyms,
		combos:   combos,
	}
}

// Recommendation is the ranked answer to one query.
type Recommendation struct {
	Query           string
	Items           []Item
	SuggestedCombos []ComboOffer
	Tags            []string
	Category        Category // empty when no category was detected
}

// Recommend ranks catalog items for the query. Three passes are tried in
// order (exact tag superset, partial tag score, plain catalog fallback);
// the first non-empty result wins and is capped at 8 items. The
// computation is deterministic for identical inputs.
func (e *Engine) Recommend(query string) Recommendation {
	queryTags := ParseQuery(e.catalog, e.synonyms, query)
	category, _ := DetectCategory(query)

	all := e.catalog.All()

	matches := exactMatches(all, queryTags, category)
	if len(matches) == 0 {
		matches = scoredMatches(all, queryTags, category)
	}
	if len(matches) == 0 {
		matches = all
	}
	matches = truncate(matches, maxRecommendedItems)

	return Recommendation{
		Query:           query,
		Items:           matches,
		SuggestedCombos: e.suggestCombos(matches),
		Tags:            sortedTags(queryTags),
		Category:        category,
	}
}

// exactMatches keeps items whose tag set is a superset of queryTags,
// in catalog order. An empty query yields no exact matches.
func exactMatches(items []Item, queryTags map[string]struct{}, category Category) []Item {
	if len(queryTags) == 0 {
		return nil
	}
	var out []Item
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		if it.HasAllTags(queryTags) {
			out = append(out, it)
		}
	}
	return out
}

// scoredMatches ranks items by overlapping-tag score, descending. The
// sort is stable so that catalog order breaks ties deterministically.
func scoredMatches(items []Item, queryTags map[string]struct{}, category Category) []Item {
	if len(queryTags) == 0 {
		return nil
	}

	type scored struct {
		item  Item
		score int
	}
	var ranked []scored
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		if s := it.MatchScore(queryTags); s > 0 {
			ranked = append(ranked, scored{item: it, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]Item, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.item)
	}
	return out
}

// suggestCombos keeps offers whose both members were recommended,
// in combo-catalog order, capped at 3.
func (e *Engine) suggestCombos(items []Item) []ComboOffer {
	recommended := make(map[string]struct{}, len(items))
	for _, it := range items {
		recommended[it.ID] = struct{}{}
	}

	var out []ComboOffer
	for _, offer := range e.combos.All() {
		if len(out) == maxSuggestedCombos {
			break
		}
		_, ok1 := recommended[offer.Item1.ID]
		_, ok2 := recommended[offer.Item2.ID]
		if ok1 && ok2 {
			out = append(out, offer)
		}
	}
	return out
}

func truncate(items []Item, n int) []Item {
	if len(items) > n {
		items = items[:n]
	}
	return items
}

func sortedTags(tags map[string]struct{}) []string {
	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
