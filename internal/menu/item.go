package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// Category is the closed set of menu sections.
type Category string

const (
	CategoryFood    Category = "food"
	CategoryDrink   Category = "drink"
	CategoryDessert Category = "dessert"
)

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryFood:
		return CategoryFood, nil
	case CategoryDrink:
		return CategoryDrink, nil
	case CategoryDessert:
		return CategoryDessert, nil
	default:
		return "", fmt.Errorf("unknown category: %q", raw)
	}
}

// Item is a single menu entry. Price is in the smallest currency unit.
// Items are immutable after construction; the tag set is not reachable
// for mutation from outside.
type Item struct {
	ID       string
	Name     string
	Price    int
	Category Category

	tags map[string]struct{}
}

// NewItem builds an Item. Tags are lowercased and deduplicated.
func NewItem(id, name string, price int, category Category, tags ...string) (Item, error) {
	if id == "" {
		return Item{}, errors.New("item id must not be empty")
	}
	if name == "" {
		return Item{}, fmt.Errorf("item %s: name must not be empty", id)
	}
	if price < 0 {
		return Item{}, fmt.Errorf("item %s: price must not be negative: %d", id, price)
	}

	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		tagSet[t] = struct{}{}
	}

	return Item{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
		tags:     tagSet,
	}, nil
}

// HasTag reports whether the item carries the given tag.
func (it Item) HasTag(tag string) bool {
	_, ok := it.tags[tag]
	return ok
}

// HasAllTags reports whether the item's tag set is a superset of required.
func (it Item) HasAllTags(required map[string]struct{}) bool {
	for tag := range required {
		if !it.HasTag(tag) {
			return false
		}
	}
	return true
}

// MatchScore awards 10 points per query tag the item also carries.
func (it Item) MatchScore(queryTags map[string]struct{}) int {
	score := 0
	for tag := range queryTags {
		if it.HasTag(tag) {
			score += 10
		}
	}
	return score
}

// Tags returns a sorted copy of the item's tags.
func (it Item) Tags() []string {
	out := make([]string, 0, len(it.tags))
	for t := range it.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
