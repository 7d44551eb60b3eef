package menu

import "fmt"

// Catalog is the immutable set of menu items, kept in construction order.
type Catalog struct {
	items []Item
	byID  map[string]int
	tags  map[string]struct{}
}

// NewCatalog builds a catalog from items. Construction order is preserved
// and duplicate ids are rejected.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, len(items)),
		byID:  make(map[string]int, len(items)),
		tags:  make(map[string]struct{}),
	}
	copy(c.items, items)

	for i, it := range c.items {
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id: %s", it.ID)
		}
		c.byID[it.ID] = i
		for t := range it.tags {
			c.tags[t] = struct{}{}
		}
	}
	return c, nil
}

// ByID looks up an item. Unknown ids are a collaborator fault, reported
// as ErrItemNotFound.
func (c *Catalog) ByID(id string) (Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return c.items[i], nil
}

// All returns the items in construction order. The slice is a copy.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// HasTag reports whether any catalog item carries the tag.
func (c *Catalog) HasTag(tag string) bool {
	_, ok := c.tags[tag]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}
