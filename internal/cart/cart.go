package cart

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"smart-menu/internal/menu"
)

var (
	ErrItemNotInCart   = errors.New("item not in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Entry is one (item, quantity) line. ItemTotal is recomputed on every
// quantity change.
type Entry struct {
	Item      menu.Item
	Quantity  int
	ItemTotal int
}

// AppliedCombo is a combo offer matched against current cart quantities.
// Applied combos never persist across recomputation.
type AppliedCombo struct {
	Offer        menu.ComboOffer
	TimesApplied int
	TotalSavings int
}

// Summary is a consistent snapshot of the cart taken under one lock.
type Summary struct {
	Entries       []Entry
	AppliedCombos []AppliedCombo
	Subtotal      int
	Discount      int
	Total         int
	ItemCount     int
}

// Cart holds an insertion-ordered entry list (one entry per item id) and
// the combo allocation derived from it. Every mutation recomputes the
// applied combos before the lock is released, so no caller can observe
// entries and combos in a mutually inconsistent state.
type Cart struct {
	mu      sync.Mutex
	combos  *menu.ComboCatalog
	entries []Entry
	applied []AppliedCombo
}

// New creates an empty cart bound to a shared, read-only combo catalog.
func New(combos *menu.ComboCatalog) *Cart {
	return &Cart{combos: combos}
}

// AddItem adds quantity units of item, merging with an existing entry
// for the same item id.
func (c *Cart) AddItem(item menu.Item, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.setQuantity(i, c.entries[i].Quantity+quantity)
			c.reallocate()
			return nil
		}
	}

	c.entries = append(c.entries, Entry{
		Item:      item,
		Quantity:  quantity,
		ItemTotal: item.Price * quantity,
	})
	c.reallocate()
	return nil
}

// UpdateQuantity sets the quantity for an item already in the cart.
// A quantity of zero or less removes the entry instead; quantities are
// never stored non-positive.
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(itemID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotInCart, itemID)
	}

	if quantity <= 0 {
		c.removeAt(i)
	} else {
		c.setQuantity(i, quantity)
	}
	c.reallocate()
	return nil
}

// RemoveItem removes an entry.
func (c *Cart) RemoveItem(itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(itemID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotInCart, itemID)
	}
	c.removeAt(i)
	c.reallocate()
	return nil
}

// Clear drops all entries and applied combos.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.applied = nil
}

// RecomputeCombos reruns the allocation against current quantities.
// Mutations already do this; recomputing without an intervening mutation
// yields an identical allocation.
func (c *Cart) RecomputeCombos() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reallocate()
}

// Entries returns a copy of the entry list in insertion order.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyEntries(c.entries)
}

// AppliedCombos returns a copy of the current allocation.
func (c *Cart) AppliedCombos() []AppliedCombo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyApplied(c.applied)
}

func (c *Cart) Subtotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return subtotal(c.entries)
}

func (c *Cart) Discount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return discount(c.applied)
}

func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return subtotal(c.entries) - discount(c.applied)
}

// ItemCount is the total unit count across entries.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return itemCount(c.entries)
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries) == 0
}

// Summary snapshots entries, combos and totals atomically.
func (c *Cart) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary()
}

// CheckoutSnapshot atomically captures the cart for an order and clears
// it. An empty cart is an explicit error and leaves the cart untouched.
func (c *Cart) CheckoutSnapshot() (Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		return Summary{}, ErrEmptyCart
	}
	s := c.summary()
	c.entries = nil
	c.applied = nil
	return s, nil
}

func (c *Cart) summary() Summary {
	sub := subtotal(c.entries)
	disc := discount(c.applied)
	return Summary{
		Entries:       copyEntries(c.entries),
		AppliedCombos: copyApplied(c.applied),
		Subtotal:      sub,
		Discount:      disc,
		Total:         sub - disc,
		ItemCount:     itemCount(c.entries),
	}
}

func (c *Cart) indexOf(itemID string) int {
	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) setQuantity(i, quantity int) {
	c.entries[i].Quantity = quantity
	c.entries[i].ItemTotal = c.entries[i].Item.Price * quantity
}

func (c *Cart) removeAt(i int) {
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
}

// reallocate replaces the applied-combo list from scratch. Caller holds
// the lock.
func (c *Cart) reallocate() {
	if len(c.entries) < 2 {
		c.applied = nil
		return
	}

	quantities := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		quantities[e.Item.ID] = e.Quantity
	}
	c.applied = allocateCombos(quantities, c.combos.All())
}

// allocateCombos walks the offers once, highest savings first (stable
// sort, so combo-catalog order breaks ties), and greedily applies each
// offer min(available) times. used(id) never exceeds quantity(id), so a
// single unit is never counted toward two combos. Greedy
// highest-savings-first is a heuristic, not a globally optimal bundling;
// that is intentional.
func allocateCombos(quantities map[string]int, offers []menu.ComboOffer) []AppliedCombo {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Savings > offers[j].Savings
	})

	used := make(map[string]int, len(quantities))
	var applied []AppliedCombo
	for _, offer := range offers {
		id1, id2 := offer.Item1.ID, offer.Item2.ID
		available1 := quantities[id1] - used[id1]
		available2 := quantities[id2] - used[id2]

		times := min(available1, available2)
		if times <= 0 {
			continue
		}

		applied = append(applied, AppliedCombo{
			Offer:        offer,
			TimesApplied: times,
			TotalSavings: offer.Savings * times,
		})
		used[id1] += times
		used[id2] += times
	}
	return applied
}

func subtotal(entries []Entry) int {
	sum := 0
	for _, e := range entries {
		sum += e.ItemTotal
	}
	return sum
}

func discount(applied []AppliedCombo) int {
	sum := 0
	for _, a := range applied {
		sum += a.TotalSavings
	}
	return sum
}

func itemCount(entries []Entry) int {
	count := 0
	for _, e := range entries {
		count += e.Quantity
	}
	return count
}

func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func copyApplied(applied []AppliedCombo) []AppliedCombo {
	out := make([]AppliedCombo, len(applied))
	copy(out, applied)
	return out
}
