package menu

import (
	"errors"
	"fmt"
	"math"
)

// ComboOffer bundles two distinct items at a percentage discount.
// Derived prices are computed once at construction:
// ComboPrice = floor(OriginalPrice * (1 - Discount)).
type ComboOffer struct {
	ID       string
	Item1    Item
	Item2    Item
	Discount float64

	OriginalPrice int
	ComboPrice    int
	Savings       int
}

// NewComboOffer derives the combo prices. The pair identity string is
// ordered as constructed, but matching treats the pair as unordered.
func NewComboOffer(item1, item2 Item, discount float64) (ComboOffer, error) {
	if item1.ID == item2.ID {
		return ComboOffer{}, fmt.Errorf("combo items must be distinct: %s", item1.ID)
	}
	if discount <= 0 || discount >= 1 {
		return ComboOffer{}, fmt.Errorf("combo discount must be in (0, 1): %v", discount)
	}

	original := item1.Price + item2.Price
	comboPrice := int(math.Floor(float64(original) * (1 - discount)))

	return ComboOffer{
		ID:            item1.ID + "-" + item2.ID,
		Item1:         item1,
		Item2:         item2,
		Discount:      discount,
		OriginalPrice: original,
		ComboPrice:    comboPrice,
		Savings:       original - comboPrice,
	}, nil
}

// Contains reports whether the offer includes the item.
func (c ComboOffer) Contains(itemID string) bool {
	return c.Item1.ID == itemID || c.Item2.ID == itemID
}

// Matches reports whether the unordered pair (a, b) is this offer's pair.
func (c ComboOffer) Matches(a, b string) bool {
	return (c.Item1.ID == a && c.Item2.ID == b) || (c.Item1.ID == b && c.Item2.ID == a)
}

// ComboCatalog is the fixed set of combo offers in construction order.
type ComboCatalog struct {
	offers []ComboOffer
}

func NewComboCatalog(offers []ComboOffer) (*ComboCatalog, error) {
	seen := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		if _, dup := seen[o.ID]; dup {
			return nil, errors.New("duplicate combo offer: " + o.ID)
		}
		seen[o.ID] = struct{}{}
	}
	cc := &ComboCatalog{offers: make([]ComboOffer, len(offers))}
	copy(cc.offers, offers)
	return cc, nil
}

// All returns the offers in construction order. The slice is a copy.
func (cc *ComboCatalog) All() []ComboOffer {
	out := make([]ComboOffer, len(cc.offers))
	copy(out, cc.offers)
	return out
}

func (cc *ComboCatalog) Len() int {
	return len(cc.offers)
}
