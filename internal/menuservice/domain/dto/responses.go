package dto

import (
	"time"

	"smart-menu/internal/cart"
	"smart-menu/internal/menu"
	"smart-menu/internal/order"
)

type ItemResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func FromItem(it menu.Item) ItemResponse {
	return ItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Price:    it.Price,
		Category: string(it.Category),
		Tags:     it.Tags(),
	}
}

func FromItems(items []menu.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromItem(it))
	}
	return out
}

type ComboResponse struct {
	ID            string  `json:"id"`
	Item1         string  `json:"item1"`
	Item2         string  `json:"item2"`
	Discount      float64 `json:"discount"`
	OriginalPrice int     `json:"original_price"`
	ComboPrice    int     `json:"combo_price"`
	Savings       int     `json:"savings"`
}

func FromCombo(c menu.ComboOffer) ComboResponse {
	return ComboResponse{
		ID:            c.ID,
		Item1:         c.Item1.ID,
		Item2:         c.Item2.ID,
		Discount:      c.Discount,
		OriginalPrice: c.OriginalPrice,
		ComboPrice:    c.ComboPrice,
		Savings:       c.Savings,
	}
}

func FromCombos(combos []menu.ComboOffer) []ComboResponse {
	out := make([]ComboResponse, 0, len(combos))
	for _, c := range combos {
		out = append(out, FromCombo(c))
	}
	return out
}

type RecommendationResponse struct {
	Query            string          `json:"query"`
	Items            []ItemResponse  `json:"items"`
	SuggestedCombos  []ComboResponse `json:"suggested_combos"`
	DetectedTags     []string        `json:"detected_tags"`
	DetectedCategory string          `json:"detected_category,omitempty"`
}

func FromRecommendation(rec menu.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		Query:            rec.Query,
		Items:            FromItems(rec.Items),
		SuggestedCombos:  FromCombos(rec.SuggestedCombos),
		DetectedTags:     rec.Tags,
		DetectedCategory: string(rec.Category),
	}
}

type EntryResponse struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	ItemTotal int    `json:"item_total"`
}

type AppliedComboResponse struct {
	ComboID      string `json:"combo_id"`
	TimesApplied int    `json:"times_applied"`
	TotalSavings int    `json:"total_savings"`
}

type CartResponse struct {
	CartID        string                 `json:"cart_id"`
	Entries       []EntryResponse        `json:"entries"`
	AppliedCombos []AppliedComboResponse `json:"applied_combos"`
	Subtotal      int                    `json:"subtotal"`
	Discount      int                    `json:"discount"`
	Total         int                    `json:"total"`
	ItemCount     int                    `json:"item_count"`
}

func FromCartSummary(cartID string, s cart.Summary) CartResponse {
	return CartResponse{
		CartID:        cartID,
		Entries:       fromEntries(s.Entries),
		AppliedCombos: fromApplied(s.AppliedCombos),
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Total:         s.Total,
		ItemCount:     s.ItemCount,
	}
}

func fromEntries(entries []cart.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ItemID:    e.Item.ID,
			Name:      e.Item.Name,
			Price:     e.Item.Price,
			Quantity:  e.Quantity,
			ItemTotal: e.ItemTotal,
		})
	}
	return out
}

func fromApplied(applied []cart.AppliedCombo) []AppliedComboResponse {
	out := make([]AppliedComboResponse, 0, len(applied))
	for _, a := range applied {
		out = append(out, AppliedComboResponse{
			ComboID:      a.Offer.ID,
			TimesApplied: a.TimesApplied,
			TotalSavings: a.TotalSavings,
		})
	}
	return out
}

type OrderResponse struct {
	OrderID         string                 `json:"order_id"`
	CustomerName    string                 `json:"customer_name"`
	PhoneNumber     string                 `json:"phone_number"`
	DeliveryAddress string                 `json:"delivery_address"`
	SpecialNotes    string                 `json:"special_notes,omitempty"`
	Entries         []EntryResponse        `json:"entries"`
	AppliedCombos   []AppliedComboResponse `json:"applied_combos"`
	Subtotal        int                    `json:"subtotal"`
	Discount        int                    `json:"discount"`
	Total           int                    `json:"total"`
	Status          string                 `json:"status"`
	NextStatuses    []string               `json:"next_statuses"`
	CreatedAt       time.Time              `json:"created_at"`
}

func FromOrder(o *order.Order) OrderResponse {
	status := o.Status()
	next := make([]string, 0, 2)
	for _, s := range status.Next() {
		next = append(next, string(s))
	}

	customer := o.Customer()
	return OrderResponse{
		OrderID:         o.ID(),
		CustomerName:    customer.Name,
		PhoneNumber:     customer.Phone,
		DeliveryAddress: customer.Address,
		SpecialNotes:    customer.Notes,
		Entries:         fromEntries(o.Entries()),
		AppliedCombos:   fromApplied(o.AppliedCombos()),
		Subtotal:        o.Subtotal(),
		Discount:        o.Discount(),
		Total:           o.Total(),
		Status:          string(status),
		NextStatuses:    next,
		CreatedAt:       o.CreatedAt(),
	}
}
