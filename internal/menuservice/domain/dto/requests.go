package dto

type AddItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	SpecialNotes    string `json:"special_notes,omitempty"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status"`
}
