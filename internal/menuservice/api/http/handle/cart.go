package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"smart-menu/internal/menuservice/app/services"
	"smart-menu/internal/menuservice/domain/dto"
	"smart-menu/internal/mylogger"
)

type CartHandler struct {
	menuService *services.MenuService
	mylog       mylogger.Logger
}

func NewCartHandler(menuService *services.MenuService, mylog mylogger.Logger) *CartHandler {
	return &CartHandler{
		menuService: menuService,
		mylog:       mylog,
	}
}

// requestID takes the caller's X-Request-ID or generates one.
func requestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return "req-" + uuid.NewString()
}

// CreateCart registers a new empty cart and returns its id and summary.
func (ch *CartHandler) CreateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := ch.menuService.CreateCart()
		summary, err := ch.menuService.Cart(cartID)
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusCreated, dto.FromCartSummary(cartID, summary))
	}
}

// GetCart returns entries, applied combos and totals in one consistent
// snapshot.
func (ch *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := r.PathValue("cart_id")
		summary, err := ch.menuService.Cart(cartID)
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusOK, dto.FromCartSummary(cartID, summary))
	}
}

// AddItem adds a catalog item to the cart.
func (ch *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := r.PathValue("cart_id")
		mylog := ch.mylog.Action("cart_add_item").With("request_id", requestID(r), "cart_id", cartID)

		var req dto.AddItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("Invalid JSON payload", err)
			jsonError(w, http.StatusBadRequest, errors.New("invalid JSON payload"))
			return
		}

		summary, err := ch.menuService.AddItem(cartID, req.ItemID, req.Quantity)
		if err != nil {
			mylog.Error("Failed to add item", err)
			serviceError(w, err)
			return
		}
		mylog.Debug("Item added", "item_id", req.ItemID, "quantity", req.Quantity)
		jsonResponse(w, http.StatusOK, dto.FromCartSummary(cartID, summary))
	}
}

// UpdateQuantity sets a new quantity; zero or less removes the entry.
func (ch *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := r.PathValue("cart_id")
		itemID := r.PathValue("item_id")
		mylog := ch.mylog.Action("cart_update_quantity").With("request_id", requestID(r), "cart_id", cartID)

		var req dto.UpdateQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("Invalid JSON payload", err)
			jsonError(w, http.StatusBadRequest, errors.New("invalid JSON payload"))
			return
		}

		summary, err := ch.menuService.UpdateQuantity(cartID, itemID, req.Quantity)
		if err != nil {
			mylog.Error("Failed to update quantity", err)
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusOK, dto.FromCartSummary(cartID, summary))
	}
}

// RemoveItem drops an entry from the cart.
func (ch *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := r.PathValue("cart_id")
		itemID := r.PathValue("item_id")

		summary, err := ch.menuService.RemoveItem(cartID, itemID)
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusOK, dto.FromCartSummary(cartID, summary))
	}
}

// ClearCart empties the cart.
func (ch *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := r.PathValue("cart_id")

		summary, err := ch.menuService.ClearCart(cartID)
		if err != nil {
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusOK, dto.FromCartSummary(cartID, summary))
	}
}

// Checkout turns the cart into a pending order.
func (ch *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := r.PathValue("cart_id")
		mylog := ch.mylog.Action("checkout_requested").With("request_id", requestID(r), "cart_id", cartID)

		var req dto.CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Error("Invalid JSON payload", err)
			jsonError(w, http.StatusBadRequest, errors.New("invalid JSON payload"))
			return
		}

		o, err := ch.menuService.Checkout(r.Context(), cartID, req)
		if err != nil {
			mylog.Error("Checkout failed", err)
			serviceError(w, err)
			return
		}
		jsonResponse(w, http.StatusCreated, dto.FromOrder(o))
	}
}
