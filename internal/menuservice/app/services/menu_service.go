package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"smart-menu/internal/cart"
	"smart-menu/internal/menu"
	"smart-menu/internal/menuservice/app/core"
	"smart-menu/internal/menuservice/domain/dto"
	"smart-menu/internal/mylogger"
	"smart-menu/internal/order"
)

// MenuService ties the recommendation engine, the cart registry and the
// order store together behind the operations the HTTP layer exposes.
type MenuService struct {
	catalog  *menu.Catalog
	engine   *menu.Engine
	carts    *cart.Registry
	orders   *order.Store
	notifier core.INotifier
	mylog    mylogger.Logger
}

func NewMenuService(data menu.Data, notifier core.INotifier, mylog mylogger.Logger) *MenuService {
	return &MenuService{
		catalog:  data.Catalog,
		engine:   menu.NewEngine(data.Catalog, data.Synonyms, data.Combos),
		carts:    cart.NewRegistry(data.Combos),
		orders:   order.NewStore(),
		notifier: notifier,
		mylog:    mylog,
	}
}

// Menu returns the full catalog in menu order.
func (s *MenuService) Menu() []menu.Item {
	return s.catalog.All()
}

// Recommend ranks menu items for the free-text query.
func (s *MenuService) Recommend(query string) menu.Recommendation {
	return s.engine.Recommend(query)
}

// CreateCart registers a new empty cart.
func (s *MenuService) CreateCart() string {
	id, _ := s.carts.Create()
	s.mylog.Action("cart_created").Debug("New cart registered", "cart_id", id)
	return id
}

// Cart returns a consistent snapshot of the cart.
func (s *MenuService) Cart(cartID string) (cart.Summary, error) {
	c, err := s.carts.Get(cartID)
	if err != nil {
		return cart.Summary{}, err
	}
	return c.Summary(), nil
}

// AddItem puts quantity units of a catalog item into the cart.
func (s *MenuService) AddItem(cartID, itemID string, quantity int) (cart.Summary, error) {
	c, err := s.carts.Get(cartID)
	if err != nil {
		return cart.Summary{}, err
	}
	item, err := s.catalog.ByID(itemID)
	if err != nil {
		return cart.Summary{}, err
	}
	if err := c.AddItem(item, quantity); err != nil {
		return cart.Summary{}, err
	}
	return c.Summary(), nil
}

// UpdateQuantity changes an entry's quantity; zero or less removes it.
func (s *MenuService) UpdateQuantity(cartID, itemID string, quantity int) (cart.Summary, error) {
	c, err := s.carts.Get(cartID)
	if err != nil {
		return cart.Summary{}, err
	}
	if err := c.UpdateQuantity(itemID, quantity); err != nil {
		return cart.Summary{}, err
	}
	return c.Summary(), nil
}

// RemoveItem drops an entry from the cart.
func (s *MenuService) RemoveItem(cartID, itemID string) (cart.Summary, error) {
	c, err := s.carts.Get(cartID)
	if err != nil {
		return cart.Summary{}, err
	}
	if err := c.RemoveItem(itemID); err != nil {
		return cart.Summary{}, err
	}
	return c.Summary(), nil
}

// ClearCart empties the cart.
func (s *MenuService) ClearCart(cartID string) (cart.Summary, error) {
	c, err := s.carts.Get(cartID)
	if err != nil {
		return cart.Summary{}, err
	}
	c.Clear()
	return c.Summary(), nil
}

// Checkout snapshots the cart into a new pending order, clears the cart
// and notifies the seller side. The notification is best-effort: the
// order is already committed when it is published.
func (s *MenuService) Checkout(ctx context.Context, cartID string, req dto.CheckoutRequest) (*order.Order, error) {
	mylog := s.mylog.Action("checkout").With("cart_id", cartID)

	if err := s.validateCheckout(req); err != nil {
		mylog.Error("Invalid checkout request", err)
		return nil, err
	}

	c, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}

	o, err := order.Checkout(c, order.Customer{
		Name:    req.CustomerName,
		Phone:   req.PhoneNumber,
		Address: req.DeliveryAddress,
		Notes:   req.SpecialNotes,
	})
	if err != nil {
		mylog.Error("Checkout rejected", err)
		return nil, err
	}
	s.orders.Add(o)
	mylog.Info("Order created", "order_id", o.ID(), "total", o.Total())

	msg := dto.OrderCreatedMessage{
		OrderID:      o.ID(),
		CustomerName: req.CustomerName,
		Total:        o.Total(),
		ItemCount:    len(o.Entries()),
		CreatedAt:    o.CreatedAt(),
	}
	if err := s.notifier.OrderCreated(ctx, msg); err != nil {
		mylog.Action("notify_failed").Warn("Failed to publish order-created notification", "order_id", o.ID(), "error", err.Error())
	}

	return o, nil
}

// Orders lists all orders in creation order.
func (s *MenuService) Orders() []*order.Order {
	return s.orders.List()
}

// Order looks an order up by id.
func (s *MenuService) Order(orderID string) (*order.Order, error) {
	return s.orders.Get(orderID)
}

// AdvanceStatus moves an order along its lifecycle and publishes the
// status change.
func (s *MenuService) AdvanceStatus(ctx context.Context, orderID, rawStatus string) (*order.Order, error) {
	mylog := s.mylog.Action("advance_status").With("order_id", orderID)

	next, err := order.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	o, err := s.orders.Get(orderID)
	if err != nil {
		return nil, err
	}

	prev, err := o.AdvanceStatus(next)
	if err != nil {
		mylog.Error("Status transition rejected", err)
		return nil, err
	}
	mylog.Info("Order status changed", "old_status", string(prev), "new_status", string(next))

	msg := dto.StatusUpdateMessage{
		OrderID:   orderID,
		OldStatus: string(prev),
		NewStatus: string(next),
		ChangedAt: time.Now().UTC(),
	}
	if err := s.notifier.StatusUpdated(ctx, msg); err != nil {
		mylog.Action("notify_failed").Warn("Failed to publish status notification", "error", err.Error())
	}

	return o, nil
}

func (s *MenuService) validateCheckout(req dto.CheckoutRequest) error {
	if req.CustomerName == "" {
		return fmt.Errorf("customer_name: %w", core.ErrFieldIsEmpty)
	}
	if n := utf8.RuneCountInString(req.CustomerName); n < core.MinCustomerNameLen || n > core.MaxCustomerNameLen {
		return fmt.Errorf("customer_name must be between %d and %d characters", core.MinCustomerNameLen, core.MaxCustomerNameLen)
	}
	if req.PhoneNumber == "" {
		return fmt.Errorf("phone_number: %w", core.ErrFieldIsEmpty)
	}
	if req.DeliveryAddress == "" {
		return fmt.Errorf("delivery_address: %w", core.ErrFieldIsEmpty)
	}
	if utf8.RuneCountInString(req.SpecialNotes) > core.MaxNotesLen {
		return fmt.Errorf("special_notes must be at most %d characters", core.MaxNotesLen)
	}
	return nil
}
