package order

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-menu/internal/cart"
)

// Customer is the contact metadata captured at checkout.
type Customer struct {
	Name    string
	Phone   string
	Address string
	Notes   string
}

// Order is an immutable snapshot of a cart at checkout time. Only the
// status field may change afterwards; the cart it came from is cleared
// by checkout and the order is never re-derived from it.
type Order struct {
	id        string
	customer  Customer
	entries   []cart.Entry
	combos    []cart.AppliedCombo
	subtotal  int
	discount  int
	total     int
	createdAt time.Time

	mu     sync.Mutex
	status Status
}

// Checkout snapshots the cart into a new pending order and clears the
// cart. An empty cart yields cart.ErrEmptyCart and leaves the cart
// unmodified.
func Checkout(c *cart.Cart, customer Customer) (*Order, error) {
	snapshot, err := c.CheckoutSnapshot()
	if err != nil {
		return nil, err
	}

	return &Order{
		id:        newOrderID(),
		customer:  customer,
		entries:   snapshot.Entries,
		combos:    snapshot.AppliedCombos,
		subtotal:  snapshot.Subtotal,
		discount:  snapshot.Discount,
		total:     snapshot.Total,
		createdAt: time.Now().UTC(),
		status:    StatusPending,
	}, nil
}

func newOrderID() string {
	stamp := time.Now().UTC().Format("20060102-150405")
	return fmt.Sprintf("ORD-%s-%s", stamp, uuid.NewString()[:8])
}

func (o *Order) ID() string { return o.id }

func (o *Order) Customer() Customer { return o.customer }

func (o *Order) Subtotal() int { return o.subtotal }

func (o *Order) Discount() int { return o.discount }

func (o *Order) Total() int { return o.total }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Entries returns a copy of the snapshotted cart entries.
func (o *Order) Entries() []cart.Entry {
	out := make([]cart.Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// AppliedCombos returns a copy of the snapshotted combo allocation.
func (o *Order) AppliedCombos() []cart.AppliedCombo {
	out := make([]cart.AppliedCombo, len(o.combos))
	copy(out, o.combos)
	return out
}

func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// AdvanceStatus moves the order to next if the transition is adjacent to
// the current status, returning the previous status. Invalid requests
// are rejected with ErrInvalidTransition and leave the order unchanged.
func (o *Order) AdvanceStatus(next Status) (Status, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.status.CanTransitionTo(next) {
		return o.status, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, next)
	}
	prev := o.status
	o.status = next
	return prev, nil
}
