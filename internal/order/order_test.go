package order

import (
	"errors"
	"strings"
	"testing"
	"time"

	"smart-menu/internal/cart"
	"smart-menu/internal/menu"
)

func loadedCart(t *testing.T) *cart.Cart {
	t.Helper()

	a, err := menu.NewItem("A", "Item A", 10000, menu.CategoryFood)
	if err != nil {
		t.Fatal(err)
	}
	b, err := menu.NewItem("B", "Item B", 5000, menu.CategoryDrink)
	if err != nil {
		t.Fatal(err)
	}
	combo, err := menu.NewComboOffer(a, b, 0.20)
	if err != nil {
		t.Fatal(err)
	}
	combos, err := menu.NewComboCatalog([]menu.ComboOffer{combo})
	if err != nil {
		t.Fatal(err)
	}

	c := cart.New(combos)
	if err := c.AddItem(a, 2); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(b, 1); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCheckoutSnapshotsAndClearsCart(t *testing.T) {
	c := loadedCart(t)
	customer := Customer{Name: "Budi", Phone: "0812", Address: "Jl. Merdeka 1"}

	o, err := Checkout(c, customer)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if !strings.HasPrefix(o.ID(), "ORD-") {
		t.Errorf("order id = %q, want ORD- prefix", o.ID())
	}
	if o.Status() != StatusPending {
		t.Errorf("status = %q, want pending", o.Status())
	}
	if o.Customer() != customer {
		t.Errorf("customer = %+v", o.Customer())
	}
	if o.Subtotal() != 25000 || o.Discount() != 3000 || o.Total() != 22000 {
		t.Errorf("totals = %d/%d/%d, want 25000/3000/22000", o.Subtotal(), o.Discount(), o.Total())
	}
	if time.Since(o.CreatedAt()) > time.Minute {
		t.Errorf("created at = %v, not recent", o.CreatedAt())
	}
	if !c.IsEmpty() {
		t.Error("checkout must clear the cart")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := loadedCart(t)
	c.Clear()

	if _, err := Checkout(c, Customer{Name: "Budi"}); !errors.Is(err, cart.ErrEmptyCart) {
		t.Errorf("err = %v, want cart.ErrEmptyCart", err)
	}
}

func TestOrderIsIndependentOfCartReuse(t *testing.T) {
	c := loadedCart(t)

	o, err := Checkout(c, Customer{Name: "Budi"})
	if err != nil {
		t.Fatal(err)
	}

	// Reuse the cart and mutate the returned slices; the order must not
	// change.
	extra, err := menu.NewItem("Z", "Item Z", 700, menu.CategoryDessert)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(extra, 9); err != nil {
		t.Fatal(err)
	}
	entries := o.Entries()
	entries[0].Quantity = 99
	combosOut := o.AppliedCombos()
	combosOut[0].TimesApplied = 99

	if got := o.Entries(); len(got) != 2 || got[0].Quantity != 2 {
		t.Errorf("entries changed: %+v", got)
	}
	if got := o.AppliedCombos(); len(got) != 1 || got[0].TimesApplied != 1 {
		t.Errorf("applied combos changed: %+v", got)
	}
	if o.Total() != 22000 {
		t.Errorf("total changed: %d", o.Total())
	}
}

func TestStatusLifecycle(t *testing.T) {
	c := loadedCart(t)
	o, err := Checkout(c, Customer{Name: "Budi"})
	if err != nil {
		t.Fatal(err)
	}

	sequence := []Status{StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted}
	expectPrev := StatusPending
	for _, next := range sequence {
		prev, err := o.AdvanceStatus(next)
		if err != nil {
			t.Fatalf("AdvanceStatus(%s): %v", next, err)
		}
		if prev != expectPrev {
			t.Errorf("prev = %q, want %q", prev, expectPrev)
		}
		expectPrev = next
	}
	if !o.Status().Terminal() {
		t.Error("completed must be terminal")
	}
}

func TestStatusRejectsNonAdjacentTransitions(t *testing.T) {
	c := loadedCart(t)
	o, err := Checkout(c, Customer{Name: "Budi"})
	if err != nil {
		t.Fatal(err)
	}

	// Skipping confirmed is not allowed.
	if _, err := o.AdvanceStatus(StatusPreparing); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending->preparing err = %v, want ErrInvalidTransition", err)
	}
	if o.Status() != StatusPending {
		t.Errorf("failed transition changed status to %q", o.Status())
	}

	if _, err := o.AdvanceStatus(StatusRejected); err != nil {
		t.Fatalf("pending->rejected: %v", err)
	}
	// Terminal: nothing leaves rejected.
	for _, next := range []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted} {
		if _, err := o.AdvanceStatus(next); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("rejected->%s err = %v, want ErrInvalidTransition", next, err)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{" Confirmed ", StatusConfirmed, false},
		{"REJECTED", StatusRejected, false},
		{"preparing", StatusPreparing, false},
		{"ready", StatusReady, false},
		{"completed", StatusCompleted, false},
		{"shipped", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, err=%v)", tt.raw, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestStatusNext(t *testing.T) {
	tests := []struct {
		status Status
		want   []Status
	}{
		{StatusPending, []Status{StatusConfirmed, StatusRejected}},
		{StatusConfirmed, []Status{StatusPreparing}},
		{StatusPreparing, []Status{StatusReady}},
		{StatusReady, []Status{StatusCompleted}},
		{StatusRejected, []Status{}},
		{StatusCompleted, []Status{}},
	}
	for _, tt := range tests {
		got := tt.status.Next()
		if len(got) != len(tt.want) {
			t.Errorf("%s.Next() = %v, want %v", tt.status, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s.Next() = %v, want %v", tt.status, got, tt.want)
				break
			}
		}
	}
}

func TestStore(t *testing.T) {
	s := NewStore()

	if _, err := s.Get("ORD-nope"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("empty store err = %v, want ErrOrderNotFound", err)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		o, err := Checkout(loadedCart(t), Customer{Name: "Budi"})
		if err != nil {
			t.Fatal(err)
		}
		s.Add(o)
		ids = append(ids, o.ID())
	}

	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	for _, id := range ids {
		o, err := s.Get(id)
		if err != nil {
			t.Fatalf("Get(%s): %v", id, err)
		}
		if o.ID() != id {
			t.Errorf("Get(%s) returned %s", id, o.ID())
		}
	}

	list := s.List()
	for i, o := range list {
		if o.ID() != ids[i] {
			t.Errorf("list[%d] = %s, want creation order %s", i, o.ID(), ids[i])
		}
	}
	list[0] = nil
	if s.List()[0] == nil {
		t.Error("mutating List() result corrupted the store")
	}
}
