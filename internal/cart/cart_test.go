package cart

import (
	"errors"
	"reflect"
	"testing"

	"smart-menu/internal/menu"
)

// fixture: three items and two offers sharing item A, so that greedy
// allocation order is observable.
//
//	A 10000, B 5000, C 8000
//	A+B at 20%: original 15000, combo 12000, savings 3000
//	A+C at 10%: original 18000, combo 16200, savings 1800
type fixture struct {
	a, b, c menu.Item
	combos  *menu.ComboCatalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	mk := func(id string, price int) menu.Item {
		it, err := menu.NewItem(id, "Item "+id, price, menu.CategoryFood, "tag-"+id)
		if err != nil {
			t.Fatalf("NewItem(%s): %v", id, err)
		}
		return it
	}
	a, b, c := mk("A", 10000), mk("B", 5000), mk("C", 8000)

	ab, err := menu.NewComboOffer(a, b, 0.20)
	if err != nil {
		t.Fatal(err)
	}
	ac, err := menu.NewComboOffer(a, c, 0.10)
	if err != nil {
		t.Fatal(err)
	}
	combos, err := menu.NewComboCatalog([]menu.ComboOffer{ab, ac})
	if err != nil {
		t.Fatal(err)
	}
	return fixture{a: a, b: b, c: c, combos: combos}
}

func appliedIDs(applied []AppliedCombo) map[string]int {
	out := make(map[string]int, len(applied))
	for _, a := range applied {
		out[a.Offer.ID] = a.TimesApplied
	}
	return out
}

func checkTotals(t *testing.T, c *Cart) {
	t.Helper()
	s := c.Summary()
	if s.Total != s.Subtotal-s.Discount {
		t.Fatalf("total %d != subtotal %d - discount %d", s.Total, s.Subtotal, s.Discount)
	}
}

func TestAllocationLeavesUnpairedUnits(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	// 3x A and 2x B: the A+B offer applies min(3,2)=2 times, one unit
	// of A stays unapplied.
	if err := c.AddItem(f.a, 3); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.b, 2); err != nil {
		t.Fatal(err)
	}

	applied := c.AppliedCombos()
	if len(applied) != 1 {
		t.Fatalf("applied combos = %d, want 1", len(applied))
	}
	if applied[0].Offer.ID != "A-B" || applied[0].TimesApplied != 2 {
		t.Fatalf("applied = %s x%d, want A-B x2", applied[0].Offer.ID, applied[0].TimesApplied)
	}
	if applied[0].TotalSavings != 6000 {
		t.Errorf("total savings = %d, want 6000", applied[0].TotalSavings)
	}

	if got := c.Subtotal(); got != 40000 {
		t.Errorf("subtotal = %d, want 40000", got)
	}
	if got := c.Total(); got != 34000 {
		t.Errorf("total = %d, want 34000", got)
	}
	checkTotals(t, c)
}

func TestAllocationNeverDoubleCountsUnits(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	// One of each: A+B saves more, so it wins A's only unit; A+C must
	// not also claim it.
	for _, it := range []menu.Item{f.a, f.b, f.c} {
		if err := c.AddItem(it, 1); err != nil {
			t.Fatal(err)
		}
	}

	got := appliedIDs(c.AppliedCombos())
	want := map[string]int{"A-B": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("applied = %v, want %v", got, want)
	}

	// With a second A both offers fit.
	if err := c.UpdateQuantity("A", 2); err != nil {
		t.Fatal(err)
	}
	got = appliedIDs(c.AppliedCombos())
	want = map[string]int{"A-B": 1, "A-C": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("applied = %v, want %v", got, want)
	}

	// Conservation: paired units never exceed the units present.
	quantities := map[string]int{}
	for _, e := range c.Entries() {
		quantities[e.Item.ID] = e.Quantity
	}
	used := map[string]int{}
	for _, a := range c.AppliedCombos() {
		used[a.Offer.Item1.ID] += a.TimesApplied
		used[a.Offer.Item2.ID] += a.TimesApplied
	}
	for id, u := range used {
		if u > quantities[id] {
			t.Errorf("item %s: used %d > quantity %d", id, u, quantities[id])
		}
	}
	checkTotals(t, c)
}

func TestAllocationStableOrderOnEqualSavings(t *testing.T) {
	mk := func(id string, price int) menu.Item {
		it, _ := menu.NewItem(id, id, price, menu.CategoryFood)
		return it
	}
	a, b, c, d := mk("A", 10000), mk("B", 10000), mk("C", 10000), mk("D", 10000)

	// Same prices and discount: equal savings. Catalog order decides.
	ab, _ := menu.NewComboOffer(a, b, 0.20)
	cd, _ := menu.NewComboOffer(c, d, 0.20)
	combos, err := menu.NewComboCatalog([]menu.ComboOffer{ab, cd})
	if err != nil {
		t.Fatal(err)
	}

	cart := New(combos)
	for _, it := range []menu.Item{a, b, c, d} {
		if err := cart.AddItem(it, 1); err != nil {
			t.Fatal(err)
		}
	}

	applied := cart.AppliedCombos()
	if len(applied) != 2 {
		t.Fatalf("applied = %d combos, want 2", len(applied))
	}
	if applied[0].Offer.ID != "A-B" || applied[1].Offer.ID != "C-D" {
		t.Errorf("order = [%s %s], want combo-catalog order [A-B C-D]",
			applied[0].Offer.ID, applied[1].Offer.ID)
	}
}

func TestFewerThanTwoDistinctItemsClearsCombos(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	if err := c.AddItem(f.a, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.b, 1); err != nil {
		t.Fatal(err)
	}
	if len(c.AppliedCombos()) != 1 {
		t.Fatal("expected one applied combo")
	}

	if err := c.RemoveItem("B"); err != nil {
		t.Fatal(err)
	}
	if got := c.AppliedCombos(); len(got) != 0 {
		t.Errorf("applied combos after removal = %v, want none", got)
	}
}

func TestAddItemMergesQuantities(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	if err := c.AddItem(f.a, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.a, 2); err != nil {
		t.Fatal(err)
	}

	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (merged)", len(entries))
	}
	if entries[0].Quantity != 3 || entries[0].ItemTotal != 30000 {
		t.Errorf("entry = qty %d total %d, want qty 3 total 30000", entries[0].Quantity, entries[0].ItemTotal)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	for _, qty := range []int{0, -1} {
		if err := c.AddItem(f.a, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("AddItem qty %d: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
	if !c.IsEmpty() {
		t.Error("rejected add must not touch the cart")
	}
}

func TestUpdateQuantityRoutesToRemoval(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	if err := c.AddItem(f.a, 2); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateQuantity("A", 0); err != nil {
		t.Fatal(err)
	}
	if !c.IsEmpty() {
		t.Error("quantity 0 must remove the entry")
	}

	if err := c.UpdateQuantity("A", 1); !errors.Is(err, ErrItemNotInCart) {
		t.Errorf("update of absent item: err = %v, want ErrItemNotInCart", err)
	}
	if err := c.RemoveItem("A"); !errors.Is(err, ErrItemNotInCart) {
		t.Errorf("remove of absent item: err = %v, want ErrItemNotInCart", err)
	}
}

func TestTotalsAcrossMutationSequence(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	steps := []func() error{
		func() error { return c.AddItem(f.a, 2) },
		func() error { return c.AddItem(f.b, 1) },
		func() error { return c.AddItem(f.c, 3) },
		func() error { return c.UpdateQuantity("B", 4) },
		func() error { return c.RemoveItem("C") },
		func() error { return c.UpdateQuantity("A", 1) },
		func() error { return c.AddItem(f.c, 1) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		checkTotals(t, c)
	}

	// Final state: 1x A, 4x B, 1x C. A+B applies once (A exhausted).
	s := c.Summary()
	if s.Subtotal != 10000+20000+8000 {
		t.Errorf("subtotal = %d, want 38000", s.Subtotal)
	}
	if s.Discount != 3000 {
		t.Errorf("discount = %d, want 3000", s.Discount)
	}
	if s.ItemCount != 6 {
		t.Errorf("item count = %d, want 6", s.ItemCount)
	}
}

func TestRecomputeCombosIsIdempotent(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	if err := c.AddItem(f.a, 2); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.b, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.c, 1); err != nil {
		t.Fatal(err)
	}

	first := c.AppliedCombos()
	c.RecomputeCombos()
	c.RecomputeCombos()
	if got := c.AppliedCombos(); !reflect.DeepEqual(got, first) {
		t.Errorf("recompute changed allocation: %v vs %v", got, first)
	}
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	if err := c.AddItem(f.a, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.b, 1); err != nil {
		t.Fatal(err)
	}
	c.Clear()

	if !c.IsEmpty() || c.ItemCount() != 0 || c.Total() != 0 {
		t.Error("clear left state behind")
	}
	if len(c.AppliedCombos()) != 0 {
		t.Error("clear left applied combos behind")
	}
}

func TestCheckoutSnapshot(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	if _, err := c.CheckoutSnapshot(); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("empty cart: err = %v, want ErrEmptyCart", err)
	}

	if err := c.AddItem(f.a, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.b, 1); err != nil {
		t.Fatal(err)
	}

	s, err := c.CheckoutSnapshot()
	if err != nil {
		t.Fatalf("CheckoutSnapshot: %v", err)
	}
	if s.Subtotal != 15000 || s.Discount != 3000 || s.Total != 12000 {
		t.Errorf("snapshot = subtotal %d discount %d total %d", s.Subtotal, s.Discount, s.Total)
	}
	if !c.IsEmpty() {
		t.Error("checkout must clear the cart")
	}

	// The snapshot is independent of later cart use.
	if err := c.AddItem(f.c, 5); err != nil {
		t.Fatal(err)
	}
	if len(s.Entries) != 2 || s.Entries[0].Item.ID != "A" {
		t.Error("snapshot entries changed after cart reuse")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	f := newFixture(t)
	c := New(f.combos)

	if err := c.AddItem(f.a, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(f.b, 1); err != nil {
		t.Fatal(err)
	}

	entries := c.Entries()
	entries[0].Quantity = 99
	if got := c.Entries()[0].Quantity; got != 1 {
		t.Errorf("internal entry mutated through accessor copy: %d", got)
	}

	applied := c.AppliedCombos()
	applied[0].TimesApplied = 99
	if got := c.AppliedCombos()[0].TimesApplied; got != 1 {
		t.Errorf("internal combo mutated through accessor copy: %d", got)
	}
}

func TestRegistry(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry(f.combos)

	id, created := r.Create()
	if id == "" {
		t.Fatal("empty cart id")
	}
	got, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != created {
		t.Error("registry returned a different cart")
	}

	if _, err := r.Get("nope"); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("unknown cart: err = %v, want ErrCartNotFound", err)
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}
}
