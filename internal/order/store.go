package order

import (
	"errors"
	"fmt"
	"sync"
)

var ErrOrderNotFound = errors.New("order not found")

// Store keeps orders in memory for the process lifetime, in creation
// order. Orders are independent snapshots; the store never mutates them.
type Store struct {
	mu     sync.RWMutex
	orders []*Order
	byID   map[string]*Order
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*Order)}
}

func (s *Store) Add(o *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	s.byID[o.ID()] = o
}

func (s *Store) Get(id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return o, nil
}

// List returns the orders in creation order. The slice is a copy.
func (s *Store) List() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
