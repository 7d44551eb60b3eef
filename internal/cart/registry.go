package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"smart-menu/internal/menu"
)

var ErrCartNotFound = errors.New("cart not found")

// Registry owns the live carts of the process, keyed by generated id.
// State is in-memory only for the process lifetime.
type Registry struct {
	mu     sync.RWMutex
	combos *menu.ComboCatalog
	carts  map[string]*Cart
}

func NewRegistry(combos *menu.ComboCatalog) *Registry {
	return &Registry{
		combos: combos,
		carts:  make(map[string]*Cart),
	}
}

// Create registers a new empty cart and returns its id.
func (r *Registry) Create() (string, *Cart) {
	id := uuid.NewString()
	c := New(r.combos)

	r.mu.Lock()
	r.carts[id] = c
	r.mu.Unlock()
	return id, c
}

// Get looks up a cart by id.
func (r *Registry) Get(id string) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCartNotFound, id)
	}
	return c, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
