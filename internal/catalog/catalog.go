package catalog

import (
	"sync"
	"time"

	"github.com/helpershop/helpershop/internal/ids"
	"github.com/helpershop/helpershop/internal/money"
)

// Product is immutable once added: the catalog exposes no update or
// delete, and finalized orders never write back to it.
type Product struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	PriceCents money.Cents `json:"price_cents"`
	Quantity   int         `json:"quantity"`
	ImageURI   string      `json:"image_uri"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Store holds the process-wide product catalog, append-only and
// insertion-ordered. Owned by the composition root for the life of the
// process; nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	ids      ids.Generator
	products []Product
}

func NewStore(gen ids.Generator) *Store {
	return &Store{ids: gen}
}

// Add appends a product with a freshly generated id and returns it.
// Inputs are assumed validated (see Intake); Add itself cannot fail.
func (s *Store) Add(name string, price money.Cents, quantity int, imageURI string) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:         s.ids.NewID(),
		Name:       name,
		PriceCents: price,
		Quantity:   quantity,
		ImageURI:   imageURI,
		CreatedAt:  time.Now().UTC(),
	}
	s.products = append(s.products, p)
	return p
}

// List returns a snapshot of the catalog in insertion order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindByName returns the first product with the given name. Drafts
// resolve line items by the name shown in the product picker.
func (s *Store) FindByName(name string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
