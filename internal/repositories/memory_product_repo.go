package repositories

import (
	"sync"

	"shoplite/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// The catalog is seeded once at startup; listing preserves seed order.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	byID     map[string]int
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		byID: make(map[string]int),
	}
}

// Seed loads the catalog entries, replacing any previous seed.
func (r *MemoryProductRepository) Seed(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make([]models.Product, len(products))
	copy(r.products, products)
	r.byID = make(map[string]int, len(products))
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return nil
}

// GetAll returns the catalog in seed order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a copy of the product with the given id.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	product := r.products[i]
	return &product, nil
}
