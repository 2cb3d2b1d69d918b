package repositories

import (
	"fmt"
	"sync"

	"shoplite/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
// Sequence allocation and insertion share one write lock, so concurrent
// creates always get distinct ids. The slice keeps insertion order for
// per-user listing.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	byID   map[string]int
	seq    int64
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		byID: make(map[string]int),
		seq:  1,
	}
}

// Create stores a new order under the next sequential id.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.Seq = r.seq
	order.OrderID = fmt.Sprintf("o-%d", r.seq)
	r.seq++
	r.byID[order.OrderID] = len(r.orders)
	r.orders = append(r.orders, *order)
	return nil
}

// GetByID returns a copy of the order with the given id, whoever owns it.
// Ownership is the service's concern, not the store's.
func (r *MemoryOrderRepository) GetByID(orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	order := r.orders[i]
	return &order, nil
}

// ListByUser returns the user's orders in insertion order.
func (r *MemoryOrderRepository) ListByUser(username string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range r.orders {
		if o.User == username {
			out = append(out, o)
		}
	}
	return out, nil
}

// Count returns the number of stored orders.
func (r *MemoryOrderRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}
