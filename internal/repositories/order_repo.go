package repositories

import "shoplite/internal/models"

// OrderRepository defines the interface for order data access.
//
// Create assigns the next sequential order id (o-1, o-2, ...) as part of the
// insert; ids are monotonically increasing and never reused. Orders are
// create-once: there is no update or delete.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(orderID string) (*models.Order, error)
	ListByUser(username string) ([]models.Order, error)
	Count() (int64, error)
}
