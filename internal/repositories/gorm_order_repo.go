package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shoplite/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository. The
// external order id derives from the autoincrement row sequence, which keeps
// o-<n> monotonic without a separate counter.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// Create inserts the order and its items, then stamps the o-<n> id.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		order.OrderID = fmt.Sprintf("o-%d", order.Seq)
		if err := tx.Model(&models.Order{}).Where("seq = ?", order.Seq).
			Update("order_id", order.OrderID).Error; err != nil {
			return fmt.Errorf("assign order id: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an order with its items, whoever owns it.
func (r *GORMOrderRepository) GetByID(orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListByUser returns the user's orders in creation order.
func (r *GORMOrderRepository) ListByUser(username string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.db.Preload("Items").Order("seq").
		Find(&orders, "owner = ?", username).Error; err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", username, err)
	}
	return orders, nil
}

// Count returns the number of stored orders.
func (r *GORMOrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
