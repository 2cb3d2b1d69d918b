package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"shoplite/internal/errs"
	"shoplite/internal/metrics"
	"shoplite/internal/models"
	"shoplite/internal/repositories"
	"shoplite/pkg/logger"
	"shoplite/pkg/rabbitmq"
)

// ItemRequest is one requested order line: which product and how many.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// OrderService prices, validates and stores orders, and enforces per-owner
// visibility on reads.
type OrderService struct {
	orders   repositories.OrderRepository
	products repositories.ProductRepository
	log      *logger.Logger
	stats    *metrics.Metrics
	events   rabbitmq.Publisher
}

// NewOrderService creates a new OrderService. events may be nil to disable
// event publishing.
func NewOrderService(orders repositories.OrderRepository, products repositories.ProductRepository, log *logger.Logger, stats *metrics.Metrics, events rabbitmq.Publisher) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		log:      log.Sub("order_service"),
		stats:    stats,
		events:   events,
	}
}

// Products returns the catalog.
func (s *OrderService) Products() ([]models.Product, error) {
	return s.products.GetAll()
}

// CreateOrder validates the items in input order, prices each line with
// round-half-up at two decimals, and stores the order under the next
// sequential id. Nothing is stored when any item is invalid.
//
// The running total accumulates line totals (unit price times quantity,
// rounded per line) and is rounded once more at the end.
func (s *OrderService) CreateOrder(username string, items []ItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, errs.Validation("items required")
	}

	lineItems := make([]models.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		product, err := s.products.GetByID(it.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, errs.Validation(invalidItemMessage(it))
			}
			return nil, fmt.Errorf("look up product %s: %w", it.ProductID, err)
		}
		if it.Qty <= 0 {
			return nil, errs.Validation(invalidItemMessage(it))
		}

		unitPrice := product.Price.Round(2)
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(it.Qty))).Round(2)
		total = total.Add(lineTotal)

		lineItems = append(lineItems, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: unitPrice,
			Qty:       it.Qty,
			LineTotal: lineTotal,
		})
	}

	order := models.Order{
		User:  username,
		Items: lineItems,
		Total: total.Round(2),
	}
	if err := s.orders.Create(&order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	s.log.Info().Str("order_id", order.OrderID).Str("username", username).
		Str("total", order.Total.StringFixed(2)).Msg("order created")
	if s.stats != nil {
		s.stats.OrderCreations.Inc()
	}
	s.publish("order.created", order)

	return &order, nil
}

// GetOrder returns the order only to its owner. A missing order and someone
// else's order produce the same not-found error, so existence never leaks.
func (s *OrderService) GetOrder(username, orderID string) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errs.NotFound("not found")
		}
		return nil, fmt.Errorf("look up order %s: %w", orderID, err)
	}
	if order.User != username {
		return nil, errs.NotFound("not found")
	}
	return order, nil
}

// ListOrders returns the caller's own orders in creation order.
func (s *OrderService) ListOrders(username string) ([]models.Order, error) {
	return s.orders.ListByUser(username)
}

func invalidItemMessage(it ItemRequest) string {
	return fmt.Sprintf("invalid item {product_id: %s, qty: %d}", it.ProductID, it.Qty)
}

func (s *OrderService) publish(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(eventType, payload); err != nil {
		s.log.Warn().Err(err).Str("event", eventType).Msg("event publish failed")
	}
}
