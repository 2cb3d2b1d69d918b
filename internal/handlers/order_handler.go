package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shoplite/internal/middleware"
	"shoplite/internal/services"
	"shoplite/internal/token"
	"shoplite/pkg/logger"
)

// OrderHandler handles HTTP requests for the order service.
type OrderHandler struct {
	service  *services.OrderService
	codec    *token.Codec
	validate *validator.Validate
	log      *logger.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, codec *token.Codec, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		codec:    codec,
		validate: validator.New(),
		log:      log.Sub("order_handler"),
	}
}

// RegisterRoutes registers the order service routes. The catalog is public;
// everything touching orders requires a verified token.
func (h *OrderHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/products", h.HandleProducts)

	auth := middleware.AuthRequired(h.codec)
	app.Post("/create_order", auth, h.HandleCreateOrder)
	app.Get("/orders/:id", auth, h.HandleGetOrder)
	app.Get("/orders", auth, h.HandleListOrders)
}

// HandleProducts returns the catalog.
func (h *OrderHandler) HandleProducts(c *fiber.Ctx) error {
	products, err := h.service.Products()
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(products)
}

// CreateOrderRequest represents the request body for order placement.
type CreateOrderRequest struct {
	Items []services.ItemRequest `json:"items" validate:"required,min=1"`
}

// HandleCreateOrder validates and prices the requested items and stores the
// order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	// Malformed bodies fall through to the empty-items contract error.
	_ = c.BodyParser(&req)

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "items required",
		})
	}

	order, err := h.service.CreateOrder(middleware.Username(c), req.Items)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrder returns one of the authenticated user's orders by id.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(middleware.Username(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(order)
}

// HandleListOrders returns all of the authenticated user's orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(middleware.Username(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(orders)
}
