package handler

import (
	"go-business-ws/internal/model"
	"go-business-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// UpdateStatusRequest represents the status change body
type UpdateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// PreviewRequest carries the line items of an order being edited
type PreviewRequest struct {
	Items []model.OrderLineItem `json:"items"`
}

// SyncLineItemRequest carries the edited line item and the newly selected product
type SyncLineItemRequest struct {
	Item      model.OrderLineItem `json:"item"`
	ProductID uint                `json:"product_id"`
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateOrder(&order, getActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "order")
	}

	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateOrder(id, &order, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order updated", "data": updated})
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "order")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateStatus(id, req.Status, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order status updated", "data": updated})
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "order")
	}

	if err := h.service.DeleteOrder(id, getActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "order")
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// PreviewOrder totals unsaved line items
// POST /api/v1/orders/preview
func (h *OrderHandler) PreviewOrder(c *fiber.Ctx) error {
	var req PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	return c.JSON(h.service.PreviewOrder(req.Items))
}

// SyncLineItem refreshes a line item after a product selection
// POST /api/v1/orders/line-items/sync
func (h *OrderHandler) SyncLineItem(c *fiber.Ctx) error {
	var req SyncLineItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.SyncLineItem(req.Item, req.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
