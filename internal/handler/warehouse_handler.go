package handler

import (
	"go-business-ws/internal/model"
	"go-business-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type WarehouseHandler struct {
	service service.WarehouseService
}

func NewWarehouseHandler(s service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{service: s}
}

// SetStockRequest represents the stock upsert body
type SetStockRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateWarehouse(&warehouse, getActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": warehouse})
}

func (h *WarehouseHandler) UpdateWarehouse(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "warehouse")
	}

	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateWarehouse(id, &warehouse, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Warehouse updated", "data": updated})
}

func (h *WarehouseHandler) DeleteWarehouse(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "warehouse")
	}

	if err := h.service.DeleteWarehouse(id, getActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Warehouse deleted"})
}

func (h *WarehouseHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.service.GetAllWarehouses()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(warehouses)
}

func (h *WarehouseHandler) GetWarehouse(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "warehouse")
	}

	warehouse, err := h.service.GetWarehouse(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(warehouse)
}

// GetWarehouseStats returns totals over every warehouse
// GET /api/v1/warehouses/stats
func (h *WarehouseHandler) GetWarehouseStats(c *fiber.Ctx) error {
	stats, err := h.service.GetWarehouseStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetStocks lists a warehouse's stock valued at current catalog prices
// GET /api/v1/warehouses/:id/stocks
func (h *WarehouseHandler) GetStocks(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "warehouse")
	}

	listing, err := h.service.GetWarehouseStocks(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

// SetStock sets the quantity of one product in a warehouse
// PUT /api/v1/warehouses/:id/stocks
func (h *WarehouseHandler) SetStock(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "warehouse")
	}

	var req SetStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ProductID == 0 || req.Quantity == nil {
		return c.Status(400).JSON(fiber.Map{"error": "product_id and quantity are required"})
	}

	stock, err := h.service.SetStock(id, req.ProductID, *req.Quantity, getActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock updated", "data": stock})
}

// GetMovements lists the stock ledger of a warehouse, newest first
// Query params: limit (default 50)
func (h *WarehouseHandler) GetMovements(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c, "warehouse")
	}
	limit := c.QueryInt("limit", 50)

	movements, err := h.service.GetMovements(id, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}
