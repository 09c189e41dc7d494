package handler

import (
	"go-business-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns product, warehouse and order counters in one payload
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetStockMovement returns daily inbound/outbound quantities for the chart.
// GET /api/v1/dashboard/stock-movement?days=7 (capped at 90)
func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	data, err := h.service.GetStockMovement(c.QueryInt("days", service.DefaultMovementDays))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"period": len(data),
		"data":   data,
	})
}
