package handler

import (
	"testing"

	"go-business-ws/internal/model"
	"go-business-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubWarehouseService struct {
	service.WarehouseService
	calls   int
	lastQty int
	err     error
}

func (s *stubWarehouseService) SetStock(warehouseID, productID uint, quantity int, actor service.Actor) (*model.Stock, error) {
	s.calls++
	s.lastQty = quantity
	if s.err != nil {
		return nil, s.err
	}
	return &model.Stock{WarehouseID: warehouseID, ProductID: productID, Quantity: quantity}, nil
}

func newWarehouseApp(svc service.WarehouseService) *fiber.App {
	h := NewWarehouseHandler(svc)
	app := fiber.New()
	app.Put("/warehouses/:id/stocks", h.SetStock)
	return app
}

func TestSetStock_Handler(t *testing.T) {
	stub := &stubWarehouseService{}
	app := newWarehouseApp(stub)

	status, body := doJSON(t, app, "PUT", "/warehouses/2/stocks", `{"product_id":1,"quantity":0}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "Stock updated", body["message"])
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, 0, stub.lastQty)
}

func TestSetStock_HandlerRejects(t *testing.T) {
	stub := &stubWarehouseService{}
	app := newWarehouseApp(stub)

	status, _ := doJSON(t, app, "PUT", "/warehouses/2/stocks", `{"product_id":1}`)
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "PUT", "/warehouses/x/stocks", `{"product_id":1,"quantity":3}`)
	assert.Equal(t, 400, status)
	assert.Zero(t, stub.calls)

	stub.err = service.ErrInvalidQuantity
	status, _ = doJSON(t, app, "PUT", "/warehouses/2/stocks", `{"product_id":1,"quantity":-4}`)
	assert.Equal(t, 400, status)

	stub.err = service.ErrWarehouseNotFound
	status, _ = doJSON(t, app, "PUT", "/warehouses/9/stocks", `{"product_id":1,"quantity":4}`)
	assert.Equal(t, 404, status)
}
