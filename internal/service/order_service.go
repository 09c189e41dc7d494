package service

import (
	"fmt"

	"go-business-ws/internal/calc"
	"go-business-ws/internal/model"
	"go-business-ws/internal/repository"
	"go-business-ws/internal/ws"
	"go-business-ws/pkg/validator"

	"github.com/shopspring/decimal"
)

// PricedLineItem is a line item with its computed line total
type PricedLineItem struct {
	model.OrderLineItem
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderPreview is the client-side total of an order being edited
type OrderPreview struct {
	Items []PricedLineItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

type OrderService interface {
	CreateOrder(req *model.Order, actor Actor) error
	UpdateOrder(id uint, req *model.Order, actor Actor) (*model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus, actor Actor) (*model.Order, error)
	DeleteOrder(id uint, actor Actor) error
	GetAllOrders() ([]model.Order, error)
	GetOrder(id uint) (*model.Order, error)
	PreviewOrder(items []model.OrderLineItem) OrderPreview
	SyncLineItem(item model.OrderLineItem, productID uint) (model.OrderLineItem, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	hub          ws.Publisher
}

func NewOrderService(oRepo repository.OrderRepository, pRepo repository.ProductRepository, cRepo repository.CustomerRepository, hub ws.Publisher) OrderService {
	return &orderService{
		orderRepo:    oRepo,
		productRepo:  pRepo,
		customerRepo: cRepo,
		hub:          hub,
	}
}

// snapshotItems refreshes code and name of every line item from the current
// catalog, keeping the caller's quantity and negotiated price. Every product
// must still exist.
func (s *orderService) snapshotItems(items []model.OrderLineItem) ([]model.OrderLineItem, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	catalog, err := s.productRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.OrderLineItem, len(items))
	for i, item := range items {
		if _, ok := calc.FindProduct(catalog, item.ProductID); !ok {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownProduct, item.ProductID)
		}
		synced := calc.SyncLineItem(item, item.ProductID, catalog)
		synced.Price = item.Price
		synced.ID = 0
		synced.OrderID = 0
		out[i] = synced
	}
	return out, nil
}

func (s *orderService) prepare(req *model.Order) error {
	if req.Status == "" {
		req.Status = model.OrderPending
	}
	if err := validator.FirstError(req); err != nil {
		return err
	}
	if _, err := s.customerRepo.FindByID(req.CustomerID); err != nil {
		return notFound(err, ErrUnknownCustomer)
	}

	items, err := s.snapshotItems(req.Items)
	if err != nil {
		return err
	}
	req.Items = items
	req.Total = model.NewAmount(calc.CalculateTotal(items))
	return nil
}

func (s *orderService) CreateOrder(req *model.Order, actor Actor) error {
	req.ID = 0
	if err := s.prepare(req); err != nil {
		return err
	}
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.orderRepo.Create(req); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	s.publish("order_created", req, actor)
	return nil
}

func (s *orderService) UpdateOrder(id uint, req *model.Order, actor Actor) (*model.Order, error) {
	existing, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	if existing.Status == model.OrderCompleted || existing.Status == model.OrderCancelled {
		return nil, ErrOrderClosed
	}

	if req.Status == "" {
		req.Status = existing.Status
	}
	if err := s.prepare(req); err != nil {
		return nil, err
	}

	existing.CustomerID = req.CustomerID
	existing.Customer = nil
	existing.Status = req.Status
	existing.Notes = req.Notes
	existing.Items = req.Items
	existing.Total = req.Total
	existing.UpdatedBy = actor.ID

	if err := s.orderRepo.ReplaceItems(existing); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.publish("order_updated", existing, actor)
	return existing, nil
}

func (s *orderService) UpdateStatus(id uint, status model.OrderStatus, actor Actor) (*model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	existing, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	if err := s.orderRepo.UpdateStatus(id, status, actor.ID); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	existing.Status = status
	existing.UpdatedBy = actor.ID

	s.publish("order_status_changed", existing, actor)
	return existing, nil
}

func (s *orderService) DeleteOrder(id uint, actor Actor) error {
	existing, err := s.orderRepo.FindByID(id)
	if err != nil {
		return notFound(err, ErrOrderNotFound)
	}
	if err := s.orderRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	s.publish("order_deleted", existing, actor)
	return nil
}

func (s *orderService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrder(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	return order, nil
}

// PreviewOrder totals line items exactly as they were sent, without touching
// the catalog. Nothing is persisted.
func (s *orderService) PreviewOrder(items []model.OrderLineItem) OrderPreview {
	priced := make([]PricedLineItem, len(items))
	for i, item := range items {
		priced[i] = PricedLineItem{OrderLineItem: item, LineTotal: calc.LineTotal(item)}
	}
	return OrderPreview{Items: priced, Total: calc.CalculateTotal(items)}
}

func (s *orderService) SyncLineItem(item model.OrderLineItem, productID uint) (model.OrderLineItem, error) {
	if productID == 0 {
		return calc.SyncLineItem(item, 0, nil), nil
	}
	catalog, err := s.productRepo.FindByIDs([]uint{productID})
	if err != nil {
		return item, err
	}
	return calc.SyncLineItem(item, productID, catalog), nil
}

func (s *orderService) publish(action string, order *model.Order, actor Actor) {
	s.hub.Publish(ws.Event{
		Type:   ws.EventOrderUpdate,
		Action: action,
		Data: map[string]interface{}{
			"id":          order.ID,
			"reference":   order.Reference,
			"customer_id": order.CustomerID,
			"status":      order.Status,
			"total":       order.Total,
			"items":       len(order.Items),
		},
		User:    &actor,
		Message: fmt.Sprintf("%s: %s order %s", actor.Name, action, order.Reference),
	})
}
