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

// ProductView is a catalog entry with its derived stock figures
type ProductView struct {
	model.Product
	StockSummary calc.StockSummary `json:"stock_summary"`
	StockValue   decimal.Decimal   `json:"stock_value"`
}

func newProductView(p model.Product) ProductView {
	return ProductView{
		Product:      p,
		StockSummary: calc.ProductStockSummary(p),
		StockValue:   calc.ProductValue(p),
	}
}

type InventoryService interface {
	CreateProduct(req *model.Product, actor Actor) error
	UpdateProduct(id uint, req *model.Product, actor Actor) (*model.Product, error)
	DeleteProduct(id uint, actor Actor) error
	GetAllProducts() ([]ProductView, error)
	GetProduct(id uint) (*ProductView, error)
	GetProductStats() (*calc.ProductStats, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	hub         ws.Publisher
}

func NewInventoryService(pRepo repository.ProductRepository, hub ws.Publisher) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		hub:         hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, actor Actor) error {
	// 1. Validasi Struct Dasar
	if err := validator.FirstError(req); err != nil {
		return err
	}

	// 2. Cek Duplikasi Code
	if existing, err := s.productRepo.FindByCode(req.Code); err == nil && existing != nil {
		return ErrDuplicateCode
	}

	// 3. Stock is managed per warehouse, never through the product payload
	req.Stocks = nil
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.productRepo.Create(req); err != nil {
		return fmt.Errorf("failed to create product: %w", duplicate(err, ErrDuplicateCode))
	}

	s.hub.Publish(ws.Event{
		Type:    ws.EventStockUpdate,
		Action:  "product_created",
		Data:    map[string]interface{}{"id": req.ID, "code": req.Code, "name": req.Name, "price": req.Price},
		User:    &actor,
		Message: fmt.Sprintf("%s created product '%s'", actor.Name, req.Name),
	})
	return nil
}

func (s *inventoryService) UpdateProduct(id uint, req *model.Product, actor Actor) (*model.Product, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}

	if req.Code != existing.Code {
		if other, err := s.productRepo.FindByCode(req.Code); err == nil && other != nil && other.ID != id {
			return nil, ErrDuplicateCode
		}
	}

	oldPrice := existing.Price
	existing.Code = req.Code
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Category = req.Category
	existing.UpdatedBy = actor.ID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", duplicate(err, ErrDuplicateCode))
	}

	s.hub.Publish(ws.Event{
		Type:   ws.EventStockUpdate,
		Action: "product_updated",
		Data: map[string]interface{}{
			"id":        existing.ID,
			"code":      existing.Code,
			"name":      existing.Name,
			"old_price": oldPrice,
			"new_price": existing.Price,
		},
		User:    &actor,
		Message: fmt.Sprintf("%s updated product '%s'", actor.Name, existing.Name),
	})
	return existing, nil
}

func (s *inventoryService) DeleteProduct(id uint, actor Actor) error {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return notFound(err, ErrProductNotFound)
	}
	if err := s.productRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.hub.Publish(ws.Event{
		Type:    ws.EventStockUpdate,
		Action:  "product_deleted",
		Data:    map[string]interface{}{"id": id, "code": existing.Code},
		User:    &actor,
		Message: fmt.Sprintf("%s deleted product '%s'", actor.Name, existing.Name),
	})
	return nil
}

func (s *inventoryService) GetAllProducts() ([]ProductView, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = newProductView(p)
	}
	return views, nil
}

func (s *inventoryService) GetProduct(id uint) (*ProductView, error) {
	p, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	view := newProductView(*p)
	return &view, nil
}

func (s *inventoryService) GetProductStats() (*calc.ProductStats, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	stats := calc.ProductFleetStats(products)
	return &stats, nil
}
