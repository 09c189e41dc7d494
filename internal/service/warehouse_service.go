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

// WarehouseView is a warehouse with its shelf summary
type WarehouseView struct {
	model.Warehouse
	Summary calc.WarehouseSummary `json:"summary"`
}

// StockListing prices a warehouse's raw stock records against the current
// catalog rather than the denormalized product on each record
type StockListing struct {
	WarehouseID uint            `json:"warehouse_id"`
	Stocks      []model.Stock   `json:"stocks"`
	TotalStock  int             `json:"total_stock"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

type WarehouseService interface {
	CreateWarehouse(req *model.Warehouse, actor Actor) error
	UpdateWarehouse(id uint, req *model.Warehouse, actor Actor) (*model.Warehouse, error)
	DeleteWarehouse(id uint, actor Actor) error
	GetAllWarehouses() ([]WarehouseView, error)
	GetWarehouse(id uint) (*WarehouseView, error)
	GetWarehouseStats() (*calc.WarehouseStats, error)
	GetWarehouseStocks(id uint) (*StockListing, error)
	SetStock(warehouseID, productID uint, quantity int, actor Actor) (*model.Stock, error)
	GetMovements(warehouseID uint, limit int) ([]model.StockMovement, error)
}

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	movementRepo  repository.MovementRepository
	hub           ws.Publisher
}

func NewWarehouseService(wRepo repository.WarehouseRepository, pRepo repository.ProductRepository, mRepo repository.MovementRepository, hub ws.Publisher) WarehouseService {
	return &warehouseService{
		warehouseRepo: wRepo,
		productRepo:   pRepo,
		movementRepo:  mRepo,
		hub:           hub,
	}
}

func (s *warehouseService) CreateWarehouse(req *model.Warehouse, actor Actor) error {
	if err := validator.FirstError(req); err != nil {
		return err
	}
	if existing, err := s.warehouseRepo.FindByName(req.Name); err == nil && existing != nil {
		return ErrDuplicateName
	}

	req.Stocks = nil
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID
	if err := s.warehouseRepo.Create(req); err != nil {
		return fmt.Errorf("failed to create warehouse: %w", duplicate(err, ErrDuplicateName))
	}
	return nil
}

func (s *warehouseService) UpdateWarehouse(id uint, req *model.Warehouse, actor Actor) (*model.Warehouse, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	existing, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrWarehouseNotFound)
	}
	if req.Name != existing.Name {
		if other, err := s.warehouseRepo.FindByName(req.Name); err == nil && other != nil && other.ID != id {
			return nil, ErrDuplicateName
		}
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.UpdatedBy = actor.ID
	if err := s.warehouseRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update warehouse: %w", duplicate(err, ErrDuplicateName))
	}
	return existing, nil
}

func (s *warehouseService) DeleteWarehouse(id uint, actor Actor) error {
	if _, err := s.warehouseRepo.FindByID(id); err != nil {
		return notFound(err, ErrWarehouseNotFound)
	}
	if err := s.warehouseRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete warehouse: %w", err)
	}

	s.hub.Publish(ws.Event{
		Type:    ws.EventStockUpdate,
		Action:  "warehouse_deleted",
		Data:    map[string]interface{}{"id": id},
		User:    &actor,
		Message: fmt.Sprintf("%s deleted a warehouse", actor.Name),
	})
	return nil
}

func (s *warehouseService) GetAllWarehouses() ([]WarehouseView, error) {
	warehouses, err := s.warehouseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]WarehouseView, len(warehouses))
	for i, w := range warehouses {
		views[i] = WarehouseView{Warehouse: w, Summary: calc.SummarizeWarehouse(w)}
	}
	return views, nil
}

func (s *warehouseService) GetWarehouse(id uint) (*WarehouseView, error) {
	w, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrWarehouseNotFound)
	}
	return &WarehouseView{Warehouse: *w, Summary: calc.SummarizeWarehouse(*w)}, nil
}

func (s *warehouseService) GetWarehouseStats() (*calc.WarehouseStats, error) {
	warehouses, err := s.warehouseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	stats := calc.WarehouseFleetStats(warehouses)
	return &stats, nil
}

// GetWarehouseStocks loads the stock list and the catalog independently; a
// record whose product has been deleted in between is valued at zero.
func (s *warehouseService) GetWarehouseStocks(id uint) (*StockListing, error) {
	if _, err := s.warehouseRepo.FindByID(id); err != nil {
		return nil, notFound(err, ErrWarehouseNotFound)
	}
	stocks, err := s.warehouseRepo.FindStocks(id)
	if err != nil {
		return nil, err
	}
	catalog, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &StockListing{
		WarehouseID: id,
		Stocks:      stocks,
		TotalStock:  calc.TotalStock(stocks),
		TotalValue:  calc.TotalValue(stocks, calc.CatalogPriceLookup(catalog)),
	}, nil
}

func (s *warehouseService) SetStock(warehouseID, productID uint, quantity int, actor Actor) (*model.Stock, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	warehouse, err := s.warehouseRepo.FindByID(warehouseID)
	if err != nil {
		return nil, notFound(err, ErrWarehouseNotFound)
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}

	stock, oldQuantity, err := s.warehouseRepo.UpsertStock(warehouseID, productID, quantity, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to set stock: %w", err)
	}

	s.hub.Publish(ws.Event{
		Type:   ws.EventStockUpdate,
		Action: "stock_set",
		Data: map[string]interface{}{
			"warehouse_id": warehouseID,
			"product_id":   productID,
			"old_quantity": oldQuantity,
			"new_quantity": quantity,
		},
		User:    &actor,
		Message: fmt.Sprintf("%s set '%s' to %d units in '%s'", actor.Name, product.Name, quantity, warehouse.Name),
	})

	// Re-read the product so its summary sees the new quantity across warehouses
	refreshed, err := s.productRepo.FindByID(productID)
	if err != nil {
		return stock, nil
	}
	summary := calc.ProductStockSummary(*refreshed)
	if calc.IsLowStock(quantity) || summary.IsLowStock {
		s.hub.Publish(ws.Event{
			Type:   ws.EventLowStockAlert,
			Action: "stock_set",
			Data: map[string]interface{}{
				"warehouse_id":   warehouseID,
				"product_id":     productID,
				"shelf_quantity": quantity,
				"shelf_low":      calc.IsLowStock(quantity),
				"total_quantity": summary.TotalQuantity,
				"supply_low":     summary.IsLowStock,
				"threshold":      calc.LowStockThreshold,
			},
			User:    &actor,
			Message: fmt.Sprintf("'%s' is running low", product.Name),
		})
	}
	return stock, nil
}

func (s *warehouseService) GetMovements(warehouseID uint, limit int) ([]model.StockMovement, error) {
	if _, err := s.warehouseRepo.FindByID(warehouseID); err != nil {
		return nil, notFound(err, ErrWarehouseNotFound)
	}
	return s.movementRepo.FindByWarehouse(warehouseID, limit)
}
