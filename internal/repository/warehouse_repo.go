package repository

import (
	"errors"

	"go-business-ws/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WarehouseRepository interface {
	Create(warehouse *model.Warehouse) error
	FindAll() ([]model.Warehouse, error)
	FindByID(id uint) (*model.Warehouse, error)
	FindByName(name string) (*model.Warehouse, error)
	Update(warehouse *model.Warehouse) error
	Delete(id uint) error
	FindStocks(warehouseID uint) ([]model.Stock, error)
	UpsertStock(warehouseID, productID uint, quantity int, updatedBy string) (*model.Stock, int, error)
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Omit("Stocks").Create(warehouse).Error
}

// FindAll preloads stock records together with their product, so warehouse
// summaries can price each shelf from the embedded product data
func (r *warehouseRepo) FindAll() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := r.db.Preload("Stocks").Preload("Stocks.Product").Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) FindByID(id uint) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.Preload("Stocks").Preload("Stocks.Product").First(&warehouse, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) FindByName(name string) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.First(&warehouse, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Omit("Stocks").Save(warehouse).Error
}

func (r *warehouseRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("warehouse_id = ?", id).Delete(&model.Stock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Warehouse{}, "id = ?", id).Error
	})
}

// FindStocks returns the raw stock records of a warehouse without product data
func (r *warehouseRepo) FindStocks(warehouseID uint) ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Where("warehouse_id = ?", warehouseID).Order("product_id ASC").Find(&stocks).Error
	return stocks, err
}

// UpsertStock sets the quantity of a (product, warehouse) pair, creating the
// record on first use, and returns the previous quantity. The existing row is
// locked for the duration of the transaction, and the change is written to the
// movement ledger in the same transaction.
func (r *warehouseRepo) UpsertStock(warehouseID, productID uint, quantity int, updatedBy string) (*model.Stock, int, error) {
	var stock model.Stock
	previous := 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
			First(&stock).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			stock = model.Stock{
				WarehouseID: warehouseID,
				ProductID:   productID,
				Quantity:    quantity,
			}
			stock.CreatedBy = updatedBy
			stock.UpdatedBy = updatedBy
			if err := tx.Create(&stock).Error; err != nil {
				return err
			}
			return recordMovement(tx, warehouseID, productID, 0, quantity, updatedBy)
		}
		if err != nil {
			return err
		}

		previous = stock.Quantity
		if err := tx.Model(&stock).Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_by": updatedBy,
		}).Error; err != nil {
			return err
		}
		stock.Quantity = quantity
		return recordMovement(tx, warehouseID, productID, previous, quantity, updatedBy)
	})
	if err != nil {
		return nil, 0, err
	}
	return &stock, previous, nil
}

func recordMovement(tx *gorm.DB, warehouseID, productID uint, before, after int, by string) error {
	movement := model.NewStockMovement(warehouseID, productID, before, after)
	if movement == nil {
		return nil
	}
	movement.CreatedBy = by
	movement.UpdatedBy = by
	return tx.Create(movement).Error
}
