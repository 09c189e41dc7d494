package repository

import (
	"go-business-ws/internal/model"

	"gorm.io/gorm"
)

// Unique indexes created before soft-deleted rows were excluded from them.
// They keep a deleted product code, warehouse name or customer email reserved.
var legacyUniqueIndexes = []struct {
	model interface{}
	name  string
}{
	{&model.Product{}, "idx_products_code"},
	{&model.Warehouse{}, "idx_warehouses_name"},
	{&model.Customer{}, "idx_customers_email"},
}

// Migrate brings the schema up to date
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Product{},
		&model.Warehouse{},
		&model.Stock{},
		&model.StockMovement{},
		&model.Order{},
		&model.OrderLineItem{},
	); err != nil {
		return err
	}

	m := db.Migrator()
	for _, idx := range legacyUniqueIndexes {
		if m.HasIndex(idx.model, idx.name) {
			if err := m.DropIndex(idx.model, idx.name); err != nil {
				return err
			}
		}
	}
	return nil
}
