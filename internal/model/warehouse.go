package model

type Warehouse struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_warehouses_live_name,where:deleted_at IS NULL" json:"name" validate:"required"`
	Address string `gorm:"type:text" json:"address"`

	Stocks []Stock `json:"stocks,omitempty" validate:"-"`
}

// Stock is the quantity of one product held at one warehouse.
// Product is preloaded when a warehouse is read with its stocks, giving the
// warehouse view denormalized product data (code, name, price).
type Stock struct {
	BaseModel
	ProductID   uint       `gorm:"not null;uniqueIndex:idx_stock_product_warehouse" json:"product_id" validate:"required"`
	WarehouseID uint       `gorm:"not null;uniqueIndex:idx_stock_product_warehouse" json:"warehouse_id" validate:"required"`
	Quantity    int        `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Product     *Product   `json:"product,omitempty" validate:"-"`
	Warehouse   *Warehouse `json:"warehouse,omitempty" validate:"-"`
}
