package model

type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// StockMovement is one change of a stock record, written in the same
// transaction as the change itself. Quantity is always positive; Type
// carries the direction.
type StockMovement struct {
	BaseModel
	WarehouseID uint         `gorm:"not null;index" json:"warehouse_id"`
	ProductID   uint         `gorm:"not null;index" json:"product_id"`
	Type        MovementType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity    int          `gorm:"not null" json:"quantity"`
	Before      int          `gorm:"not null" json:"before"`
	After       int          `gorm:"not null" json:"after"`
}

// NewStockMovement describes the change from before to after, or returns nil
// when nothing changed
func NewStockMovement(warehouseID, productID uint, before, after int) *StockMovement {
	delta := after - before
	if delta == 0 {
		return nil
	}
	m := &StockMovement{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Type:        MovementIn,
		Quantity:    delta,
		Before:      before,
		After:       after,
	}
	if delta < 0 {
		m.Type = MovementOut
		m.Quantity = -delta
	}
	return m
}
