package repository

import (
	"time"

	"go-business-ws/internal/model"

	"gorm.io/gorm"
)

type MovementRepository interface {
	FindByWarehouse(warehouseID uint, limit int) ([]model.StockMovement, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

// StockMovementData is one day of the movement chart
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

// FindByWarehouse returns the newest movements first
func (r *movementRepo) FindByWarehouse(warehouseID uint, limit int) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	q := r.db.Where("warehouse_id = ?", warehouseID).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&movements).Error
	return movements, err
}

// dayExpr renders created_at as a UTC calendar day (YYYY-MM-DD) in the
// connected dialect. SQLite's date functions already normalize to UTC.
func (r *movementRepo) dayExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "TO_CHAR(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	}
	return "STRFTIME('%Y-%m-%d', created_at)"
}

// GetStockMovement sums inbound and outbound quantities per UTC day for
// movements created in [startDate, endDate]. Days without movements are absent.
func (r *movementRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	day := r.dayExpr()

	var results []StockMovementData
	err := r.db.Model(&model.StockMovement{}).
		Select(day+" AS date, "+
			"COALESCE(SUM(CASE WHEN type = ? THEN quantity ELSE 0 END), 0) AS inbound, "+
			"COALESCE(SUM(CASE WHEN type = ? THEN quantity ELSE 0 END), 0) AS outbound",
			model.MovementIn, model.MovementOut).
		Where("created_at >= ? AND created_at <= ?", startDate.UTC(), endDate.UTC()).
		Group(day).
		Order("date ASC").
		Scan(&results).Error
	return results, err
}
