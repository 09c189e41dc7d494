package service

import (
	"time"

	"go-business-ws/internal/calc"
	"go-business-ws/internal/model"
	"go-business-ws/internal/repository"
)

const (
	DefaultMovementDays = 7
	MaxMovementDays     = 90

	dayLayout = "2006-01-02"
)

// DashboardStats untuk overview stats
type DashboardStats struct {
	Products   calc.ProductStats           `json:"products"`
	Warehouses calc.WarehouseStats         `json:"warehouses"`
	Orders     map[model.OrderStatus]int64 `json:"orders"`
}

type DashboardService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	orderRepo     repository.OrderRepository
	movementRepo  repository.MovementRepository
	now           func() time.Time
}

func NewDashboardService(pRepo repository.ProductRepository, wRepo repository.WarehouseRepository, oRepo repository.OrderRepository, mRepo repository.MovementRepository) DashboardService {
	return &dashboardService{productRepo: pRepo, warehouseRepo: wRepo, orderRepo: oRepo, movementRepo: mRepo, now: time.Now}
}

// GetStockMovement returns one point per UTC calendar day, oldest first,
// ending today. Days without movements are reported as zero so charts get a
// continuous series.
func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	if days <= 0 {
		days = DefaultMovementDays
	}
	if days > MaxMovementDays {
		days = MaxMovementDays
	}

	endDate := s.now().UTC()
	y, m, d := endDate.Date()
	startDate := time.Date(y, m, d-(days-1), 0, 0, 0, 0, time.UTC)

	rows, err := s.movementRepo.GetStockMovement(startDate, endDate)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]repository.StockMovementData, len(rows))
	for _, r := range rows {
		byDay[r.Date] = r
	}

	series := make([]repository.StockMovementData, 0, days)
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayLayout)
		point, ok := byDay[key]
		if !ok {
			point = repository.StockMovementData{Date: key}
		}
		series = append(series, point)
	}
	return series, nil
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	warehouses, err := s.warehouseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Products:   calc.ProductFleetStats(products),
		Warehouses: calc.WarehouseFleetStats(warehouses),
		Orders:     orders,
	}, nil
}
