package calc

import (
	"go-business-ws/internal/model"

	"github.com/shopspring/decimal"
)

// StockSummary is the catalog view of a single product: supply summed over
// every warehouse, then compared against the threshold.
type StockSummary struct {
	TotalQuantity int  `json:"total_quantity"`
	IsLowStock    bool `json:"is_low_stock"`
}

// WarehouseSummary is the shelf view of a single warehouse. LowStockItems
// counts stock records that are low on their own, so a product can be low in
// one warehouse while its global supply is healthy.
type WarehouseSummary struct {
	TotalProducts int             `json:"total_products"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockItems int             `json:"low_stock_items"`
}

type ProductStats struct {
	TotalProducts    int             `json:"total_products"`
	TotalValue       decimal.Decimal `json:"total_value"`
	LowStockProducts int             `json:"low_stock_products"`
	TotalStock       int             `json:"total_stock"`
}

type WarehouseStats struct {
	TotalWarehouses int             `json:"total_warehouses"`
	TotalProducts   int             `json:"total_products"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalStock      int             `json:"total_stock"`
}

func ProductStockSummary(p model.Product) StockSummary {
	total := TotalStock(p.Stocks)
	return StockSummary{
		TotalQuantity: total,
		IsLowStock:    IsLowStock(total),
	}
}

// ProductValue is the product's total supply priced at its current price
func ProductValue(p model.Product) decimal.Decimal {
	return mulQty(TotalStock(p.Stocks), p.Price)
}

func SummarizeWarehouse(w model.Warehouse) WarehouseSummary {
	summary := WarehouseSummary{
		TotalProducts: len(w.Stocks),
		TotalQuantity: TotalStock(w.Stocks),
		TotalValue:    decimal.Zero,
	}
	for _, s := range w.Stocks {
		summary.TotalValue = summary.TotalValue.Add(embeddedValue(s))
		if IsLowStock(s.Quantity) {
			summary.LowStockItems++
		}
	}
	return summary
}

func ProductFleetStats(products []model.Product) ProductStats {
	stats := ProductStats{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range products {
		summary := ProductStockSummary(p)
		stats.TotalStock += summary.TotalQuantity
		stats.TotalValue = stats.TotalValue.Add(mulQty(summary.TotalQuantity, p.Price))
		if summary.IsLowStock {
			stats.LowStockProducts++
		}
	}
	return stats
}

func WarehouseFleetStats(warehouses []model.Warehouse) WarehouseStats {
	stats := WarehouseStats{
		TotalWarehouses: len(warehouses),
		TotalValue:      decimal.Zero,
	}
	for _, w := range warehouses {
		summary := SummarizeWarehouse(w)
		stats.TotalProducts += summary.TotalProducts
		stats.TotalStock += summary.TotalQuantity
		stats.TotalValue = stats.TotalValue.Add(summary.TotalValue)
	}
	return stats
}
