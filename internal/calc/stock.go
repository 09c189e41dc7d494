package calc

import (
	"go-business-ws/internal/model"

	"github.com/shopspring/decimal"
)

// PriceLookup resolves the current unit price of a product. ok is false when
// the product is unknown.
type PriceLookup func(productID uint) (price decimal.Decimal, ok bool)

// CatalogPriceLookup builds a PriceLookup over a product catalog snapshot.
// The catalog is indexed once; later edits to the slice are not observed.
func CatalogPriceLookup(catalog []model.Product) PriceLookup {
	prices := make(map[uint]decimal.Decimal, len(catalog))
	for _, p := range catalog {
		prices[p.ID] = SafeDecimal(p.Price)
	}
	return func(productID uint) (decimal.Decimal, bool) {
		price, ok := prices[productID]
		return price, ok
	}
}

// TotalStock sums quantities across stock records
func TotalStock(stocks []model.Stock) int {
	total := 0
	for _, s := range stocks {
		total += SafeQuantity(s.Quantity)
	}
	return total
}

// TotalValue sums quantity * price over stock records, pricing each record
// through lookup. Records whose product cannot be resolved add nothing.
func TotalValue(stocks []model.Stock, lookup PriceLookup) decimal.Decimal {
	total := decimal.Zero
	if lookup == nil {
		return total
	}
	for _, s := range stocks {
		price, ok := lookup(s.ProductID)
		if !ok {
			continue
		}
		total = total.Add(mulQty(s.Quantity, price))
	}
	return total
}

// embeddedValue prices a stock record from its own preloaded product.
func embeddedValue(s model.Stock) decimal.Decimal {
	if s.Product == nil {
		return decimal.Zero
	}
	return mulQty(s.Quantity, s.Product.Price)
}
