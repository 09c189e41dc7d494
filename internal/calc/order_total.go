package calc

import (
	"go-business-ws/internal/model"

	"github.com/shopspring/decimal"
)

// LineTotal returns quantity * price for one line item
func LineTotal(item model.OrderLineItem) decimal.Decimal {
	return mulQty(item.Quantity, item.Price)
}

// CalculateTotal sums quantity * price over the line items. The result keeps
// full precision; rounding for display is left to the caller.
func CalculateTotal(items []model.OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}
