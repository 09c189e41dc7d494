// Package calc derives order and inventory figures from snapshots of the
// catalog, warehouse stock and order line items.
//
// Every function here is pure: it reads only its arguments, mutates nothing
// and never fails. Missing references contribute zero, malformed numbers are
// coerced to zero, and empty collections produce zero-valued results.
package calc

import (
	"encoding/json"
	"math"
	"math/big"

	"go-business-ws/internal/model"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the quantity at or below which stock is flagged for
// replenishment. Product and warehouse views share it.
const LowStockThreshold = 10

// IsLowStock reports whether quantity is at or below LowStockThreshold
func IsLowStock(quantity int) bool {
	return SafeQuantity(quantity) <= LowStockThreshold
}

// SafeQuantity clamps a quantity to the non-negative range.
func SafeQuantity(q int) int {
	if q < 0 {
		return 0
	}
	return q
}

// SafeDecimal coerces a numeric value of any supported representation into a
// decimal. Unsupported types, nil, NaN, infinities and unparsable strings all
// become zero.
func SafeDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case model.Amount:
		return x.Decimal
	case *model.Amount:
		if x == nil {
			return decimal.Zero
		}
		return x.Decimal
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case string:
		return model.ParseAmount(x).Decimal
	case json.Number:
		return model.ParseAmount(x.String()).Decimal
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int8:
		return decimal.NewFromInt(int64(x))
	case int16:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return fromUint(uint64(x))
	case uint16:
		return fromUint(uint64(x))
	case uint32:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	default:
		return decimal.Zero
	}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

// mulQty multiplies a coerced quantity by a coerced price.
func mulQty(quantity int, price any) decimal.Decimal {
	return decimal.NewFromInt(int64(SafeQuantity(quantity))).Mul(SafeDecimal(price))
}
