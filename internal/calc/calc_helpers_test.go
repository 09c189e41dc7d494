package calc_test

import (
	"testing"

	"go-business-ws/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	assert.Truef(t, expected.Equal(got), "expected %s, got %s", expected, got)
}

func item(productID uint, quantity int, price string) model.OrderLineItem {
	return model.OrderLineItem{ProductID: productID, Quantity: quantity, Price: model.ParseAmount(price)}
}

func product(id uint, code, name, price string, quantities ...int) model.Product {
	p := model.Product{Code: code, Name: name, Price: model.ParseAmount(price)}
	p.ID = id
	for i, q := range quantities {
		p.Stocks = append(p.Stocks, model.Stock{ProductID: id, WarehouseID: uint(i + 1), Quantity: q})
	}
	return p
}

func stockOf(p *model.Product, quantity int) model.Stock {
	s := model.Stock{Quantity: quantity, Product: p}
	if p != nil {
		s.ProductID = p.ID
	}
	return s
}
