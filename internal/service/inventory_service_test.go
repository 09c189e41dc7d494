package service_test

import (
	"testing"

	"go-business-ws/internal/model"
	"go-business-ws/internal/service"
	"go-business-ws/internal/ws"
	"go-business-ws/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInventoryFixture() (service.InventoryService, *fakeProductRepo, *fakeStockTable, *recordingHub) {
	stocks := &fakeStockTable{}
	products := newFakeProductRepo(stocks, productFixture(1, "P-1", "Widget", "10.00"))
	hub := &recordingHub{}
	return service.NewInventoryService(products, hub), products, stocks, hub
}

func TestCreateProduct(t *testing.T) {
	svc, products, _, hub := newInventoryFixture()

	p := &model.Product{
		Code:     "P-2",
		Name:     "Gadget",
		Price:    model.ParseAmount("5.50"),
		Category: model.CategoryElectronics,
		Stocks:   []model.Stock{{WarehouseID: 1, Quantity: 500}},
	}
	require.NoError(t, svc.CreateProduct(p, testActor))

	assert.NotZero(t, p.ID)
	assert.Nil(t, products.products[p.ID].Stocks)
	assert.Equal(t, testActor.ID, p.CreatedBy)
	assert.Equal(t, []string{ws.EventStockUpdate}, hub.types())
}

func TestCreateProduct_Rejects(t *testing.T) {
	svc, _, _, hub := newInventoryFixture()

	dup := &model.Product{Code: "P-1", Name: "Copy", Category: model.CategoryOther}
	assert.ErrorIs(t, svc.CreateProduct(dup, testActor), service.ErrDuplicateCode)

	negative := &model.Product{Code: "P-3", Name: "Broken", Price: model.ParseAmount("-1"), Category: model.CategoryOther}
	assert.ErrorIs(t, svc.CreateProduct(negative, testActor), validator.ErrValidation)

	badCategory := &model.Product{Code: "P-4", Name: "Odd", Category: "weapons"}
	assert.ErrorIs(t, svc.CreateProduct(badCategory, testActor), validator.ErrValidation)

	assert.Empty(t, hub.types())
}

func TestUpdateProduct(t *testing.T) {
	svc, _, _, _ := newInventoryFixture()

	updated, err := svc.UpdateProduct(1, &model.Product{
		Code:     "P-1",
		Name:     "Widget XL",
		Price:    model.ParseAmount("12.25"),
		Category: model.CategoryOffice,
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "Widget XL", updated.Name)
	assertDecimal(t, "12.25", updated.Price.Decimal)

	_, err = svc.UpdateProduct(9, &model.Product{Code: "P-9", Name: "Ghost", Category: model.CategoryOther}, testActor)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestGetProduct_StockSummary(t *testing.T) {
	svc, _, stocks, _ := newInventoryFixture()
	stocks.rows = []*model.Stock{
		{ProductID: 1, WarehouseID: 1, Quantity: 6},
		{ProductID: 1, WarehouseID: 2, Quantity: 7},
	}

	view, err := svc.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 13, view.StockSummary.TotalQuantity)
	assert.False(t, view.StockSummary.IsLowStock)
	assertDecimal(t, "130", view.StockValue)

	stats, err := svc.GetProductStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 13, stats.TotalStock)
	assert.Equal(t, 0, stats.LowStockProducts)
}

func TestDeleteProduct(t *testing.T) {
	svc, products, _, hub := newInventoryFixture()

	require.NoError(t, svc.DeleteProduct(1, testActor))
	assert.Empty(t, products.products)
	assert.Equal(t, []string{ws.EventStockUpdate}, hub.types())

	assert.ErrorIs(t, svc.DeleteProduct(1, testActor), service.ErrProductNotFound)
}

// racingProductRepo passes the code lookup but loses the insert to a
// concurrent create of the same code.
type racingProductRepo struct {
	*fakeProductRepo
}

func (r racingProductRepo) Create(*model.Product) error {
	return gorm.ErrDuplicatedKey
}

func TestCreateProduct_UniqueViolationIsDuplicate(t *testing.T) {
	repo := racingProductRepo{newFakeProductRepo(&fakeStockTable{})}
	svc := service.NewInventoryService(repo, &recordingHub{})

	err := svc.CreateProduct(&model.Product{Code: "P-9", Name: "Late", Category: model.CategoryOther}, testActor)
	assert.ErrorIs(t, err, service.ErrDuplicateCode)
}
