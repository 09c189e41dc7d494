package calc

import "go-business-ws/internal/model"

// FindProduct looks up a product by ID in a catalog snapshot
func FindProduct(catalog []model.Product, productID uint) (model.Product, bool) {
	if productID == 0 {
		return model.Product{}, false
	}
	for _, p := range catalog {
		if p.ID == productID {
			return p, true
		}
	}
	return model.Product{}, false
}

// SyncLineItem points a line item at a newly selected product and refreshes
// its snapshot fields from the catalog. Quantity is never touched.
//
// Product ID 0 clears the selection. An ID missing from the catalog keeps the
// previous code, name and price; a stale catalog should not wipe what the
// user already sees.
func SyncLineItem(item model.OrderLineItem, productID uint, catalog []model.Product) model.OrderLineItem {
	synced := item
	synced.ProductID = productID

	if productID == 0 {
		synced.Code = ""
		synced.Name = ""
		synced.Price = model.Amount{}
		return synced
	}

	product, ok := FindProduct(catalog, productID)
	if !ok {
		return synced
	}

	synced.Code = product.Code
	synced.Name = product.Name
	synced.Price = model.NewAmount(SafeDecimal(product.Price))
	return synced
}
