package model

type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryFood        ProductCategory = "food"
	CategoryFurniture   ProductCategory = "furniture"
	CategoryOffice      ProductCategory = "office"
	CategoryOther       ProductCategory = "other"
)

// ProductCategories lists every accepted category, in display order
var ProductCategories = []ProductCategory{
	CategoryElectronics,
	CategoryClothing,
	CategoryFood,
	CategoryFurniture,
	CategoryOffice,
	CategoryOther,
}

type Product struct {
	BaseModel
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_products_live_code,where:deleted_at IS NULL" json:"code" validate:"required,max=50"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string          `gorm:"type:text" json:"description"`
	Price       Amount          `gorm:"type:numeric;not null;default:0" json:"price" validate:"gte=0"`
	Category    ProductCategory `gorm:"type:varchar(30);not null;default:'other'" json:"category" validate:"required,oneof=electronics clothing food furniture office other"`

	// Relasi: one stock record per warehouse holding this product
	Stocks []Stock `json:"stocks,omitempty" validate:"-"`
}
