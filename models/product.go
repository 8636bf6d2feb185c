package models

import "gorm.io/gorm"

type ProductStatus string

const (
	StatusInStock    ProductStatus = "In Stock"
	StatusLowStock   ProductStatus = "Low Stock"
	StatusOutOfStock ProductStatus = "Out of Stock"
)

// DefaultMinStock is the threshold applied to products created through the
// add-quantity path, where the caller supplies no minimum.
const DefaultMinStock = 10

// DeriveStatus is the single source of truth for a product's stock status.
// Every quantity mutation must recompute status through this function.
func DeriveStatus(quantity, minStock int) ProductStatus {
	switch {
	case quantity > minStock:
		return StatusInStock
	case quantity > 0:
		return StatusLowStock
	default:
		return StatusOutOfStock
	}
}

type Product struct {
	gorm.Model
	Name      string        `gorm:"size:180;index"    json:"name"`
	Category  string        `gorm:"size:120"          json:"category"`
	Unit      string        `gorm:"size:30;default:pcs" json:"unit"`
	Price     float64       `json:"price"`
	FoodType  string        `gorm:"size:20"           json:"food_type"`
	Thumbnail string        `gorm:"size:255"          json:"thumbnail"`
	Quantity  int           `json:"quantity"`
	MinStock  int           `gorm:"default:10"        json:"min_stock"`
	Notes     string        `gorm:"size:255"          json:"notes"`
	Status    ProductStatus `gorm:"size:20"           json:"status"`
}
