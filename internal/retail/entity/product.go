package entity

import (
	"time"
)

// Unit 计量单位
const (
	UnitPiece = "piece"
	UnitKg    = "kg"
	UnitBox   = "box"
	UnitLitre = "litre"
	UnitPack  = "pack"
)

// ValidUnit reports whether u is a known unit of measure.
func ValidUnit(u string) bool {
	switch u {
	case UnitPiece, UnitKg, UnitBox, UnitLitre, UnitPack:
		return true
	}
	return false
}

// Product 商品
type Product struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	Name          string     `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Unit          string     `json:"unit" gorm:"size:20;not null;default:piece"`
	CostPrice     float64    `json:"cost_price" gorm:"type:decimal(12,2);default:0"`
	SellingPrice  float64    `json:"selling_price" gorm:"type:decimal(12,2);default:0"`
	MinStockLevel float64    `json:"min_stock_level" gorm:"type:decimal(12,4);default:0"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at" gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
