package entity

import (
	"time"
)

// StockEntry 库存记录，(product_id, store_id) 唯一。缺行即数量为0。
type StockEntry struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ProductID string    `json:"product_id" gorm:"size:36;not null;uniqueIndex:ux_stock_product_store,priority:1"`
	StoreID   string    `json:"store_id" gorm:"size:36;not null;uniqueIndex:ux_stock_product_store,priority:2"`
	Quantity  float64   `json:"quantity" gorm:"type:decimal(12,4);not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Store   *Store   `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

func (StockEntry) TableName() string {
	return "stock"
}

// StockTransfer 调拨记录，只增不改。
type StockTransfer struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	ProductID   string    `json:"product_id" gorm:"size:36;not null;index"`
	Quantity    float64   `json:"quantity" gorm:"type:decimal(12,4);not null"`
	FromStoreID string    `json:"from_store_id" gorm:"size:36;not null;index"`
	ToStoreID   string    `json:"to_store_id" gorm:"size:36;not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	FromStore *Store   `json:"from_store,omitempty" gorm:"foreignKey:FromStoreID"`
	ToStore   *Store   `json:"to_store,omitempty" gorm:"foreignKey:ToStoreID"`
}

func (StockTransfer) TableName() string {
	return "stock_transfers"
}
