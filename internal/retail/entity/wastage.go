package entity

import (
	"time"
)

// Wastage 损耗记录，入账时同步扣减对应门店库存。
type Wastage struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	StoreID   string     `json:"store_id" gorm:"size:36;not null;index"`
	ProductID string     `json:"product_id" gorm:"size:36;not null;index"`
	Date      time.Time  `json:"date" gorm:"not null;index"`
	Quantity  float64    `json:"quantity" gorm:"type:decimal(12,4);not null"`
	Reason    string     `json:"reason" gorm:"size:500"`
	CreatedBy string     `json:"created_by" gorm:"size:36"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Store   *Store   `json:"store,omitempty" gorm:"foreignKey:StoreID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Wastage) TableName() string {
	return "wastages"
}
