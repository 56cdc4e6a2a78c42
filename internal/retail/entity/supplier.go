package entity

import (
	"time"
)

// Supplier 供应商
type Supplier struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	Name      string     `json:"name" gorm:"size:200;not null"`
	Contact   string     `json:"contact" gorm:"size:100"`
	Phone     string     `json:"phone" gorm:"size:20"`
	Address   string     `json:"address" gorm:"size:500"`
	Notes     string     `json:"notes" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
