package entity

import (
	"time"
)

// Store 门店。IsCentral 标记中心仓，全局唯一。
type Store struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Location  string     `json:"location" gorm:"size:500"`
	IsCentral bool       `json:"is_central" gorm:"not null;default:false"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

func (Store) TableName() string {
	return "stores"
}
