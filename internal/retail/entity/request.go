package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// RequestStatus 请货单状态
const (
	RequestStatusPending  = "PENDING"
	RequestStatusApproved = "APPROVED"
	RequestStatusRejected = "REJECTED"
)

// RequestItem 请货明细行
type RequestItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// RequestItems 以 JSONB 存储的明细列表
type RequestItems []RequestItem

func (items RequestItems) Value() (driver.Value, error) {
	if items == nil {
		return nil, nil
	}
	return json.Marshal(items)
}

func (items *RequestItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, items)
}

// ProductRequest 门店请货单。PENDING 创建，审批后进入终态。
type ProductRequest struct {
	ID           string       `json:"id" gorm:"primaryKey;size:36"`
	Date         time.Time    `json:"date" gorm:"not null;index"`
	StoreID      string       `json:"store_id" gorm:"size:36;not null;index"`
	Status       string       `json:"status" gorm:"size:20;not null;default:PENDING;index"`
	Items        RequestItems `json:"items" gorm:"type:jsonb"`
	ReceiptImage string       `json:"receipt_image" gorm:"size:500"`
	Note         string       `json:"note" gorm:"type:text"`
	CreatedBy    string       `json:"created_by" gorm:"size:36"`
	ReviewedBy   string       `json:"reviewed_by" gorm:"size:36"`
	ReviewedAt   *time.Time   `json:"reviewed_at"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Store *Store `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

func (ProductRequest) TableName() string {
	return "product_requests"
}
