package entity

import (
	"time"
)

// Shift 班次
const (
	ShiftMorning = "MORNING"
	ShiftEvening = "EVENING"
)

// Sale 班次营业记录，每店每日每班一条。
type Sale struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	StoreID     string     `json:"store_id" gorm:"size:36;not null;index"`
	Date        time.Time  `json:"date" gorm:"not null;index"`
	Shift       string     `json:"shift" gorm:"size:20;not null;default:MORNING"`
	TotalAmount float64    `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	CashAmount  float64    `json:"cash_amount" gorm:"type:decimal(12,2);default:0"`
	CardAmount  float64    `json:"card_amount" gorm:"type:decimal(12,2);default:0"`
	RecordedBy  string     `json:"recorded_by" gorm:"size:36"`
	Notes       string     `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`

	Store *Store `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

func (Sale) TableName() string {
	return "sales"
}

// Purchase 采购记录
type Purchase struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	SupplierID string     `json:"supplier_id" gorm:"size:36;index"`
	StoreID    string     `json:"store_id" gorm:"size:36;not null;index"`
	Date       time.Time  `json:"date" gorm:"not null;index"`
	InvoiceNo  string     `json:"invoice_no" gorm:"size:100"`
	Amount     float64    `json:"amount" gorm:"type:decimal(12,2);not null;default:0"`
	Notes      string     `json:"notes" gorm:"type:text"`
	CreatedBy  string     `json:"created_by" gorm:"size:36"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at" gorm:"index"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Store    *Store    `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// Expense 门店支出
type Expense struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	StoreID     string     `json:"store_id" gorm:"size:36;not null;index"`
	Date        time.Time  `json:"date" gorm:"not null;index"`
	Category    string     `json:"category" gorm:"size:100"`
	Amount      float64    `json:"amount" gorm:"type:decimal(12,2);not null;default:0"`
	Description string     `json:"description" gorm:"type:text"`
	CreatedBy   string     `json:"created_by" gorm:"size:36"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`

	Store *Store `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

func (Expense) TableName() string {
	return "expenses"
}
