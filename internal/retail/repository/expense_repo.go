package repository

import (
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(e *entity.Expense) error {
	return r.db.Create(e).Error
}

func (r *ExpenseRepository) GetByID(id string) (*entity.Expense, error) {
	var e entity.Expense
	err := r.db.Preload("Store").
		Where("id = ? AND deleted_at IS NULL", id).First(&e).Error
	return &e, err
}

func (r *ExpenseRepository) Delete(id string) error {
	return r.db.Model(&entity.Expense{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

type ExpenseListParams struct {
	StoreID  string
	Category string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Size     int
}

func (r *ExpenseRepository) List(params ExpenseListParams) ([]entity.Expense, int64, error) {
	query := r.db.Model(&entity.Expense{}).Where("deleted_at IS NULL")
	if params.StoreID != "" {
		query = query.Where("store_id = ?", params.StoreID)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.DateFrom != nil {
		query = query.Where("date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("date <= ?", *params.DateTo)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var items []entity.Expense
	err := query.Preload("Store").Order("date DESC, created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}
