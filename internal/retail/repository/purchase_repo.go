package repository

import (
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) Create(p *entity.Purchase) error {
	return r.db.Create(p).Error
}

func (r *PurchaseRepository) GetByID(id string) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.db.Preload("Supplier").Preload("Store").
		Where("id = ? AND deleted_at IS NULL", id).First(&p).Error
	return &p, err
}

func (r *PurchaseRepository) Delete(id string) error {
	return r.db.Model(&entity.Purchase{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

type PurchaseListParams struct {
	StoreID    string
	SupplierID string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	Size       int
}

func (r *PurchaseRepository) List(params PurchaseListParams) ([]entity.Purchase, int64, error) {
	query := r.db.Model(&entity.Purchase{}).Where("deleted_at IS NULL")
	if params.StoreID != "" {
		query = query.Where("store_id = ?", params.StoreID)
	}
	if params.SupplierID != "" {
		query = query.Where("supplier_id = ?", params.SupplierID)
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
	var items []entity.Purchase
	err := query.Preload("Supplier").Preload("Store").
		Order("date DESC, created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}
