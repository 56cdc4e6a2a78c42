package repository

import (
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type WastageRepository struct {
	db *gorm.DB
}

func NewWastageRepository(db *gorm.DB) *WastageRepository {
	return &WastageRepository{db: db}
}

func (r *WastageRepository) CreateTx(tx *gorm.DB, w *entity.Wastage) error {
	return tx.Create(w).Error
}

func (r *WastageRepository) GetByID(id string) (*entity.Wastage, error) {
	var w entity.Wastage
	err := r.db.Preload("Store").Preload("Product").
		Where("id = ? AND deleted_at IS NULL", id).First(&w).Error
	return &w, err
}

type WastageListParams struct {
	StoreID   string
	ProductID string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	Size      int
}

func (r *WastageRepository) List(params WastageListParams) ([]entity.Wastage, int64, error) {
	query := r.db.Model(&entity.Wastage{}).Where("deleted_at IS NULL")
	if params.StoreID != "" {
		query = query.Where("store_id = ?", params.StoreID)
	}
	if params.ProductID != "" {
		query = query.Where("product_id = ?", params.ProductID)
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
	var items []entity.Wastage
	err := query.Preload("Store").Preload("Product").
		Order("date DESC, created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}
