package repository

import (
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(req *entity.ProductRequest) error {
	return r.db.Create(req).Error
}

func (r *RequestRepository) GetByID(id string) (*entity.ProductRequest, error) {
	var req entity.ProductRequest
	err := r.db.Preload("Store").Where("id = ?", id).First(&req).Error
	return &req, err
}

func (r *RequestRepository) Update(req *entity.ProductRequest) error {
	return r.db.Save(req).Error
}

type RequestListParams struct {
	StoreID  string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Size     int
}

func (r *RequestRepository) List(params RequestListParams) ([]entity.ProductRequest, int64, error) {
	query := r.db.Model(&entity.ProductRequest{})
	if params.StoreID != "" {
		query = query.Where("store_id = ?", params.StoreID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
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
	var items []entity.ProductRequest
	err := query.Preload("Store").Order("date DESC, created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}
