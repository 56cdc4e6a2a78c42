package repository

import (
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(s *entity.Sale) error {
	return r.db.Create(s).Error
}

func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.db.Preload("Store").
		Where("id = ? AND deleted_at IS NULL", id).First(&s).Error
	return &s, err
}

func (r *SaleRepository) Delete(id string) error {
	return r.db.Model(&entity.Sale{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

type SaleListParams struct {
	StoreID  string
	Shift    string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Size     int
}

func (r *SaleRepository) List(params SaleListParams) ([]entity.Sale, int64, error) {
	query := r.db.Model(&entity.Sale{}).Where("deleted_at IS NULL")
	if params.StoreID != "" {
		query = query.Where("store_id = ?", params.StoreID)
	}
	if params.Shift != "" {
		query = query.Where("shift = ?", params.Shift)
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
	var items []entity.Sale
	err := query.Preload("Store").Order("date DESC, created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}

// DailyTotal 按日按店汇总营业额
type DailyTotal struct {
	StoreID string    `json:"store_id"`
	Date    time.Time `json:"date"`
	Total   float64   `json:"total"`
	Cash    float64   `json:"cash"`
	Card    float64   `json:"card"`
}

func (r *SaleRepository) DailyTotals(storeID string, from, to time.Time) ([]DailyTotal, error) {
	query := r.db.Model(&entity.Sale{}).
		Select(`store_id, date,
			COALESCE(SUM(total_amount), 0) AS total,
			COALESCE(SUM(cash_amount), 0) AS cash,
			COALESCE(SUM(card_amount), 0) AS card`).
		Where("deleted_at IS NULL AND date >= ? AND date <= ?", from, to).
		Group("store_id, date").
		Order("date ASC")
	if storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}
	var totals []DailyTotal
	err := query.Scan(&totals).Error
	return totals, err
}
