package repository

import (
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

// TransferRepository 调拨流水仓储。只提供追加与查询，不暴露更新和删除。
type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(t *entity.StockTransfer) error {
	return r.CreateTx(r.db, t)
}

func (r *TransferRepository) CreateTx(tx *gorm.DB, t *entity.StockTransfer) error {
	return tx.Create(t).Error
}

type TransferListParams struct {
	ToStoreID   string
	FromStoreID string
	ProductID   string
	DateFrom    *time.Time
	DateTo      *time.Time
	Page        int
	Size        int
}

func (r *TransferRepository) List(params TransferListParams) ([]entity.StockTransfer, int64, error) {
	query := r.db.Model(&entity.StockTransfer{})
	if params.ToStoreID != "" {
		query = query.Where("to_store_id = ?", params.ToStoreID)
	}
	if params.FromStoreID != "" {
		query = query.Where("from_store_id = ?", params.FromStoreID)
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
	var items []entity.StockTransfer
	err := query.Preload("Product").Preload("FromStore").Preload("ToStore").
		Order("date DESC, created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}

// LatestByStore 某门店最近一次收到的调拨
func (r *TransferRepository) LatestByStore(storeID string) (*entity.StockTransfer, error) {
	var t entity.StockTransfer
	err := r.db.Preload("Product").
		Where("to_store_id = ?", storeID).
		Order("date DESC, created_at DESC").First(&t).Error
	return &t, err
}
