package repository

import (
	"errors"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// Quantity 查询某商品在某门店的在库数量，无记录视为0。
func (r *StockRepository) Quantity(productID, storeID string) (float64, error) {
	return r.QuantityTx(r.db, productID, storeID)
}

func (r *StockRepository) QuantityTx(tx *gorm.DB, productID, storeID string) (float64, error) {
	var entry entity.StockEntry
	err := tx.Where("product_id = ? AND store_id = ?", productID, storeID).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return entry.Quantity, nil
}

// LockQuantity 行锁读取数量，供调拨事务内校验使用。无记录视为0（无行可锁）。
func (r *StockRepository) LockQuantity(tx *gorm.DB, productID, storeID string) (float64, error) {
	var entry entity.StockEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ? AND store_id = ?", productID, storeID).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return entry.Quantity, nil
}

// Adjust 按增量调整库存。
func (r *StockRepository) Adjust(productID, storeID string, delta float64) error {
	return r.AdjustTx(r.db, productID, storeID, delta)
}

// AdjustTx 单条原子 upsert：不存在则以增量插入，存在则在数据库侧累加，
// 避免读-改-写竞态。不设下限，数量允许为负。
func (r *StockRepository) AdjustTx(tx *gorm.DB, productID, storeID string, delta float64) error {
	entry := &entity.StockEntry{
		ID:        uuid.New().String(),
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  delta,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("stock.quantity + EXCLUDED.quantity"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(entry).Error
}

type StockListParams struct {
	ProductID string
	StoreID   string
	LowStock  bool
	Page      int
	Size      int
}

func (r *StockRepository) List(params StockListParams) ([]entity.StockEntry, int64, error) {
	query := r.db.Model(&entity.StockEntry{})
	if params.ProductID != "" {
		query = query.Where("product_id = ?", params.ProductID)
	}
	if params.StoreID != "" {
		query = query.Where("store_id = ?", params.StoreID)
	}
	if params.LowStock {
		query = query.Joins("JOIN products ON products.id = stock.product_id").
			Where("stock.quantity < products.min_stock_level AND products.min_stock_level > 0")
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var items []entity.StockEntry
	err := query.Preload("Product").Preload("Store").Order("updated_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}

// ByProduct 某商品在所有门店的库存
func (r *StockRepository) ByProduct(productID string) ([]entity.StockEntry, error) {
	var items []entity.StockEntry
	err := r.db.Preload("Store").
		Where("product_id = ?", productID).Find(&items).Error
	return items, err
}

// StoreTotals 各门店库存行数与总量
type StoreTotal struct {
	StoreID  string  `json:"store_id"`
	Products int64   `json:"products"`
	Quantity float64 `json:"quantity"`
}

func (r *StockRepository) StoreTotals() ([]StoreTotal, error) {
	var totals []StoreTotal
	err := r.db.Raw(`
		SELECT store_id, COUNT(*) AS products, COALESCE(SUM(quantity), 0) AS quantity
		FROM stock
		GROUP BY store_id
	`).Scan(&totals).Error
	return totals, err
}
