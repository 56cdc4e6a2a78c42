package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AssignmentService 把「到货+分配矩阵」落成台账调整和调拨流水。
// 行与行顺序执行；单行内的全部写入在一个数据库事务里提交。
type AssignmentService struct {
	productRepo  *repository.ProductRepository
	storeRepo    *repository.StoreRepository
	stockRepo    *repository.StockRepository
	transferRepo *repository.TransferRepository
	db           *gorm.DB
	logger       *zap.Logger
}

func NewAssignmentService(productRepo *repository.ProductRepository, storeRepo *repository.StoreRepository, stockRepo *repository.StockRepository, transferRepo *repository.TransferRepository, db *gorm.DB, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		stockRepo:    stockRepo,
		transferRepo: transferRepo,
		db:           db,
		logger:       logger,
	}
}

type NewProductSpec struct {
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	CostPrice     float64 `json:"cost_price"`
	SellingPrice  float64 `json:"selling_price"`
	MinStockLevel float64 `json:"min_stock_level"`
}

type Allocation struct {
	StoreID  string  `json:"store_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
}

// AssignmentRow 矩阵中的一行：已有商品引用或新品字段，到货量，各门店分配量。
type AssignmentRow struct {
	ProductID   string          `json:"product_id"`
	NewProduct  *NewProductSpec `json:"new_product"`
	IncomingQty float64         `json:"incoming_qty" binding:"gte=0"`
	Allocations []Allocation    `json:"allocations"`
}

// 行结果状态
const (
	RowCommitted = "COMMITTED"
	RowFailed    = "FAILED"
	RowSkipped   = "SKIPPED"
	RowAborted   = "ABORTED"
)

type RowResult struct {
	Index     int    `json:"index"`
	ProductID string `json:"product_id,omitempty"`
	Outcome   string `json:"outcome"`
	Error     string `json:"error,omitempty"`
}

// blank 判定该行是否整行跳过：既无商品引用也无新品名称。
func (row AssignmentRow) blank() bool {
	if row.ProductID != "" {
		return false
	}
	return row.NewProduct == nil || strings.TrimSpace(row.NewProduct.Name) == ""
}

// Commit 逐行提交分配矩阵。任一行失败即中止后续行，但已提交的行保持提交；
// 返回的结果逐行标明 COMMITTED/FAILED/SKIPPED/ABORTED，调用方不必重读台账
// 即可得知落账情况。首个失败行的错误一并返回。
func (s *AssignmentService) Commit(rows []AssignmentRow, date time.Time, userID string) ([]RowResult, error) {
	committable := 0
	for _, row := range rows {
		if !row.blank() {
			committable++
		}
	}
	if committable == 0 {
		return nil, ErrEmptyAssignment
	}

	hub, err := s.storeRepo.GetCentral()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHubNotConfigured
		}
		return nil, fmt.Errorf("load hub store: %w", err)
	}

	results := make([]RowResult, len(rows))
	var firstErr error
	for i, row := range rows {
		results[i].Index = i
		if firstErr != nil {
			results[i].Outcome = RowAborted
			continue
		}
		if row.blank() {
			results[i].Outcome = RowSkipped
			continue
		}
		productID, rowErr := s.commitRow(hub.ID, row, date)
		results[i].ProductID = productID
		if rowErr != nil {
			results[i].Outcome = RowFailed
			results[i].Error = rowErr.Error()
			firstErr = fmt.Errorf("row %d: %w", i, rowErr)
			s.logger.Warn("Assignment row failed",
				zap.Int("row", i),
				zap.String("product_id", productID),
				zap.String("user_id", userID),
				zap.Error(rowErr),
			)
			continue
		}
		results[i].Outcome = RowCommitted
	}
	return results, firstErr
}

// commitRow 单行事务：建品（如需）→ 锁中心仓行量并校验 → 入库到货 →
// 逐店出中心仓、入门店、记调拨。
func (s *AssignmentService) commitRow(hubID string, row AssignmentRow, date time.Time) (string, error) {
	productID := row.ProductID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if productID == "" {
			unit := row.NewProduct.Unit
			if unit == "" {
				unit = entity.UnitPiece
			}
			if !entity.ValidUnit(unit) {
				return ErrInvalidUnit
			}
			p := &entity.Product{
				ID:            uuid.New().String(),
				Name:          strings.TrimSpace(row.NewProduct.Name),
				Unit:          unit,
				CostPrice:     row.NewProduct.CostPrice,
				SellingPrice:  row.NewProduct.SellingPrice,
				MinStockLevel: row.NewProduct.MinStockLevel,
			}
			if err := s.productRepo.CreateTx(tx, p); err != nil {
				return fmt.Errorf("create product: %w", err)
			}
			productID = p.ID
		} else {
			var p entity.Product
			if err := tx.Where("id = ? AND deleted_at IS NULL", productID).First(&p).Error; err != nil {
				return fmt.Errorf("product not found: %w", err)
			}
		}

		var distTotal float64
		for _, alloc := range row.Allocations {
			if alloc.Quantity > 0 {
				distTotal += alloc.Quantity
			}
		}

		hubQty, err := s.stockRepo.LockQuantity(tx, productID, hubID)
		if err != nil {
			return fmt.Errorf("lock hub stock: %w", err)
		}
		if hubQty+row.IncomingQty-distTotal < 0 {
			return ErrInsufficientHubStock
		}

		if row.IncomingQty > 0 {
			if err := s.stockRepo.AdjustTx(tx, productID, hubID, row.IncomingQty); err != nil {
				return fmt.Errorf("receive incoming at hub: %w", err)
			}
		}

		for _, alloc := range row.Allocations {
			if alloc.Quantity <= 0 {
				continue
			}
			if err := s.stockRepo.AdjustTx(tx, productID, hubID, -alloc.Quantity); err != nil {
				return fmt.Errorf("deduct hub stock: %w", err)
			}
			if err := s.stockRepo.AdjustTx(tx, productID, alloc.StoreID, alloc.Quantity); err != nil {
				return fmt.Errorf("add store stock: %w", err)
			}
			transfer := &entity.StockTransfer{
				ID:          uuid.New().String(),
				Date:        date,
				ProductID:   productID,
				Quantity:    alloc.Quantity,
				FromStoreID: hubID,
				ToStoreID:   alloc.StoreID,
			}
			if err := s.transferRepo.CreateTx(tx, transfer); err != nil {
				return fmt.Errorf("log transfer: %w", err)
			}
		}
		return nil
	})
	return productID, err
}

type SetQuantityResult struct {
	ProductID string  `json:"product_id"`
	StoreID   string  `json:"store_id"`
	OldQty    float64 `json:"old_qty"`
	NewQty    float64 `json:"new_qty"`
	Delta     float64 `json:"delta"`
	Changed   bool    `json:"changed"`
}

// SetStoreQuantity 单品直改某门店数量的捷径。delta 为零时完全不动账。
// 正向从中心仓拨出，负向退回中心仓；两个方向都记一条调拨流水。
func (s *AssignmentService) SetStoreQuantity(productID, storeID string, newQty float64, date time.Time) (*SetQuantityResult, error) {
	hub, err := s.storeRepo.GetCentral()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHubNotConfigured
		}
		return nil, fmt.Errorf("load hub store: %w", err)
	}

	result := &SetQuantityResult{ProductID: productID, StoreID: storeID, NewQty: newQty}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		current, err := s.stockRepo.LockQuantity(tx, productID, storeID)
		if err != nil {
			return fmt.Errorf("lock store stock: %w", err)
		}
		result.OldQty = current
		delta := newQty - current
		result.Delta = delta
		if delta == 0 {
			return nil
		}
		result.Changed = true

		if err := s.stockRepo.AdjustTx(tx, productID, hub.ID, -delta); err != nil {
			return fmt.Errorf("adjust hub stock: %w", err)
		}
		if err := s.stockRepo.AdjustTx(tx, productID, storeID, delta); err != nil {
			return fmt.Errorf("adjust store stock: %w", err)
		}

		transfer := &entity.StockTransfer{
			ID:        uuid.New().String(),
			Date:      date,
			ProductID: productID,
		}
		if delta > 0 {
			transfer.Quantity = delta
			transfer.FromStoreID = hub.ID
			transfer.ToStoreID = storeID
		} else {
			transfer.Quantity = -delta
			transfer.FromStoreID = storeID
			transfer.ToStoreID = hub.ID
		}
		if err := s.transferRepo.CreateTx(tx, transfer); err != nil {
			return fmt.Errorf("log transfer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
