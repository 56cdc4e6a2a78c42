package service

import (
	"fmt"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WastageService 损耗入账与对应门店库存扣减在同一事务内完成。
type WastageService struct {
	wastageRepo *repository.WastageRepository
	stockRepo   *repository.StockRepository
	db          *gorm.DB
}

func NewWastageService(wastageRepo *repository.WastageRepository, stockRepo *repository.StockRepository, db *gorm.DB) *WastageService {
	return &WastageService{wastageRepo: wastageRepo, stockRepo: stockRepo, db: db}
}

type RecordWastageRequest struct {
	StoreID   string  `json:"store_id" binding:"required"`
	ProductID string  `json:"product_id" binding:"required"`
	Date      string  `json:"date"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Reason    string  `json:"reason"`
}

func (s *WastageService) Record(req RecordWastageRequest, userID string) (*entity.Wastage, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	wastage := &entity.Wastage{
		ID:        uuid.New().String(),
		StoreID:   req.StoreID,
		ProductID: req.ProductID,
		Date:      date,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		CreatedBy: userID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.wastageRepo.CreateTx(tx, wastage); err != nil {
			return fmt.Errorf("record wastage: %w", err)
		}
		if err := s.stockRepo.AdjustTx(tx, req.ProductID, req.StoreID, -req.Quantity); err != nil {
			return fmt.Errorf("deduct store stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wastage, nil
}

func (s *WastageService) List(params repository.WastageListParams) ([]entity.Wastage, int64, error) {
	return s.wastageRepo.List(params)
}
