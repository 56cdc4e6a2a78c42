package service

import (
	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
)

// StockService 库存台账访问。数量语义：已应用增量之和，缺行为0。
type StockService struct {
	stockRepo *repository.StockRepository
}

func NewStockService(stockRepo *repository.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

func (s *StockService) Quantity(productID, storeID string) (float64, error) {
	return s.stockRepo.Quantity(productID, storeID)
}

type AdjustStockRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	StoreID   string  `json:"store_id" binding:"required"`
	Delta     float64 `json:"delta" binding:"required"`
}

// Adjust 直接按增量调整。不设下限，过量扣减允许出现负数。
func (s *StockService) Adjust(req AdjustStockRequest) error {
	return s.stockRepo.Adjust(req.ProductID, req.StoreID, req.Delta)
}

func (s *StockService) List(params repository.StockListParams) ([]entity.StockEntry, int64, error) {
	return s.stockRepo.List(params)
}

func (s *StockService) ByProduct(productID string) ([]entity.StockEntry, error) {
	return s.stockRepo.ByProduct(productID)
}
