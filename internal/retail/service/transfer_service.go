package service

import (
	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
)

// TransferService 调拨流水查询。流水只增不改，写入只发生在分配工作流内部。
type TransferService struct {
	transferRepo *repository.TransferRepository
}

func NewTransferService(transferRepo *repository.TransferRepository) *TransferService {
	return &TransferService{transferRepo: transferRepo}
}

func (s *TransferService) List(params repository.TransferListParams) ([]entity.StockTransfer, int64, error) {
	return s.transferRepo.List(params)
}

func (s *TransferService) LatestByStore(storeID string) (*entity.StockTransfer, error) {
	return s.transferRepo.LatestByStore(storeID)
}
