package service

import (
	"fmt"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/google/uuid"
)

type LocationService struct {
	storeRepo *repository.StoreRepository
}

func NewLocationService(storeRepo *repository.StoreRepository) *LocationService {
	return &LocationService{storeRepo: storeRepo}
}

type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

func (s *LocationService) Create(req CreateStoreRequest) (*entity.Store, error) {
	store := &entity.Store{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Location: req.Location,
	}
	if err := s.storeRepo.Create(store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return store, nil
}

func (s *LocationService) Get(id string) (*entity.Store, error) {
	return s.storeRepo.GetByID(id)
}

func (s *LocationService) List() ([]entity.Store, error) {
	return s.storeRepo.List()
}

type UpdateStoreRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

func (s *LocationService) Update(id string, req UpdateStoreRequest) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("store not found: %w", err)
	}
	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Location != nil {
		store.Location = *req.Location
	}
	if err := s.storeRepo.Update(store); err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	return store, nil
}

// SetCentral 指定中心仓，旧标记在同一事务内清除，保证全局唯一。
func (s *LocationService) SetCentral(id string) error {
	return s.storeRepo.SetCentral(id)
}

// Delete 删除门店。中心仓以及被库存或调拨引用的门店受保护。
func (s *LocationService) Delete(id string) error {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("store not found: %w", err)
	}
	if store.IsCentral {
		return ErrHubProtected
	}
	referenced, err := s.storeRepo.Referenced(id)
	if err != nil {
		return fmt.Errorf("check references: %w", err)
	}
	if referenced {
		return ErrStoreReferenced
	}
	return s.storeRepo.Delete(id)
}
