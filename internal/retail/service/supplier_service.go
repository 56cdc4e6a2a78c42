package service

import (
	"fmt"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/google/uuid"
)

type SupplierService struct {
	supplierRepo *repository.SupplierRepository
}

func NewSupplierService(supplierRepo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (s *SupplierService) Create(req SupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) Get(id string) (*entity.Supplier, error) {
	return s.supplierRepo.GetByID(id)
}

func (s *SupplierService) List(keyword string) ([]entity.Supplier, error) {
	return s.supplierRepo.List(keyword)
}

func (s *SupplierService) Update(id string, req SupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}
	supplier.Name = req.Name
	supplier.Contact = req.Contact
	supplier.Phone = req.Phone
	supplier.Address = req.Address
	supplier.Notes = req.Notes
	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) Delete(id string) error {
	return s.supplierRepo.Delete(id)
}
