package service

import (
	"fmt"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService struct {
	productRepo *repository.ProductRepository
	stockRepo   *repository.StockRepository
	db          *gorm.DB
}

func NewCatalogService(productRepo *repository.ProductRepository, stockRepo *repository.StockRepository, db *gorm.DB) *CatalogService {
	return &CatalogService{productRepo: productRepo, stockRepo: stockRepo, db: db}
}

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Unit          string  `json:"unit"`
	CostPrice     float64 `json:"cost_price" binding:"gte=0"`
	SellingPrice  float64 `json:"selling_price" binding:"gte=0"`
	MinStockLevel float64 `json:"min_stock_level" binding:"gte=0"`
}

func (s *CatalogService) Create(req CreateProductRequest) (*entity.Product, error) {
	unit := req.Unit
	if unit == "" {
		unit = entity.UnitPiece
	}
	if !entity.ValidUnit(unit) {
		return nil, ErrInvalidUnit
	}
	p := &entity.Product{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Unit:          unit,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		MinStockLevel: req.MinStockLevel,
	}
	if err := s.productRepo.Create(p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

type CreateProductWithStockRequest struct {
	CreateProductRequest
	InitialQuantity float64 `json:"initial_quantity" binding:"gte=0"`
	StoreID         string  `json:"store_id" binding:"required"`
}

// CreateWithStock 建品并铺初始库存，两步在同一事务内完成。
func (s *CatalogService) CreateWithStock(req CreateProductWithStockRequest) (*entity.Product, error) {
	unit := req.Unit
	if unit == "" {
		unit = entity.UnitPiece
	}
	if !entity.ValidUnit(unit) {
		return nil, ErrInvalidUnit
	}
	p := &entity.Product{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Unit:          unit,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		MinStockLevel: req.MinStockLevel,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.CreateTx(tx, p); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		if req.InitialQuantity > 0 {
			if err := s.stockRepo.AdjustTx(tx, p.ID, req.StoreID, req.InitialQuantity); err != nil {
				return fmt.Errorf("seed stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) Get(id string) (*entity.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *CatalogService) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(params)
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Unit          *string  `json:"unit"`
	CostPrice     *float64 `json:"cost_price"`
	SellingPrice  *float64 `json:"selling_price"`
	MinStockLevel *float64 `json:"min_stock_level"`
}

func (s *CatalogService) Update(id string, req UpdateProductRequest) (*entity.Product, error) {
	p, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Unit != nil {
		if !entity.ValidUnit(*req.Unit) {
			return nil, ErrInvalidUnit
		}
		p.Unit = *req.Unit
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if req.MinStockLevel != nil {
		p.MinStockLevel = *req.MinStockLevel
	}
	if err := s.productRepo.Update(p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *CatalogService) Delete(id string) error {
	return s.productRepo.Delete(id)
}
