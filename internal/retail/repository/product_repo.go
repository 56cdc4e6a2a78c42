package repository

import (
	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

// CreateTx 在指定事务内创建商品
func (r *ProductRepository) CreateTx(tx *gorm.DB, p *entity.Product) error {
	return tx.Create(p).Error
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&p).Error
	return &p, err
}

func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Where("name = ? AND deleted_at IS NULL", name).First(&p).Error
	return &p, err
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id string) error {
	return r.db.Model(&entity.Product{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

type ProductListParams struct {
	Keyword string
	Unit    string
	Page    int
	Size    int
}

func (r *ProductRepository) List(params ProductListParams) ([]entity.Product, int64, error) {
	query := r.db.Model(&entity.Product{}).Where("deleted_at IS NULL")
	if params.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+params.Keyword+"%")
	}
	if params.Unit != "" {
		query = query.Where("unit = ?", params.Unit)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var items []entity.Product
	err := query.Order("name ASC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}
