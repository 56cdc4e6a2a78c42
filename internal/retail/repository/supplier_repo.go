package repository

import (
	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(s *entity.Supplier) error {
	return r.db.Create(s).Error
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&s).Error
	return &s, err
}

func (r *SupplierRepository) Update(s *entity.Supplier) error {
	return r.db.Save(s).Error
}

func (r *SupplierRepository) Delete(id string) error {
	return r.db.Model(&entity.Supplier{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

func (r *SupplierRepository) List(keyword string) ([]entity.Supplier, error) {
	query := r.db.Where("deleted_at IS NULL")
	if keyword != "" {
		kw := "%" + keyword + "%"
		query = query.Where("name ILIKE ? OR contact ILIKE ?", kw, kw)
	}
	var items []entity.Supplier
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}
