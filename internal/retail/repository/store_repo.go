package repository

import (
	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(s *entity.Store) error {
	return r.db.Create(s).Error
}

func (r *StoreRepository) GetByID(id string) (*entity.Store, error) {
	var s entity.Store
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&s).Error
	return &s, err
}

// GetCentral 获取中心仓
func (r *StoreRepository) GetCentral() (*entity.Store, error) {
	var s entity.Store
	err := r.db.Where("is_central = true AND deleted_at IS NULL").First(&s).Error
	return &s, err
}

func (r *StoreRepository) Update(s *entity.Store) error {
	return r.db.Save(s).Error
}

func (r *StoreRepository) Delete(id string) error {
	return r.db.Model(&entity.Store{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

func (r *StoreRepository) List() ([]entity.Store, error) {
	var items []entity.Store
	err := r.db.Where("deleted_at IS NULL").
		Order("is_central DESC, name ASC").Find(&items).Error
	return items, err
}

// SetCentral 原子切换中心仓：同一事务内先清除旧标记再设置新标记。
func (r *StoreRepository) SetCentral(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Store{}).
			Where("is_central = true").Update("is_central", false).Error; err != nil {
			return err
		}
		result := tx.Model(&entity.Store{}).
			Where("id = ? AND deleted_at IS NULL", id).Update("is_central", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Referenced 判断门店是否已被库存或调拨记录引用
func (r *StoreRepository) Referenced(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&entity.StockEntry{}).
		Where("store_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.Model(&entity.StockTransfer{}).
		Where("from_store_id = ? OR to_store_id = ?", id, id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
