package repository

import (
	"github.com/bitmarket/storehub/internal/retail/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := r.db.Preload("AssignedStore").
		Where("id = ? AND deleted_at IS NULL", id).First(&u).Error
	return &u, err
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("username = ? AND deleted_at IS NULL", username).First(&u).Error
	return &u, err
}

func (r *UserRepository) Update(u *entity.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) Delete(id string) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

func (r *UserRepository) List(role, storeID string) ([]entity.User, error) {
	query := r.db.Preload("AssignedStore").Where("deleted_at IS NULL")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if storeID != "" {
		query = query.Where("assigned_store_id = ?", storeID)
	}
	var items []entity.User
	err := query.Order("username ASC").Find(&items).Error
	return items, err
}
