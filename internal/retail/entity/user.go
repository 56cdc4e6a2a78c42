package entity

import (
	"time"
)

// Role 用户角色
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User 员工账号
type User struct {
	ID              string     `json:"id" gorm:"primaryKey;size:36"`
	Username        string     `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Name            string     `json:"name" gorm:"size:100;not null"`
	PasswordHash    string     `json:"-" gorm:"size:100;not null"`
	Role            string     `json:"role" gorm:"size:20;not null;default:staff"`
	AssignedStoreID string     `json:"assigned_store_id" gorm:"size:36"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at" gorm:"index"`

	AssignedStore *Store `json:"assigned_store,omitempty" gorm:"foreignKey:AssignedStoreID"`
}

func (User) TableName() string {
	return "users"
}
