package entity

import "gorm.io/gorm"

// AutoMigrate 自动迁移所有表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 基础数据
		&Store{},
		&Product{},
		&Supplier{},
		&User{},

		// 库存
		&StockEntry{},
		&StockTransfer{},

		// 请货
		&ProductRequest{},

		// 经营流水
		&Sale{},
		&Purchase{},
		&Expense{},
		&Wastage{},
	)
}
