package repository

import "gorm.io/gorm"

// Repositories 仓储集合
type Repositories struct {
	Product  *ProductRepository
	Store    *StoreRepository
	Stock    *StockRepository
	Transfer *TransferRepository
	Request  *RequestRepository
	Supplier *SupplierRepository
	User     *UserRepository
	Sale     *SaleRepository
	Purchase *PurchaseRepository
	Expense  *ExpenseRepository
	Wastage  *WastageRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Product:  NewProductRepository(db),
		Store:    NewStoreRepository(db),
		Stock:    NewStockRepository(db),
		Transfer: NewTransferRepository(db),
		Request:  NewRequestRepository(db),
		Supplier: NewSupplierRepository(db),
		User:     NewUserRepository(db),
		Sale:     NewSaleRepository(db),
		Purchase: NewPurchaseRepository(db),
		Expense:  NewExpenseRepository(db),
		Wastage:  NewWastageRepository(db),
	}
}
