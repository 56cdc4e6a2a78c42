package service

import (
	"fmt"
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/google/uuid"
)

// FinanceService 经营流水：班次营业、采购、支出。
type FinanceService struct {
	saleRepo     *repository.SaleRepository
	purchaseRepo *repository.PurchaseRepository
	expenseRepo  *repository.ExpenseRepository
}

func NewFinanceService(saleRepo *repository.SaleRepository, purchaseRepo *repository.PurchaseRepository, expenseRepo *repository.ExpenseRepository) *FinanceService {
	return &FinanceService{saleRepo: saleRepo, purchaseRepo: purchaseRepo, expenseRepo: expenseRepo}
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %w", err)
	}
	return t, nil
}

// --- 营业记录 ---

type RecordSaleRequest struct {
	StoreID     string  `json:"store_id" binding:"required"`
	Date        string  `json:"date"`
	Shift       string  `json:"shift"`
	TotalAmount float64 `json:"total_amount" binding:"gte=0"`
	CashAmount  float64 `json:"cash_amount" binding:"gte=0"`
	CardAmount  float64 `json:"card_amount" binding:"gte=0"`
	Notes       string  `json:"notes"`
}

func (s *FinanceService) RecordSale(req RecordSaleRequest, userID string) (*entity.Sale, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	shift := req.Shift
	if shift == "" {
		shift = entity.ShiftMorning
	}
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		StoreID:     req.StoreID,
		Date:        date,
		Shift:       shift,
		TotalAmount: req.TotalAmount,
		CashAmount:  req.CashAmount,
		CardAmount:  req.CardAmount,
		RecordedBy:  userID,
		Notes:       req.Notes,
	}
	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}
	return sale, nil
}

func (s *FinanceService) ListSales(params repository.SaleListParams) ([]entity.Sale, int64, error) {
	return s.saleRepo.List(params)
}

func (s *FinanceService) DeleteSale(id string) error {
	return s.saleRepo.Delete(id)
}

// --- 采购 ---

type RecordPurchaseRequest struct {
	SupplierID string  `json:"supplier_id"`
	StoreID    string  `json:"store_id" binding:"required"`
	Date       string  `json:"date"`
	InvoiceNo  string  `json:"invoice_no"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Notes      string  `json:"notes"`
}

func (s *FinanceService) RecordPurchase(req RecordPurchaseRequest, userID string) (*entity.Purchase, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		SupplierID: req.SupplierID,
		StoreID:    req.StoreID,
		Date:       date,
		InvoiceNo:  req.InvoiceNo,
		Amount:     req.Amount,
		Notes:      req.Notes,
		CreatedBy:  userID,
	}
	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}
	return purchase, nil
}

func (s *FinanceService) ListPurchases(params repository.PurchaseListParams) ([]entity.Purchase, int64, error) {
	return s.purchaseRepo.List(params)
}

func (s *FinanceService) DeletePurchase(id string) error {
	return s.purchaseRepo.Delete(id)
}

// --- 支出 ---

type RecordExpenseRequest struct {
	StoreID     string  `json:"store_id" binding:"required"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Description string  `json:"description"`
}

func (s *FinanceService) RecordExpense(req RecordExpenseRequest, userID string) (*entity.Expense, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		StoreID:     req.StoreID,
		Date:        date,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("record expense: %w", err)
	}
	return expense, nil
}

func (s *FinanceService) ListExpenses(params repository.ExpenseListParams) ([]entity.Expense, int64, error) {
	return s.expenseRepo.List(params)
}

func (s *FinanceService) DeleteExpense(id string) error {
	return s.expenseRepo.Delete(id)
}
