package service

import (
	"fmt"
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService 聚合报表：营业汇总、库存总览、低库存预警、台账导出。
type ReportService struct {
	saleRepo  *repository.SaleRepository
	stockRepo *repository.StockRepository
	storeRepo *repository.StoreRepository
	db        *gorm.DB
}

func NewReportService(saleRepo *repository.SaleRepository, stockRepo *repository.StockRepository, storeRepo *repository.StoreRepository, db *gorm.DB) *ReportService {
	return &ReportService{saleRepo: saleRepo, stockRepo: stockRepo, storeRepo: storeRepo, db: db}
}

type SalesSummary struct {
	From  time.Time               `json:"from"`
	To    time.Time               `json:"to"`
	Total float64                 `json:"total"`
	Cash  float64                 `json:"cash"`
	Card  float64                 `json:"card"`
	Daily []repository.DailyTotal `json:"daily"`
}

func (s *ReportService) SalesSummary(storeID string, from, to time.Time) (*SalesSummary, error) {
	daily, err := s.saleRepo.DailyTotals(storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("aggregate sales: %w", err)
	}
	summary := &SalesSummary{From: from, To: to, Daily: daily}
	for _, d := range daily {
		summary.Total += d.Total
		summary.Cash += d.Cash
		summary.Card += d.Card
	}
	return summary, nil
}

type StockOverview struct {
	Stores   []repository.StoreTotal `json:"stores"`
	LowStock []entity.StockEntry     `json:"low_stock"`
}

func (s *ReportService) StockOverview() (*StockOverview, error) {
	totals, err := s.stockRepo.StoreTotals()
	if err != nil {
		return nil, fmt.Errorf("store totals: %w", err)
	}
	low, _, err := s.stockRepo.List(repository.StockListParams{LowStock: true, Size: 200})
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	return &StockOverview{Stores: totals, LowStock: low}, nil
}

// ExportStock 导出全量库存台账为 xlsx。
func (s *ReportService) ExportStock() (*excelize.File, string, error) {
	var entries []entity.StockEntry
	if err := s.db.Preload("Product").Preload("Store").
		Order("updated_at DESC").Find(&entries).Error; err != nil {
		return nil, "", fmt.Errorf("load stock: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Stock"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Store", "Product", "Unit", "Quantity", "Min Level", "Low"}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s1", col)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, entry := range entries {
		row := i + 2
		storeName, productName, unit := "", "", ""
		var minLevel float64
		if entry.Store != nil {
			storeName = entry.Store.Name
		}
		if entry.Product != nil {
			productName = entry.Product.Name
			unit = entry.Product.Unit
			minLevel = entry.Product.MinStockLevel
		}
		low := ""
		if minLevel > 0 && entry.Quantity < minLevel {
			low = "YES"
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), storeName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), productName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), unit)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), minLevel)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), low)
	}

	f.SetColWidth(sheet, "A", "B", 24)
	f.SetColWidth(sheet, "C", "F", 12)

	fileName := fmt.Sprintf("stock-%s.xlsx", time.Now().Format("20060102"))
	return f, fileName, nil
}
