package handler

import (
	"time"

	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

// Handlers HTTP处理器集合
type Handlers struct {
	Auth       *AuthHandler
	Product    *ProductHandler
	Store      *StoreHandler
	Stock      *StockHandler
	Assignment *AssignmentHandler
	Transfer   *TransferHandler
	Request    *RequestHandler
	Supplier   *SupplierHandler
	Finance    *FinanceHandler
	Wastage    *WastageHandler
	Report     *ReportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(services.Auth),
		Product:    NewProductHandler(services.Catalog),
		Store:      NewStoreHandler(services.Location),
		Stock:      NewStockHandler(services.Stock),
		Assignment: NewAssignmentHandler(services.Assignment),
		Transfer:   NewTransferHandler(services.Transfer),
		Request:    NewRequestHandler(services.Request),
		Supplier:   NewSupplierHandler(services.Supplier),
		Finance:    NewFinanceHandler(services.Finance),
		Wastage:    NewWastageHandler(services.Wastage),
		Report:     NewReportHandler(services.Report),
	}
}

// parseDateQuery 解析 YYYY-MM-DD 查询参数，空串返回 nil。
func parseDateQuery(c *gin.Context, key string) *time.Time {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
