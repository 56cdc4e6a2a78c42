package service

import (
	"github.com/bitmarket/storehub/internal/config"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services 服务集合
type Services struct {
	Auth       *AuthService
	Catalog    *CatalogService
	Location   *LocationService
	Stock      *StockService
	Assignment *AssignmentService
	Transfer   *TransferService
	Request    *RequestService
	Supplier   *SupplierService
	Finance    *FinanceService
	Wastage    *WastageService
	Report     *ReportService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, minioClient *minio.Client, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, rdb, cfg),
		Catalog:    NewCatalogService(repos.Product, repos.Stock, db),
		Location:   NewLocationService(repos.Store),
		Stock:      NewStockService(repos.Stock),
		Assignment: NewAssignmentService(repos.Product, repos.Store, repos.Stock, repos.Transfer, db, logger),
		Transfer:   NewTransferService(repos.Transfer),
		Request:    NewRequestService(repos.Request, minioClient, cfg.MinIO.Bucket),
		Supplier:   NewSupplierService(repos.Supplier),
		Finance:    NewFinanceService(repos.Sale, repos.Purchase, repos.Expense),
		Wastage:    NewWastageService(repos.Wastage, repos.Stock, db),
		Report:     NewReportService(repos.Sale, repos.Stock, repos.Store, db),
	}
}
