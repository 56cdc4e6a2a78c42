package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmarket/storehub/internal/config"
	"github.com/bitmarket/storehub/internal/middleware"
	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/handler"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting storehub service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to auto-migrate tables", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	rdb := initRedis(cfg.Redis)
	minioClient, err := initMinIO(cfg.MinIO)
	if err != nil {
		zapLogger.Warn("MinIO unavailable, receipt uploads disabled", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, rdb, minioClient, cfg, zapLogger)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "storehub"})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "storehub"})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "storehub",
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := router.Group("/api/v1")

	// 认证
	auth := v1.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/refresh", handlers.Auth.Refresh)
		auth.POST("/logout", handlers.Auth.Logout)
		auth.GET("/me", middleware.JWTAuth(cfg.JWT.Secret), handlers.Auth.Me)
	}

	api := v1.Group("")
	api.Use(middleware.JWTAuth(cfg.JWT.Secret))
	{
		// 商品目录
		products := api.Group("/products")
		{
			products.GET("", handlers.Product.List)
			products.POST("", middleware.RequireRole("manager"), handlers.Product.Create)
			products.POST("/with-stock", middleware.RequireRole("manager"), handlers.Product.CreateWithStock)
			products.GET("/:id", handlers.Product.Get)
			products.PUT("/:id", middleware.RequireRole("manager"), handlers.Product.Update)
			products.DELETE("/:id", middleware.RequireRole(), handlers.Product.Delete)
		}

		// 门店
		stores := api.Group("/stores")
		{
			stores.GET("", handlers.Store.List)
			stores.POST("", middleware.RequireRole(), handlers.Store.Create)
			stores.GET("/:id", handlers.Store.Get)
			stores.PUT("/:id", middleware.RequireRole(), handlers.Store.Update)
			stores.PUT("/:id/central", middleware.RequireRole(), handlers.Store.SetCentral)
			stores.DELETE("/:id", middleware.RequireRole(), handlers.Store.Delete)
		}

		// 库存台账
		stock := api.Group("/stock")
		{
			stock.GET("", handlers.Stock.List)
			stock.GET("/product/:product_id", handlers.Stock.ByProduct)
			stock.POST("/adjust", middleware.RequireRole("manager"), handlers.Stock.Adjust)
			stock.PUT("/set", middleware.RequireRole(), handlers.Assignment.SetQuantity)
		}

		// 配货
		api.POST("/assignments", middleware.RequireRole(), handlers.Assignment.Commit)

		// 调拨流水
		transfers := api.Group("/transfers")
		{
			transfers.GET("", handlers.Transfer.List)
			transfers.GET("/latest/:store_id", handlers.Transfer.Latest)
		}

		// 请货
		requests := api.Group("/requests")
		{
			requests.GET("", handlers.Request.List)
			requests.POST("", handlers.Request.Create)
			requests.POST("/receipt", handlers.Request.UploadReceipt)
			requests.GET("/:id", handlers.Request.Get)
			requests.PUT("/:id/items", middleware.RequireRole(), handlers.Request.UpdateItems)
			requests.POST("/:id/approve", middleware.RequireRole(), handlers.Request.Approve)
			requests.POST("/:id/reject", middleware.RequireRole(), handlers.Request.Reject)
		}

		// 供应商
		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", handlers.Supplier.List)
			suppliers.POST("", middleware.RequireRole("manager"), handlers.Supplier.Create)
			suppliers.GET("/:id", handlers.Supplier.Get)
			suppliers.PUT("/:id", middleware.RequireRole("manager"), handlers.Supplier.Update)
			suppliers.DELETE("/:id", middleware.RequireRole(), handlers.Supplier.Delete)
		}

		// 经营流水
		sales := api.Group("/sales")
		{
			sales.GET("", handlers.Finance.ListSales)
			sales.POST("", handlers.Finance.RecordSale)
			sales.DELETE("/:id", middleware.RequireRole("manager"), handlers.Finance.DeleteSale)
		}
		purchases := api.Group("/purchases")
		{
			purchases.GET("", handlers.Finance.ListPurchases)
			purchases.POST("", handlers.Finance.RecordPurchase)
			purchases.DELETE("/:id", middleware.RequireRole("manager"), handlers.Finance.DeletePurchase)
		}
		expenses := api.Group("/expenses")
		{
			expenses.GET("", handlers.Finance.ListExpenses)
			expenses.POST("", handlers.Finance.RecordExpense)
			expenses.DELETE("/:id", middleware.RequireRole("manager"), handlers.Finance.DeleteExpense)
		}
		wastages := api.Group("/wastages")
		{
			wastages.GET("", handlers.Wastage.List)
			wastages.POST("", handlers.Wastage.Record)
		}

		// 员工
		users := api.Group("/users")
		users.Use(middleware.RequireRole())
		{
			users.GET("", handlers.Auth.ListUsers)
			users.POST("", handlers.Auth.CreateUser)
			users.PUT("/:id", handlers.Auth.UpdateUser)
			users.DELETE("/:id", handlers.Auth.DeleteUser)
		}

		// 报表
		reports := api.Group("/reports")
		{
			reports.GET("/sales", handlers.Report.Sales)
			reports.GET("/stock", handlers.Report.Stock)
			reports.GET("/stock/export", handlers.Report.ExportStock)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func initMinIO(cfg config.MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is not configured")
	}
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}
