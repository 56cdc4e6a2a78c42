package service

import (
	"errors"
	"testing"

	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/testutil"
)

func setupCatalogTest(t *testing.T) (*CatalogService, *repository.StockRepository, *testutil.TestEnv) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	productRepo := repository.NewProductRepository(db)
	stockRepo := repository.NewStockRepository(db)
	svc := NewCatalogService(productRepo, stockRepo, db)
	return svc, stockRepo, &testutil.TestEnv{DB: db, T: t}
}

// TestCatalogCreateDefaultsUnit tests that an omitted unit falls back to piece.
func TestCatalogCreateDefaultsUnit(t *testing.T) {
	svc, _, _ := setupCatalogTest(t)

	p, err := svc.Create(CreateProductRequest{Name: "无单位商品"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Unit != "piece" {
		t.Fatalf("expected unit piece, got %s", p.Unit)
	}
}

// TestCatalogInvalidUnit tests that an unknown unit is rejected.
func TestCatalogInvalidUnit(t *testing.T) {
	svc, _, _ := setupCatalogTest(t)

	_, err := svc.Create(CreateProductRequest{Name: "坏单位", Unit: "bushel"})
	if !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

// TestCatalogCreateWithStock tests that the product and its initial stock
// land together.
func TestCatalogCreateWithStock(t *testing.T) {
	svc, stockRepo, env := setupCatalogTest(t)
	store := testutil.SeedTestStore(t, env.DB, "中心仓", true)

	p, err := svc.CreateWithStock(CreateProductWithStockRequest{
		CreateProductRequest: CreateProductRequest{Name: "带库存商品", Unit: "kg", SellingPrice: 9.9},
		InitialQuantity:      25,
		StoreID:              store.ID,
	})
	if err != nil {
		t.Fatalf("CreateWithStock failed: %v", err)
	}

	qty, err := stockRepo.Quantity(p.ID, store.ID)
	if err != nil {
		t.Fatalf("Quantity failed: %v", err)
	}
	if qty != 25 {
		t.Fatalf("expected initial stock 25, got %v", qty)
	}
}

// TestCatalogCreateWithZeroStock tests that zero initial quantity leaves no
// ledger row behind.
func TestCatalogCreateWithZeroStock(t *testing.T) {
	svc, stockRepo, env := setupCatalogTest(t)
	store := testutil.SeedTestStore(t, env.DB, "中心仓", true)

	p, err := svc.CreateWithStock(CreateProductWithStockRequest{
		CreateProductRequest: CreateProductRequest{Name: "零库存商品"},
		InitialQuantity:      0,
		StoreID:              store.ID,
	})
	if err != nil {
		t.Fatalf("CreateWithStock failed: %v", err)
	}

	qty, _ := stockRepo.Quantity(p.ID, store.ID)
	if qty != 0 {
		t.Fatalf("expected 0, got %v", qty)
	}
}
