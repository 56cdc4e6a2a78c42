package service

import (
	"testing"

	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/testutil"
)

// TestWastageRecordDeductsStock tests that recording wastage deducts the
// store ledger in the same transaction.
func TestWastageRecordDeductsStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	wastageRepo := repository.NewWastageRepository(db)
	stockRepo := repository.NewStockRepository(db)
	svc := NewWastageService(wastageRepo, stockRepo, db)

	store := testutil.SeedTestStore(t, db, "门店", false)
	product := testutil.SeedTestProduct(t, db, "酸奶", 6)
	testutil.SeedStock(t, db, product.ID, store.ID, 12)

	w, err := svc.Record(RecordWastageRequest{
		StoreID:   store.ID,
		ProductID: product.ID,
		Date:      "2026-08-10",
		Quantity:  3,
		Reason:    "过期",
	}, "test-user-001")
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if w.ID == "" {
		t.Fatalf("expected wastage ID assigned")
	}

	qty, err := stockRepo.Quantity(product.ID, store.ID)
	if err != nil {
		t.Fatalf("Quantity failed: %v", err)
	}
	if qty != 9 {
		t.Fatalf("expected 9 after wastage, got %v", qty)
	}
}

// TestWastageListByStore tests the store filter on the wastage list.
func TestWastageListByStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	wastageRepo := repository.NewWastageRepository(db)
	stockRepo := repository.NewStockRepository(db)
	svc := NewWastageService(wastageRepo, stockRepo, db)

	storeA := testutil.SeedTestStore(t, db, "A店", false)
	storeB := testutil.SeedTestStore(t, db, "B店", false)
	product := testutil.SeedTestProduct(t, db, "面包", 4)
	testutil.SeedStock(t, db, product.ID, storeA.ID, 10)
	testutil.SeedStock(t, db, product.ID, storeB.ID, 10)

	for _, storeID := range []string{storeA.ID, storeA.ID, storeB.ID} {
		if _, err := svc.Record(RecordWastageRequest{
			StoreID:   storeID,
			ProductID: product.ID,
			Quantity:  1,
			Reason:    "破损",
		}, "test-user-001"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	_, total, err := svc.List(repository.WastageListParams{StoreID: storeA.ID})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 wastage records for store A, got %d", total)
	}
}
