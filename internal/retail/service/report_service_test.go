package service

import (
	"testing"
	"time"

	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/testutil"
)

func setupReportTest(t *testing.T) (*FinanceService, *ReportService, *testutil.TestEnv) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	stockRepo := repository.NewStockRepository(db)
	storeRepo := repository.NewStoreRepository(db)

	finance := NewFinanceService(saleRepo, purchaseRepo, expenseRepo)
	report := NewReportService(saleRepo, stockRepo, storeRepo, db)
	return finance, report, &testutil.TestEnv{DB: db, T: t}
}

// TestSalesSummary tests daily aggregation of morning and evening shifts
// across the report window.
func TestSalesSummary(t *testing.T) {
	finance, report, env := setupReportTest(t)
	store := testutil.SeedTestStore(t, env.DB, "门店", false)

	sales := []RecordSaleRequest{
		{StoreID: store.ID, Date: "2026-08-10", Shift: "MORNING", TotalAmount: 100, CashAmount: 60, CardAmount: 40},
		{StoreID: store.ID, Date: "2026-08-10", Shift: "EVENING", TotalAmount: 150, CashAmount: 50, CardAmount: 100},
		{StoreID: store.ID, Date: "2026-08-11", Shift: "MORNING", TotalAmount: 80, CashAmount: 80},
		// outside the window, must not count
		{StoreID: store.ID, Date: "2026-09-01", Shift: "MORNING", TotalAmount: 999},
	}
	for _, req := range sales {
		if _, err := finance.RecordSale(req, "test-user-001"); err != nil {
			t.Fatalf("RecordSale failed: %v", err)
		}
	}

	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-31")
	summary, err := report.SalesSummary(store.ID, from, to)
	if err != nil {
		t.Fatalf("SalesSummary failed: %v", err)
	}

	if summary.Total != 330 {
		t.Fatalf("expected total 330, got %v", summary.Total)
	}
	if summary.Cash != 190 || summary.Card != 140 {
		t.Fatalf("expected cash 190 card 140, got cash %v card %v", summary.Cash, summary.Card)
	}
	// Two distinct days inside the window
	if len(summary.Daily) != 2 {
		t.Fatalf("expected 2 daily rows, got %d", len(summary.Daily))
	}
	if summary.Daily[0].Total != 250 {
		t.Fatalf("expected first day total 250, got %v", summary.Daily[0].Total)
	}
}

// TestStockOverview tests per-store totals and low stock listing.
func TestStockOverview(t *testing.T) {
	_, report, env := setupReportTest(t)

	storeA := testutil.SeedTestStore(t, env.DB, "A店", false)
	storeB := testutil.SeedTestStore(t, env.DB, "B店", false)
	p1 := testutil.SeedTestProduct(t, env.DB, "商品一", 1)
	p2 := testutil.SeedTestProduct(t, env.DB, "商品二", 2)
	testutil.SeedStock(t, env.DB, p1.ID, storeA.ID, 10)
	testutil.SeedStock(t, env.DB, p2.ID, storeA.ID, 5)
	testutil.SeedStock(t, env.DB, p1.ID, storeB.ID, 3)

	overview, err := report.StockOverview()
	if err != nil {
		t.Fatalf("StockOverview failed: %v", err)
	}
	if len(overview.Stores) != 2 {
		t.Fatalf("expected totals for 2 stores, got %d", len(overview.Stores))
	}
	for _, st := range overview.Stores {
		switch st.StoreID {
		case storeA.ID:
			if st.Products != 2 || st.Quantity != 15 {
				t.Fatalf("unexpected store A totals: %+v", st)
			}
		case storeB.ID:
			if st.Products != 1 || st.Quantity != 3 {
				t.Fatalf("unexpected store B totals: %+v", st)
			}
		}
	}
}
