package handler

import (
	"net/http"
	"testing"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/bitmarket/storehub/internal/retail/testutil"
	"go.uber.org/zap"
)

func setupAssignmentTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	productRepo := repository.NewProductRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	stockRepo := repository.NewStockRepository(db)
	transferRepo := repository.NewTransferRepository(db)

	svc := service.NewAssignmentService(productRepo, storeRepo, stockRepo, transferRepo, db, zap.NewNop())
	handler := NewAssignmentHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	api.POST("/assignments", handler.Commit)
	api.PUT("/stock/set", handler.SetQuantity)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestAssignmentCommit tests that a committed row adjusts hub and store
// ledgers and logs one transfer per allocation.
func TestAssignmentCommit(t *testing.T) {
	env := setupAssignmentTest(t)
	token := testutil.DefaultTestToken()

	hub := testutil.SeedTestStore(t, env.DB, "中心仓", true)
	store := testutil.SeedTestStore(t, env.DB, "东门店", false)
	product := testutil.SeedTestProduct(t, env.DB, "矿泉水", 2.5)
	testutil.SeedStock(t, env.DB, product.ID, hub.ID, 10)

	body := map[string]interface{}{
		"date": "2026-08-01",
		"rows": []map[string]interface{}{
			{
				"product_id":   product.ID,
				"incoming_qty": 10,
				"allocations": []map[string]interface{}{
					{"store_id": store.ID, "quantity": 6},
				},
			},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/assignments", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	rows := resp["data"].(map[string]interface{})["rows"].([]interface{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row result, got %d", len(rows))
	}
	if rows[0].(map[string]interface{})["outcome"] != "COMMITTED" {
		t.Fatalf("expected COMMITTED, got %v", rows[0].(map[string]interface{})["outcome"])
	}

	// Hub: 10 + 10 incoming - 6 distributed = 14
	if got := testutil.StockQty(t, env.DB, product.ID, hub.ID); got != 14 {
		t.Fatalf("expected hub qty 14, got %v", got)
	}
	if got := testutil.StockQty(t, env.DB, product.ID, store.ID); got != 6 {
		t.Fatalf("expected store qty 6, got %v", got)
	}

	var transfers []entity.StockTransfer
	env.DB.Where("product_id = ?", product.ID).Find(&transfers)
	if len(transfers) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(transfers))
	}
	if transfers[0].FromStoreID != hub.ID || transfers[0].ToStoreID != store.ID || transfers[0].Quantity != 6 {
		t.Fatalf("unexpected transfer: %+v", transfers[0])
	}
}

// TestAssignmentNewProductRow tests that a row with new product fields
// creates the product and distributes from zero hub stock.
func TestAssignmentNewProductRow(t *testing.T) {
	env := setupAssignmentTest(t)
	token := testutil.DefaultTestToken()

	hub := testutil.SeedTestStore(t, env.DB, "中心仓", true)
	storeA := testutil.SeedTestStore(t, env.DB, "A店", false)
	storeB := testutil.SeedTestStore(t, env.DB, "B店", false)

	body := map[string]interface{}{
		"rows": []map[string]interface{}{
			{
				"new_product": map[string]interface{}{
					"name":          "新到牛奶",
					"unit":          "box",
					"selling_price": 55,
				},
				"incoming_qty": 20,
				"allocations": []map[string]interface{}{
					{"store_id": storeA.ID, "quantity": 5},
					{"store_id": storeB.ID, "quantity": 5},
				},
			},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/assignments", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	rows := resp["data"].(map[string]interface{})["rows"].([]interface{})
	productID := rows[0].(map[string]interface{})["product_id"].(string)

	var product entity.Product
	if err := env.DB.Where("id = ?", productID).First(&product).Error; err != nil {
		t.Fatalf("expected product created: %v", err)
	}
	if product.Name != "新到牛奶" || product.Unit != "box" {
		t.Fatalf("unexpected product: %+v", product)
	}

	// Hub: 0 + 20 - 10 = 10
	if got := testutil.StockQty(t, env.DB, productID, hub.ID); got != 10 {
		t.Fatalf("expected hub qty 10, got %v", got)
	}
	if got := testutil.StockQty(t, env.DB, productID, storeA.ID); got != 5 {
		t.Fatalf("expected store A qty 5, got %v", got)
	}
	if got := testutil.StockQty(t, env.DB, productID, storeB.ID); got != 5 {
		t.Fatalf("expected store B qty 5, got %v", got)
	}

	var count int64
	env.DB.Model(&entity.StockTransfer{}).Where("product_id = ?", productID).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 transfers, got %d", count)
	}
}

// TestAssignmentPartialFailure tests that a failing row keeps earlier rows
// committed, marks itself FAILED and aborts the remaining rows.
func TestAssignmentPartialFailure(t *testing.T) {
	env := setupAssignmentTest(t)
	token := testutil.DefaultTestToken()

	hub := testutil.SeedTestStore(t, env.DB, "中心仓", true)
	store := testutil.SeedTestStore(t, env.DB, "门店", false)
	good := testutil.SeedTestProduct(t, env.DB, "好货", 1)
	bad := testutil.SeedTestProduct(t, env.DB, "缺货", 1)
	third := testutil.SeedTestProduct(t, env.DB, "后续", 1)
	testutil.SeedStock(t, env.DB, good.ID, hub.ID, 10)
	testutil.SeedStock(t, env.DB, bad.ID, hub.ID, 2)
	testutil.SeedStock(t, env.DB, third.ID, hub.ID, 10)

	body := map[string]interface{}{
		"rows": []map[string]interface{}{
			{
				"product_id": good.ID,
				"allocations": []map[string]interface{}{
					{"store_id": store.ID, "quantity": 4},
				},
			},
			{
				// hub has 2, distributing 5 must fail
				"product_id": bad.ID,
				"allocations": []map[string]interface{}{
					{"store_id": store.ID, "quantity": 5},
				},
			},
			{
				"product_id": third.ID,
				"allocations": []map[string]interface{}{
					{"store_id": store.ID, "quantity": 1},
				},
			},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/assignments", body, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	rows := resp["data"].(map[string]interface{})["rows"].([]interface{})
	if len(rows) != 3 {
		t.Fatalf("expected 3 row results, got %d", len(rows))
	}
	outcomes := []string{}
	for _, r := range rows {
		outcomes = append(outcomes, r.(map[string]interface{})["outcome"].(string))
	}
	if outcomes[0] != "COMMITTED" || outcomes[1] != "FAILED" || outcomes[2] != "ABORTED" {
		t.Fatalf("unexpected outcomes: %v", outcomes)
	}

	// Row 1 stays committed
	if got := testutil.StockQty(t, env.DB, good.ID, store.ID); got != 4 {
		t.Fatalf("expected committed row store qty 4, got %v", got)
	}
	if got := testutil.StockQty(t, env.DB, good.ID, hub.ID); got != 6 {
		t.Fatalf("expected committed row hub qty 6, got %v", got)
	}
	// Failed row left untouched
	if got := testutil.StockQty(t, env.DB, bad.ID, hub.ID); got != 2 {
		t.Fatalf("expected failed row hub qty 2, got %v", got)
	}
	// Aborted row left untouched
	if got := testutil.StockQty(t, env.DB, third.ID, hub.ID); got != 10 {
		t.Fatalf("expected aborted row hub qty 10, got %v", got)
	}
}

// TestAssignmentEmptyMatrix tests that an all-blank matrix is rejected.
func TestAssignmentEmptyMatrix(t *testing.T) {
	env := setupAssignmentTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestStore(t, env.DB, "中心仓", true)

	body := map[string]interface{}{
		"rows": []map[string]interface{}{
			{"incoming_qty": 3},
			{"new_product": map[string]interface{}{"name": "   "}},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/assignments", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 10004 {
		t.Fatalf("expected code 10004, got %v", resp["code"])
	}
}

// TestAssignmentNoHub tests that committing without a configured hub fails.
func TestAssignmentNoHub(t *testing.T) {
	env := setupAssignmentTest(t)
	token := testutil.DefaultTestToken()

	store := testutil.SeedTestStore(t, env.DB, "独立门店", false)
	product := testutil.SeedTestProduct(t, env.DB, "商品", 1)

	body := map[string]interface{}{
		"rows": []map[string]interface{}{
			{
				"product_id":   product.ID,
				"incoming_qty": 5,
				"allocations": []map[string]interface{}{
					{"store_id": store.ID, "quantity": 1},
				},
			},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/assignments", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

// TestSetQuantity tests the single-product direct quantity edit including
// the zero-delta no-op and the reverse transfer on decrease.
func TestSetQuantity(t *testing.T) {
	env := setupAssignmentTest(t)
	token := testutil.DefaultTestToken()

	hub := testutil.SeedTestStore(t, env.DB, "中心仓", true)
	store := testutil.SeedTestStore(t, env.DB, "门店", false)
	product := testutil.SeedTestProduct(t, env.DB, "面粉", 8)
	testutil.SeedStock(t, env.DB, product.ID, hub.ID, 20)

	// 0 → 8: hub loses 8, one hub→store transfer
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/stock/set", map[string]interface{}{
		"product_id": product.ID,
		"store_id":   store.ID,
		"quantity":   8,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := testutil.StockQty(t, env.DB, product.ID, hub.ID); got != 12 {
		t.Fatalf("expected hub qty 12, got %v", got)
	}
	if got := testutil.StockQty(t, env.DB, product.ID, store.ID); got != 8 {
		t.Fatalf("expected store qty 8, got %v", got)
	}

	// 8 → 8: no ledger writes, no transfer
	w2 := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/stock/set", map[string]interface{}{
		"product_id": product.ID,
		"store_id":   store.ID,
		"quantity":   8,
	}, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	resp2 := testutil.ParseResponse(w2)
	if resp2["data"].(map[string]interface{})["changed"].(bool) {
		t.Fatalf("expected changed=false on zero delta")
	}
	var count int64
	env.DB.Model(&entity.StockTransfer{}).Where("product_id = ?", product.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 transfer after no-op, got %d", count)
	}

	// 8 → 3: negative delta returns 5 to the hub, store→hub transfer
	w3 := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/stock/set", map[string]interface{}{
		"product_id": product.ID,
		"store_id":   store.ID,
		"quantity":   3,
	}, token)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	if got := testutil.StockQty(t, env.DB, product.ID, hub.ID); got != 17 {
		t.Fatalf("expected hub qty 17, got %v", got)
	}
	if got := testutil.StockQty(t, env.DB, product.ID, store.ID); got != 3 {
		t.Fatalf("expected store qty 3, got %v", got)
	}

	var last entity.StockTransfer
	env.DB.Where("product_id = ?", product.ID).Order("created_at DESC").First(&last)
	if last.FromStoreID != store.ID || last.ToStoreID != hub.ID || last.Quantity != 5 {
		t.Fatalf("expected store→hub transfer of 5, got %+v", last)
	}
}
