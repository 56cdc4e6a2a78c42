package handler

import (
	"net/http"
	"testing"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/bitmarket/storehub/internal/retail/testutil"
)

func setupRequestTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	requestRepo := repository.NewRequestRepository(db)
	svc := service.NewRequestService(requestRepo, nil, "")
	handler := NewRequestHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/requests", handler.List)
	api.POST("/requests", handler.Create)
	api.GET("/requests/:id", handler.Get)
	api.PUT("/requests/:id/items", handler.UpdateItems)
	api.POST("/requests/:id/approve", handler.Approve)
	api.POST("/requests/:id/reject", handler.Reject)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestRequestCreateEmpty tests that a request with neither items nor a
// receipt image is rejected.
func TestRequestCreateEmpty(t *testing.T) {
	env := setupRequestTest(t)
	token := testutil.DefaultTestToken()
	store := testutil.SeedTestStore(t, env.DB, "门店", false)

	body := map[string]interface{}{
		"store_id": store.ID,
		"items": []map[string]interface{}{
			{"description": "   ", "quantity": 3},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 10005 {
		t.Fatalf("expected code 10005, got %v", resp["code"])
	}
}

// TestRequestReceiptOnly tests that a receipt image alone is enough payload.
func TestRequestReceiptOnly(t *testing.T) {
	env := setupRequestTest(t)
	token := testutil.DefaultTestToken()
	store := testutil.SeedTestStore(t, env.DB, "门店", false)

	body := map[string]interface{}{
		"store_id":      store.ID,
		"receipt_image": "receipts/2026/08/01/abc123.jpg",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

// TestRequestApprovalFlow tests the state machine: created PENDING,
// approved exactly once, frozen afterwards.
func TestRequestApprovalFlow(t *testing.T) {
	env := setupRequestTest(t)
	token := testutil.DefaultTestToken()
	store := testutil.SeedTestStore(t, env.DB, "门店", false)

	body := map[string]interface{}{
		"store_id": store.ID,
		"date":     "2026-08-20",
		"items": []map[string]interface{}{
			{"description": "鸡蛋", "quantity": 30, "unit": "piece"},
			{"description": "面粉", "quantity": 2, "unit": "pack"},
		},
		"note": "周末备货",
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["status"] != entity.RequestStatusPending {
		t.Fatalf("expected PENDING, got %v", data["status"])
	}
	requestID := data["id"].(string)

	// Edit items while pending is allowed
	w2 := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/requests/"+requestID+"/items", map[string]interface{}{
		"items": []map[string]interface{}{
			{"description": "鸡蛋", "quantity": 60, "unit": "piece"},
		},
	}, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}

	// Approve
	w3 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests/"+requestID+"/approve", nil, token)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	resp3 := testutil.ParseResponse(w3)
	data3 := resp3["data"].(map[string]interface{})
	if data3["status"] != entity.RequestStatusApproved {
		t.Fatalf("expected APPROVED, got %v", data3["status"])
	}
	if data3["reviewed_by"] != "test-user-001" {
		t.Fatalf("expected reviewer recorded, got %v", data3["reviewed_by"])
	}
	if data3["reviewed_at"] == nil {
		t.Fatalf("expected reviewed_at set")
	}

	// Second approval is rejected
	w4 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests/"+requestID+"/approve", nil, token)
	if w4.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w4.Code, w4.Body.String())
	}

	// Rejecting an approved request is also rejected
	w5 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests/"+requestID+"/reject", nil, token)
	if w5.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w5.Code, w5.Body.String())
	}

	// Editing a terminal request is rejected
	w6 := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/requests/"+requestID+"/items", map[string]interface{}{
		"items": []map[string]interface{}{
			{"description": "改不了", "quantity": 1},
		},
	}, token)
	if w6.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w6.Code, w6.Body.String())
	}
	resp6 := testutil.ParseResponse(w6)
	if resp6["code"].(float64) != 40903 {
		t.Fatalf("expected code 40903, got %v", resp6["code"])
	}
}

// TestRequestReject tests the PENDING to REJECTED transition.
func TestRequestReject(t *testing.T) {
	env := setupRequestTest(t)
	token := testutil.DefaultTestToken()
	store := testutil.SeedTestStore(t, env.DB, "门店", false)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", map[string]interface{}{
		"store_id": store.ID,
		"items": []map[string]interface{}{
			{"description": "可乐", "quantity": 24},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	requestID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests/"+requestID+"/reject", nil, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}

	var stored entity.ProductRequest
	env.DB.Where("id = ?", requestID).First(&stored)
	if stored.Status != entity.RequestStatusRejected {
		t.Fatalf("expected REJECTED, got %s", stored.Status)
	}
}

// TestRequestListByStatus tests the status filter on the request list.
func TestRequestListByStatus(t *testing.T) {
	env := setupRequestTest(t)
	token := testutil.DefaultTestToken()
	store := testutil.SeedTestStore(t, env.DB, "门店", false)

	for _, desc := range []string{"一", "二", "三"} {
		w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/requests", map[string]interface{}{
			"store_id": store.ID,
			"items":    []map[string]interface{}{{"description": desc, "quantity": 1}},
		}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/requests?status=PENDING&store_id="+store.ID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	total := resp["data"].(map[string]interface{})["total"].(float64)
	if total != 3 {
		t.Fatalf("expected 3 pending requests, got %v", total)
	}
}
