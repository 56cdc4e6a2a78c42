package handler

import (
	"net/http"
	"strconv"

	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	svc *service.FinanceService
}

func NewFinanceHandler(svc *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// --- 营业记录 ---

func (h *FinanceHandler) ListSales(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.SaleListParams{
		StoreID:  c.Query("store_id"),
		Shift:    c.Query("shift"),
		DateFrom: parseDateQuery(c, "date_from"),
		DateTo:   parseDateQuery(c, "date_to"),
		Page:     page,
		Size:     size,
	}
	items, total, err := h.svc.ListSales(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

func (h *FinanceHandler) RecordSale(c *gin.Context) {
	var req service.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	sale, err := h.svc.RecordSale(req, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": sale})
}

func (h *FinanceHandler) DeleteSale(c *gin.Context) {
	if err := h.svc.DeleteSale(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// --- 采购 ---

func (h *FinanceHandler) ListPurchases(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.PurchaseListParams{
		StoreID:    c.Query("store_id"),
		SupplierID: c.Query("supplier_id"),
		DateFrom:   parseDateQuery(c, "date_from"),
		DateTo:     parseDateQuery(c, "date_to"),
		Page:       page,
		Size:       size,
	}
	items, total, err := h.svc.ListPurchases(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

func (h *FinanceHandler) RecordPurchase(c *gin.Context) {
	var req service.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	purchase, err := h.svc.RecordPurchase(req, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": purchase})
}

func (h *FinanceHandler) DeletePurchase(c *gin.Context) {
	if err := h.svc.DeletePurchase(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// --- 支出 ---

func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.ExpenseListParams{
		StoreID:  c.Query("store_id"),
		Category: c.Query("category"),
		DateFrom: parseDateQuery(c, "date_from"),
		DateTo:   parseDateQuery(c, "date_to"),
		Page:     page,
		Size:     size,
	}
	items, total, err := h.svc.ListExpenses(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

func (h *FinanceHandler) RecordExpense(c *gin.Context) {
	var req service.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	expense, err := h.svc.RecordExpense(req, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": expense})
}

func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	if err := h.svc.DeleteExpense(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
