package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	svc *service.AssignmentService
}

func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

type commitAssignmentRequest struct {
	Date string                  `json:"date"` // YYYY-MM-DD，缺省今天
	Rows []service.AssignmentRow `json:"rows" binding:"required,min=1"`
}

// Commit 提交分配矩阵。部分失败时返回 409，携带逐行结果。
func (h *AssignmentHandler) Commit(c *gin.Context) {
	var req commitAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	date := time.Now().Truncate(24 * time.Hour)
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid date"})
			return
		}
		date = t
	}

	results, err := h.svc.Commit(req.Rows, date, c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAssignment), errors.Is(err, service.ErrHubNotConfigured):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		default:
			c.JSON(http.StatusConflict, gin.H{"code": 40902, "message": err.Error(), "data": gin.H{"rows": results}})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"rows": results}})
}

type setQuantityRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	StoreID   string  `json:"store_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"gte=0"`
	Date      string  `json:"date"`
}

// SetQuantity 单品单店直改数量。
func (h *AssignmentHandler) SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	date := time.Now().Truncate(24 * time.Hour)
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid date"})
			return
		}
		date = t
	}
	result, err := h.svc.SetStoreQuantity(req.ProductID, req.StoreID, req.Quantity, date)
	if err != nil {
		if errors.Is(err, service.ErrHubNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": result})
}
