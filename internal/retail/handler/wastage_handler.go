package handler

import (
	"net/http"
	"strconv"

	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

type WastageHandler struct {
	svc *service.WastageService
}

func NewWastageHandler(svc *service.WastageService) *WastageHandler {
	return &WastageHandler{svc: svc}
}

func (h *WastageHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.WastageListParams{
		StoreID:   c.Query("store_id"),
		ProductID: c.Query("product_id"),
		DateFrom:  parseDateQuery(c, "date_from"),
		DateTo:    parseDateQuery(c, "date_to"),
		Page:      page,
		Size:      size,
	}
	items, total, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

func (h *WastageHandler) Record(c *gin.Context) {
	var req service.RecordWastageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	wastage, err := h.svc.Record(req, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": wastage})
}
