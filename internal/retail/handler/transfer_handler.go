package handler

import (
	"net/http"
	"strconv"

	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	svc *service.TransferService
}

func NewTransferHandler(svc *service.TransferService) *TransferHandler {
	return &TransferHandler{svc: svc}
}

func (h *TransferHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.TransferListParams{
		ToStoreID:   c.Query("to_store_id"),
		FromStoreID: c.Query("from_store_id"),
		ProductID:   c.Query("product_id"),
		DateFrom:    parseDateQuery(c, "date_from"),
		DateTo:      parseDateQuery(c, "date_to"),
		Page:        page,
		Size:        size,
	}
	items, total, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

// Latest 某门店最近一次收到的调拨
func (h *TransferHandler) Latest(c *gin.Context) {
	transfer, err := h.svc.LatestByStore(c.Param("store_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": transfer})
}
