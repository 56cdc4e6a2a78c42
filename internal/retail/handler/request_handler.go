package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	svc *service.RequestService
}

func NewRequestHandler(svc *service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.RequestListParams{
		StoreID:  c.Query("store_id"),
		Status:   c.Query("status"),
		DateFrom: parseDateQuery(c, "date_from"),
		DateTo:   parseDateQuery(c, "date_to"),
		Page:     page,
		Size:     size,
	}
	items, total, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

func (h *RequestHandler) Get(c *gin.Context) {
	request, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": request})
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	request, err := h.svc.Create(req, c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrRequestEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10005, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": request})
}

type updateItemsRequest struct {
	Items []entity.RequestItem `json:"items" binding:"required"`
}

func (h *RequestHandler) UpdateItems(c *gin.Context) {
	var req updateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	request, err := h.svc.UpdateItems(c.Param("id"), req.Items)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotPending):
			c.JSON(http.StatusConflict, gin.H{"code": 40903, "message": err.Error()})
		case errors.Is(err, service.ErrRequestEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10005, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": request})
}

func (h *RequestHandler) Approve(c *gin.Context) {
	h.transition(c, h.svc.Approve)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	h.transition(c, h.svc.Reject)
}

func (h *RequestHandler) transition(c *gin.Context, fn func(id, userID string) (*entity.ProductRequest, error)) {
	request, err := fn(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrRequestNotPending) {
			c.JSON(http.StatusConflict, gin.H{"code": 40903, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": request})
}

// UploadReceipt 小票图片上传，返回对象名。
func (h *RequestHandler) UploadReceipt(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "file is required"})
		return
	}
	defer file.Close()

	objectName, err := h.svc.UploadReceipt(
		c.Request.Context(), file, header.Filename, header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"receipt_image": objectName}})
}
