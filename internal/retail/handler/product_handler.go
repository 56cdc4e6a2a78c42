package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc *service.CatalogService
}

func NewProductHandler(svc *service.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.ProductListParams{
		Keyword: c.Query("keyword"),
		Unit:    c.Query("unit"),
		Page:    page,
		Size:    size,
	}
	items, total, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": product})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	product, err := h.svc.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUnit) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10003, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": product})
}

func (h *ProductHandler) CreateWithStock(c *gin.Context) {
	var req service.CreateProductWithStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	product, err := h.svc.CreateWithStock(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUnit) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10003, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	product, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUnit) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10003, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
