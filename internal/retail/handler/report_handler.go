package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bitmarket/storehub/internal/retail/service"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Sales(c *gin.Context) {
	to := time.Now().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -30)
	if t := parseDateQuery(c, "date_from"); t != nil {
		from = *t
	}
	if t := parseDateQuery(c, "date_to"); t != nil {
		to = *t
	}
	summary, err := h.svc.SalesSummary(c.Query("store_id"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": summary})
}

func (h *ReportHandler) Stock(c *gin.Context) {
	overview, err := h.svc.StockOverview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": overview})
}

// ExportStock 库存台账 xlsx 下载
func (h *ReportHandler) ExportStock(c *gin.Context) {
	f, fileName, err := h.svc.ExportStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
