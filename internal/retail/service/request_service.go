package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmarket/storehub/internal/retail/entity"
	"github.com/bitmarket/storehub/internal/retail/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// RequestService 门店请货单。状态机 PENDING → APPROVED|REJECTED，终态不可再动。
type RequestService struct {
	requestRepo *repository.RequestRepository
	minioClient *minio.Client
	bucketName  string
}

func NewRequestService(requestRepo *repository.RequestRepository, minioClient *minio.Client, bucketName string) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

type CreateRequestRequest struct {
	StoreID      string               `json:"store_id" binding:"required"`
	Date         string               `json:"date"` // YYYY-MM-DD，缺省今天
	Items        []entity.RequestItem `json:"items"`
	ReceiptImage string               `json:"receipt_image"`
	Note         string               `json:"note"`
}

// hasContent 校验请货单有效载荷：至少一条非空描述的明细，或附带小票图片。
func hasContent(items []entity.RequestItem, receiptImage string) bool {
	if strings.TrimSpace(receiptImage) != "" {
		return true
	}
	for _, item := range items {
		if strings.TrimSpace(item.Description) != "" {
			return true
		}
	}
	return false
}

func (s *RequestService) Create(req CreateRequestRequest, userID string) (*entity.ProductRequest, error) {
	if !hasContent(req.Items, req.ReceiptImage) {
		return nil, ErrRequestEmpty
	}

	date := time.Now().Truncate(24 * time.Hour)
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		date = t
	}

	request := &entity.ProductRequest{
		ID:           uuid.New().String(),
		Date:         date,
		StoreID:      req.StoreID,
		Status:       entity.RequestStatusPending,
		Items:        req.Items,
		ReceiptImage: req.ReceiptImage,
		Note:         req.Note,
		CreatedBy:    userID,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return request, nil
}

func (s *RequestService) Get(id string) (*entity.ProductRequest, error) {
	return s.requestRepo.GetByID(id)
}

func (s *RequestService) List(params repository.RequestListParams) ([]entity.ProductRequest, int64, error) {
	return s.requestRepo.List(params)
}

// UpdateItems 审批前改写明细。终态单据拒绝编辑。
func (s *RequestService) UpdateItems(id string, items []entity.RequestItem) (*entity.ProductRequest, error) {
	request, err := s.requestRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("request not found: %w", err)
	}
	if request.Status != entity.RequestStatusPending {
		return nil, ErrRequestNotPending
	}
	if !hasContent(items, request.ReceiptImage) {
		return nil, ErrRequestEmpty
	}
	request.Items = items
	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("update request items: %w", err)
	}
	return request, nil
}

func (s *RequestService) Approve(id, userID string) (*entity.ProductRequest, error) {
	return s.transition(id, userID, entity.RequestStatusApproved)
}

func (s *RequestService) Reject(id, userID string) (*entity.ProductRequest, error) {
	return s.transition(id, userID, entity.RequestStatusRejected)
}

// transition 只允许从 PENDING 出发；审批是纯状态标记，不触发库存分配。
func (s *RequestService) transition(id, userID, target string) (*entity.ProductRequest, error) {
	request, err := s.requestRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("request not found: %w", err)
	}
	if request.Status != entity.RequestStatusPending {
		return nil, ErrRequestNotPending
	}
	now := time.Now()
	request.Status = target
	request.ReviewedBy = userID
	request.ReviewedAt = &now
	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}
	return request, nil
}

// UploadReceipt 上传小票图片到对象存储，返回对象名供请货单引用。
func (s *RequestService) UploadReceipt(ctx context.Context, reader io.Reader, fileName string, fileSize int64, contentType string) (string, error) {
	if s.minioClient == nil {
		return "", fmt.Errorf("object storage is not configured")
	}
	objectName := fmt.Sprintf("receipts/%s/%s%s",
		time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))
	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload receipt: %w", err)
	}
	return objectName, nil
}

// ReceiptObject 读取小票图片对象
func (s *RequestService) ReceiptObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	object, err := s.minioClient.GetObject(ctx, s.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return object, nil
}
