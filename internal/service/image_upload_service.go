package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-admin-api/internal/domain"
	"content-admin-api/internal/dto"
	"content-admin-api/internal/form"
	"content-admin-api/internal/metrics"
	"content-admin-api/internal/repository"
	"content-admin-api/internal/response"
)

// tempUploadTTL is how long an unconfirmed upload survives before the cleanup
// job removes it and its object.
const tempUploadTTL = 24 * time.Hour

// ImageStorage is the object storage surface the upload service needs.
// Implemented by the S3 client.
type ImageStorage interface {
	GenerateFileKey(entityType, fileName string) string
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	GetFileURL(key string) string
}

// ImageUploadService pushes editor-selected images to object storage and
// tracks each one as a TEMP upload record until the owning draft is submitted.
type ImageUploadService struct {
	storage    ImageStorage
	uploadRepo repository.UploadRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewImageUploadService creates a new ImageUploadService
func NewImageUploadService(storage ImageStorage, uploadRepo repository.UploadRepository, m *metrics.Metrics, logger *zap.Logger) *ImageUploadService {
	return &ImageUploadService{
		storage:    storage,
		uploadRepo: uploadRepo,
		metrics:    m,
		logger:     logger,
	}
}

// GetUpload fetches a stored upload record by ID along with its public URL.
func (s *ImageUploadService) GetUpload(ctx context.Context, id uint) (*dto.UploadResponse, error) {
	record, err := s.uploadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Upload not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch upload", err.Error())
	}

	url := ""
	if s.storage != nil {
		url = s.storage.GetFileURL(record.FileKey)
	}
	resp := dto.ToUploadResponse(record, url)
	return &resp, nil
}

// imageUploaderFunc adapts a closure to form.ImageUploader
type imageUploaderFunc func(ctx context.Context, f form.File) (string, error)

func (fn imageUploaderFunc) UploadImage(ctx context.Context, f form.File) (string, error) {
	return fn(ctx, f)
}

// Uploader binds the service to one entity type, target field and uploader
// identity, yielding the collaborator an upload adapter expects.
func (s *ImageUploadService) Uploader(entityType, targetField, uploadedBy string) form.ImageUploader {
	return imageUploaderFunc(func(ctx context.Context, f form.File) (string, error) {
		return s.upload(ctx, entityType, targetField, uploadedBy, f)
	})
}

func (s *ImageUploadService) upload(ctx context.Context, entityType, targetField, uploadedBy string, f form.File) (string, error) {
	if s.storage == nil {
		return "", errors.New("object storage is not configured")
	}

	key := s.storage.GenerateFileKey(entityType, f.Name)
	url, err := s.storage.UploadFile(ctx, key, f.Body, f.ContentType)
	if err != nil {
		s.logger.Error("Image upload to storage failed",
			zap.String("entity_type", entityType),
			zap.String("target_field", targetField),
			zap.String("file_key", key),
			zap.Error(err),
		)
		return "", err
	}

	expiresAt := time.Now().Add(tempUploadTTL)
	record := &domain.Upload{
		TargetField: targetField,
		Status:      domain.UploadStatusTemp,
		FileName:    f.Name,
		FileKey:     key,
		ContentType: f.ContentType,
		SizeBytes:   f.Size,
		UploadedBy:  uploadedBy,
		ExpiresAt:   &expiresAt,
	}
	if err := s.uploadRepo.Create(ctx, record); err != nil {
		// The object exists either way; the cleanup job cannot see it
		// without a record, so log loudly.
		s.logger.Error("Failed to record upload, orphaned object in storage",
			zap.String("file_key", key),
			zap.Error(err),
		)
	}

	if s.metrics != nil {
		s.metrics.IncrementImageUploaded(entityType)
	}
	s.logger.Info("Image uploaded",
		zap.String("entity_type", entityType),
		zap.String("target_field", targetField),
		zap.String("file_key", key),
		zap.Int64("size_bytes", f.Size),
	)
	return url, nil
}
