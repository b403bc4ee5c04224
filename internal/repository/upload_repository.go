package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"content-admin-api/internal/domain"
)

// UploadRepository defines the interface for upload record data access
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) error
	FindByID(ctx context.Context, id uint) (*domain.Upload, error)
	FindExpiredTemp(ctx context.Context) ([]*domain.Upload, error)
	ConfirmByFileKeys(ctx context.Context, fileKeys []string) error
	DeleteBatch(ctx context.Context, ids []uint) error
}

// uploadRepositoryImpl is the GORM implementation of UploadRepository
type uploadRepositoryImpl struct {
	db *gorm.DB
}

// NewUploadRepository creates a new instance of UploadRepository
func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepositoryImpl{db: db}
}

// Create creates a new upload record
func (r *uploadRepositoryImpl) Create(ctx context.Context, upload *domain.Upload) error {
	if err := r.db.WithContext(ctx).Create(upload).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an upload record by its ID
func (r *uploadRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Upload, error) {
	var upload domain.Upload
	if err := r.db.WithContext(ctx).First(&upload, id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

// FindExpiredTemp finds all temporary uploads past their expiration time
func (r *uploadRepositoryImpl) FindExpiredTemp(ctx context.Context) ([]*domain.Upload, error) {
	var uploads []*domain.Upload
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", domain.UploadStatusTemp, time.Now()).
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

// ConfirmByFileKeys marks the uploads holding the given file keys as
// confirmed and clears their expiry. Called when a draft referencing the
// stored URLs is submitted.
func (r *uploadRepositoryImpl) ConfirmByFileKeys(ctx context.Context, fileKeys []string) error {
	if len(fileKeys) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Model(&domain.Upload{}).
		Where("file_key IN ? AND status = ?", fileKeys, domain.UploadStatusTemp).
		Updates(map[string]interface{}{
			"status":     domain.UploadStatusConfirmed,
			"expires_at": nil,
		}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteBatch deletes multiple upload records by their IDs
func (r *uploadRepositoryImpl) DeleteBatch(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Upload{}).Error; err != nil {
		return err
	}
	return nil
}
