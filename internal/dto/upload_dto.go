package dto

import (
	"time"

	"content-admin-api/internal/domain"
)

// UploadResponse represents a stored image upload
type UploadResponse struct {
	UploadID    uint       `json:"uploadId" example:"7"`
	TargetField string     `json:"targetField" example:"thumbnail_image"`
	FileName    string     `json:"fileName" example:"hero.png"`
	URL         string     `json:"url" example:"https://bucket.s3.amazonaws.com/content/project/2026/08/hero.png"`
	ContentType string     `json:"contentType" example:"image/png"`
	SizeBytes   int64      `json:"sizeBytes" example:"204800"`
	Status      string     `json:"status" example:"TEMP"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToUploadResponse converts a domain upload with its resolved public URL
func ToUploadResponse(u *domain.Upload, url string) UploadResponse {
	return UploadResponse{
		UploadID:    u.ID,
		TargetField: u.TargetField,
		FileName:    u.FileName,
		URL:         url,
		ContentType: u.ContentType,
		SizeBytes:   u.SizeBytes,
		Status:      string(u.Status),
		ExpiresAt:   u.ExpiresAt,
		CreatedAt:   u.CreatedAt,
	}
}
