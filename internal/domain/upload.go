package domain

import (
	"time"
)

// UploadStatus represents the lifecycle status of an uploaded image.
type UploadStatus string

const (
	UploadStatusTemp      UploadStatus = "TEMP"      // uploaded but not yet referenced by a saved record
	UploadStatusConfirmed UploadStatus = "CONFIRMED" // referenced by a submitted draft
)

// Upload tracks an image pushed to object storage from the admin editor.
// FileKey stores the S3 key only; public URLs are derived by the client layer.
// Temporary uploads that were never confirmed expire and are removed by the
// cleanup job.
type Upload struct {
	BaseModel
	TargetField string       `gorm:"type:varchar(100);not null" json:"target_field"`
	Status      UploadStatus `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_uploads_status" json:"status"`
	FileName    string       `gorm:"type:varchar(255);not null" json:"file_name"`
	FileKey     string       `gorm:"type:text;not null" json:"file_key"`
	ContentType string       `gorm:"type:varchar(100);not null" json:"content_type"`
	SizeBytes   int64        `gorm:"not null" json:"size_bytes"`
	UploadedBy  string       `gorm:"type:varchar(255)" json:"uploaded_by"`
	ExpiresAt   *time.Time   `gorm:"type:timestamp;index:idx_uploads_expires_at" json:"expires_at"`
}

// TableName specifies the table name for Upload
func (Upload) TableName() string {
	return "uploads"
}
