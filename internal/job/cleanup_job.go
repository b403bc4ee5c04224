package job

import (
	"context"

	"go.uber.org/zap"

	"content-admin-api/internal/client"
	"content-admin-api/internal/metrics"
	"content-admin-api/internal/repository"
)

// CleanupJob removes expired TEMP uploads: editor images that were pushed to
// object storage but whose owning draft was never submitted.
type CleanupJob struct {
	uploadRepo repository.UploadRepository
	s3Client   client.S3ClientInterface
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	uploadRepo repository.UploadRepository,
	s3Client client.S3ClientInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		uploadRepo: uploadRepo,
		s3Client:   s3Client,
		metrics:    m,
		logger:     logger,
	}
}

// Run finds all expired TEMP upload records, deletes their objects from
// storage and removes the records. A record whose object delete fails is kept
// so the next run retries it.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	expired, err := j.uploadRepo.FindExpiredTemp(ctx)
	if err != nil {
		j.logger.Error("Failed to find expired temporary uploads", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		return
	}

	j.logger.Info("Found expired temporary uploads", zap.Int("count", len(expired)))

	var deletedIDs []uint
	failCount := 0

	for _, upload := range expired {
		if err := j.s3Client.DeleteFile(ctx, upload.FileKey); err != nil {
			j.logger.Error("Failed to delete object from storage",
				zap.Uint("upload_id", upload.ID),
				zap.String("file_key", upload.FileKey),
				zap.Error(err),
			)
			failCount++
			continue
		}

		deletedIDs = append(deletedIDs, upload.ID)

		j.logger.Debug("Deleted object from storage",
			zap.Uint("upload_id", upload.ID),
			zap.String("file_key", upload.FileKey),
		)
	}

	if len(deletedIDs) > 0 {
		if err := j.uploadRepo.DeleteBatch(ctx, deletedIDs); err != nil {
			j.logger.Error("Failed to delete upload records",
				zap.Int("count", len(deletedIDs)),
				zap.Error(err),
			)
		} else if j.metrics != nil {
			j.metrics.AddUploadsCleaned(len(deletedIDs))
		}
	}

	j.logger.Info("Upload cleanup completed",
		zap.Int("total_expired", len(expired)),
		zap.Int("deleted", len(deletedIDs)),
		zap.Int("failed", failCount),
	)
}
