package repository

import (
	"context"
	"testing"
	"time"

	"content-admin-api/internal/domain"
)

func TestUploadRepository_FindExpiredTemp(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewUploadRepository(db)
	ctx := context.Background()

	past := time.Now().Add(-2 * time.Hour)
	future := time.Now().Add(2 * time.Hour)

	expired := &domain.Upload{
		TargetField: "thumbnail_image",
		Status:      domain.UploadStatusTemp,
		FileName:    "expired.png",
		FileKey:     "content/project/2026/08/expired.png",
		ContentType: "image/png",
		SizeBytes:   1024,
		ExpiresAt:   &past,
	}
	valid := &domain.Upload{
		TargetField: "og_image",
		Status:      domain.UploadStatusTemp,
		FileName:    "valid.png",
		FileKey:     "content/project/2026/08/valid.png",
		ContentType: "image/png",
		SizeBytes:   2048,
		ExpiresAt:   &future,
	}
	confirmed := &domain.Upload{
		TargetField: "thumbnail_image",
		Status:      domain.UploadStatusConfirmed,
		FileName:    "confirmed.png",
		FileKey:     "content/project/2026/08/confirmed.png",
		ContentType: "image/png",
		SizeBytes:   4096,
		ExpiresAt:   &past,
	}
	for _, u := range []*domain.Upload{expired, valid, confirmed} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("failed to create upload: %v", err)
		}
	}

	found, err := repo.FindExpiredTemp(ctx)
	if err != nil {
		t.Fatalf("FindExpiredTemp failed: %v", err)
	}
	if len(found) != 1 || found[0].FileName != "expired.png" {
		t.Errorf("expected only the expired temp upload, got %d", len(found))
	}
}

func TestUploadRepository_ConfirmByFileKeys(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewUploadRepository(db)
	ctx := context.Background()

	future := time.Now().Add(2 * time.Hour)
	upload := &domain.Upload{
		TargetField: "thumbnail_image",
		Status:      domain.UploadStatusTemp,
		FileName:    "hero.png",
		FileKey:     "content/category/2026/08/hero.png",
		ContentType: "image/png",
		SizeBytes:   1024,
		ExpiresAt:   &future,
	}
	if err := repo.Create(ctx, upload); err != nil {
		t.Fatalf("failed to create upload: %v", err)
	}

	if err := repo.ConfirmByFileKeys(ctx, []string{upload.FileKey}); err != nil {
		t.Fatalf("ConfirmByFileKeys failed: %v", err)
	}

	found, err := repo.FindByID(ctx, upload.ID)
	if err != nil {
		t.Fatalf("failed to reload upload: %v", err)
	}
	if found.Status != domain.UploadStatusConfirmed {
		t.Errorf("expected CONFIRMED, got %s", found.Status)
	}
	if found.ExpiresAt != nil {
		t.Error("expiry should be cleared on confirm")
	}

	// Empty input is a no-op
	if err := repo.ConfirmByFileKeys(ctx, nil); err != nil {
		t.Errorf("empty confirm should not fail: %v", err)
	}
}

func TestUploadRepository_DeleteBatch(t *testing.T) {
	db := setupContentTestDB(t)
	repo := NewUploadRepository(db)
	ctx := context.Background()

	var ids []uint
	for _, name := range []string{"a.png", "b.png"} {
		u := &domain.Upload{
			TargetField: "og_image",
			Status:      domain.UploadStatusTemp,
			FileName:    name,
			FileKey:     "content/project/2026/08/" + name,
			ContentType: "image/png",
			SizeBytes:   512,
		}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("failed to create upload: %v", err)
		}
		ids = append(ids, u.ID)
	}

	if err := repo.DeleteBatch(ctx, ids); err != nil {
		t.Fatalf("DeleteBatch failed: %v", err)
	}

	for _, id := range ids {
		if _, err := repo.FindByID(ctx, id); err == nil {
			t.Errorf("upload %d should be deleted", id)
		}
	}
}
