package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-admin-api/internal/domain"
	"content-admin-api/internal/form"
)

// fixedKeyResolver maps URLs under a known prefix back to keys
type fixedKeyResolver struct{ prefix string }

func (r fixedKeyResolver) KeyFromURL(url string) (string, bool) {
	if strings.HasPrefix(url, r.prefix) {
		return strings.TrimPrefix(url, r.prefix), true
	}
	return "", false
}

// recordingRevalidator captures requested site paths
type recordingRevalidator struct {
	Paths []string
	Err   error
}

func (r *recordingRevalidator) RevalidatePaths(ctx context.Context, paths []string) error {
	r.Paths = append(r.Paths, paths...)
	return r.Err
}

func newTestContentStore(categoryRepo *MockCategoryRepository, projectRepo *MockProjectRepository, uploadRepo *MockUploadRepository) *ContentStore {
	logger, _ := zap.NewDevelopment()
	return NewContentStore(categoryRepo, projectRepo, uploadRepo,
		fixedKeyResolver{prefix: "https://bucket.s3.amazonaws.com/"},
		&MockContentCache{}, &recordingRevalidator{}, logger)
}

func TestContentStore_FetchCategory_MapsNotFound(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Category, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	store := newTestContentStore(categoryRepo, &MockProjectRepository{}, &MockUploadRepository{})

	_, err := store.FetchCategory(context.Background(), 999)

	if !errors.Is(err, form.ErrNotFound) {
		t.Errorf("expected form.ErrNotFound, got %v", err)
	}
}

func TestContentStore_FetchCategory_FloorsLists(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Category, error) {
			return &domain.Category{BaseModel: domain.BaseModel{ID: id}, Name: "Cloud", Slug: "cloud"}, nil
		},
	}
	store := newTestContentStore(categoryRepo, &MockProjectRepository{}, &MockUploadRepository{})

	draft, err := store.FetchCategory(context.Background(), 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(draft.Paragraphs) != 1 || draft.Paragraphs[0] != "" {
		t.Errorf("empty stored list should become a single blank row: %v", draft.Paragraphs)
	}
}

func TestContentStore_UpdateCategory_DuplicateSlug(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		ExistsBySlugFunc: func(ctx context.Context, slug string, excludeID uint) (bool, error) {
			return true, nil
		},
	}
	store := newTestContentStore(categoryRepo, &MockProjectRepository{}, &MockUploadRepository{})

	err := store.UpdateCategory(context.Background(), 1, form.CategoryPayload{
		Name: "Cloud",
		Slug: "taken",
	})

	if err == nil || err.Error() != "A category with this slug already exists" {
		t.Errorf("expected a user-facing slug error, got %v", err)
	}
}

func TestContentStore_UpdateCategory_ConfirmsUploads(t *testing.T) {
	var confirmed []string
	uploadRepo := &MockUploadRepository{
		ConfirmByFileKeysFunc: func(ctx context.Context, fileKeys []string) error {
			confirmed = fileKeys
			return nil
		},
	}
	store := newTestContentStore(&MockCategoryRepository{}, &MockProjectRepository{}, uploadRepo)

	err := store.UpdateCategory(context.Background(), 1, form.CategoryPayload{
		Name:           "Cloud",
		Slug:           "cloud",
		ThumbnailImage: "https://bucket.s3.amazonaws.com/content/category/2026/08/thumb.png",
		OGImage:        "https://elsewhere.example.com/external.png",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0] != "content/category/2026/08/thumb.png" {
		t.Errorf("only the bucket-hosted image should be confirmed: %v", confirmed)
	}
}

func TestContentStore_UpdateProject_CategoryGone(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Category, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	store := newTestContentStore(categoryRepo, &MockProjectRepository{}, &MockUploadRepository{})

	err := store.UpdateProject(context.Background(), 1, form.ProjectPayload{
		CategoryID: 99,
		Name:       "Rebuild",
		Slug:       "rebuild",
	})

	if err == nil || err.Error() != "The selected category no longer exists" {
		t.Errorf("expected a user-facing category error, got %v", err)
	}
}

func TestContentStore_UpdateProject_PersistsPayload(t *testing.T) {
	var saved *domain.Project
	projectRepo := &MockProjectRepository{
		UpdateFunc: func(ctx context.Context, project *domain.Project) error {
			saved = project
			return nil
		},
	}
	store := newTestContentStore(&MockCategoryRepository{}, projectRepo, &MockUploadRepository{})

	err := store.UpdateProject(context.Background(), 1, form.ProjectPayload{
		CategoryID:      3,
		Name:            "Rebuild",
		Slug:            "rebuild",
		HeroParagraphs:  []string{"only real text"},
		RelatedProjects: []int64{10},
		IsActive:        true,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("update was not persisted")
	}
	if saved.CategoryID != 3 || saved.Name != "Rebuild" {
		t.Errorf("payload not applied: %+v", saved)
	}
	if len(saved.HeroParagraphs) != 1 || saved.HeroParagraphs[0] != "only real text" {
		t.Errorf("hero paragraphs not applied: %v", saved.HeroParagraphs)
	}
}

func TestContentStore_UpdateProject_RequestsRevalidation(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	revalidator := &recordingRevalidator{}
	store := NewContentStore(&MockCategoryRepository{}, &MockProjectRepository{}, &MockUploadRepository{},
		fixedKeyResolver{prefix: "https://bucket.s3.amazonaws.com/"},
		&MockContentCache{}, revalidator, logger)

	err := store.UpdateProject(context.Background(), 1, form.ProjectPayload{
		CategoryID: 3,
		Name:       "Rebuild",
		Slug:       "rebuild",
		IsActive:   true,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revalidator.Paths) != 2 || revalidator.Paths[0] != "/" || revalidator.Paths[1] != "/projects/rebuild" {
		t.Errorf("unexpected revalidated paths: %v", revalidator.Paths)
	}
}

func TestContentStore_UpdateCategory_RevalidationFailureIsNonFatal(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	revalidator := &recordingRevalidator{Err: errors.New("site unreachable")}
	store := NewContentStore(&MockCategoryRepository{}, &MockProjectRepository{}, &MockUploadRepository{},
		fixedKeyResolver{prefix: "https://bucket.s3.amazonaws.com/"},
		&MockContentCache{}, revalidator, logger)

	err := store.UpdateCategory(context.Background(), 1, form.CategoryPayload{
		Name:     "Cloud",
		Slug:     "cloud",
		IsActive: true,
	})

	if err != nil {
		t.Fatalf("expected save to succeed despite revalidation failure, got %v", err)
	}
}
