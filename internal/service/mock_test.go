package service

import (
	"context"
	"io"

	"content-admin-api/internal/domain"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	CreateFunc       func(ctx context.Context, category *domain.Category) error
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Category, error)
	FindBySlugFunc   func(ctx context.Context, slug string) (*domain.Category, error)
	FindAllFunc      func(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	FindHomepageFunc func(ctx context.Context) ([]*domain.Category, error)
	ExistsBySlugFunc func(ctx context.Context, slug string, excludeID uint) (bool, error)
	UpdateFunc       func(ctx context.Context, category *domain.Category) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.Category{BaseModel: domain.BaseModel{ID: id}, Name: "Cloud", Slug: "cloud", IsActive: true}, nil
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return &domain.Category{BaseModel: domain.BaseModel{ID: 1}, Name: "Cloud", Slug: slug, IsActive: true}, nil
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindHomepage(ctx context.Context) ([]*domain.Category, error) {
	if m.FindHomepageFunc != nil {
		return m.FindHomepageFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc           func(ctx context.Context, project *domain.Project) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Project, error)
	FindBySlugFunc       func(ctx context.Context, slug string) (*domain.Project, error)
	FindAllFunc          func(ctx context.Context, activeOnly bool) ([]*domain.Project, error)
	FindByCategoryIDFunc func(ctx context.Context, categoryID uint, activeOnly bool) ([]*domain.Project, error)
	FindFeaturedFunc     func(ctx context.Context) ([]*domain.Project, error)
	FindByIDsFunc        func(ctx context.Context, ids []int64) ([]*domain.Project, error)
	ExistsBySlugFunc     func(ctx context.Context, slug string, excludeID uint) (bool, error)
	UpdateFunc           func(ctx context.Context, project *domain.Project) error
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &domain.Project{BaseModel: domain.BaseModel{ID: id}, CategoryID: 1, Name: "Rebuild", Slug: "rebuild", IsActive: true}, nil
}

func (m *MockProjectRepository) FindBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return &domain.Project{BaseModel: domain.BaseModel{ID: 1}, CategoryID: 1, Name: "Rebuild", Slug: slug, IsActive: true}, nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context, activeOnly bool) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByCategoryID(ctx context.Context, categoryID uint, activeOnly bool) ([]*domain.Project, error) {
	if m.FindByCategoryIDFunc != nil {
		return m.FindByCategoryIDFunc(ctx, categoryID, activeOnly)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindFeatured(ctx context.Context) ([]*domain.Project, error) {
	if m.FindFeaturedFunc != nil {
		return m.FindFeaturedFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Project, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	projects := make([]*domain.Project, 0, len(ids))
	for _, id := range ids {
		projects = append(projects, &domain.Project{BaseModel: domain.BaseModel{ID: uint(id)}, CategoryID: 1, IsActive: true})
	}
	return projects, nil
}

func (m *MockProjectRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockUploadRepository is a mock implementation of UploadRepository
type MockUploadRepository struct {
	CreateFunc            func(ctx context.Context, upload *domain.Upload) error
	FindByIDFunc          func(ctx context.Context, id uint) (*domain.Upload, error)
	FindExpiredTempFunc   func(ctx context.Context) ([]*domain.Upload, error)
	ConfirmByFileKeysFunc func(ctx context.Context, fileKeys []string) error
	DeleteBatchFunc       func(ctx context.Context, ids []uint) error
}

func (m *MockUploadRepository) Create(ctx context.Context, upload *domain.Upload) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, upload)
	}
	return nil
}

func (m *MockUploadRepository) FindByID(ctx context.Context, id uint) (*domain.Upload, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUploadRepository) FindExpiredTemp(ctx context.Context) ([]*domain.Upload, error) {
	if m.FindExpiredTempFunc != nil {
		return m.FindExpiredTempFunc(ctx)
	}
	return nil, nil
}

func (m *MockUploadRepository) ConfirmByFileKeys(ctx context.Context, fileKeys []string) error {
	if m.ConfirmByFileKeysFunc != nil {
		return m.ConfirmByFileKeysFunc(ctx, fileKeys)
	}
	return nil
}

func (m *MockUploadRepository) DeleteBatch(ctx context.Context, ids []uint) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}

// MockContentCache is an in-memory ContentCache for tests
type MockContentCache struct {
	GetFunc         func(ctx context.Context, key string, dest interface{}) bool
	SetFunc         func(ctx context.Context, key string, value interface{})
	Invalidated     []string
	InvalidateCalls int
}

func (m *MockContentCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return false
}

func (m *MockContentCache) Set(ctx context.Context, key string, value interface{}) {
	if m.SetFunc != nil {
		m.SetFunc(ctx, key, value)
	}
}

func (m *MockContentCache) Invalidate(ctx context.Context, keys ...string) {
	m.InvalidateCalls++
	m.Invalidated = append(m.Invalidated, keys...)
}

// MockImageStorage is a mock implementation of ImageStorage
type MockImageStorage struct {
	GenerateFileKeyFunc func(entityType, fileName string) string
	UploadFileFunc      func(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	GetFileURLFunc      func(key string) string
	UploadCalls         int
}

func (m *MockImageStorage) GenerateFileKey(entityType, fileName string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(entityType, fileName)
	}
	return "content/" + entityType + "/2026/08/" + fileName
}

func (m *MockImageStorage) UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	m.UploadCalls++
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, body, contentType)
	}
	return "https://bucket.s3.amazonaws.com/" + key, nil
}

func (m *MockImageStorage) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://bucket.s3.amazonaws.com/" + key
}
