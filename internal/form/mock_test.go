package form

import (
	"context"
	"time"
)

// MockCategoryStore is a mock implementation of CategoryStore
type MockCategoryStore struct {
	FetchCategoryFunc  func(ctx context.Context, id uint) (*CategoryDraft, error)
	UpdateCategoryFunc func(ctx context.Context, id uint, p CategoryPayload) error
}

func (m *MockCategoryStore) FetchCategory(ctx context.Context, id uint) (*CategoryDraft, error) {
	if m.FetchCategoryFunc != nil {
		return m.FetchCategoryFunc(ctx, id)
	}
	return &CategoryDraft{Paragraphs: []string{""}, Regions: []string{""}, IsActive: true, ShowOnHomepage: true}, nil
}

func (m *MockCategoryStore) UpdateCategory(ctx context.Context, id uint, p CategoryPayload) error {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, id, p)
	}
	return nil
}

// MockProjectStore is a mock implementation of ProjectStore
type MockProjectStore struct {
	FetchProjectFunc  func(ctx context.Context, id uint) (*ProjectDraft, error)
	UpdateProjectFunc func(ctx context.Context, id uint, p ProjectPayload) error
}

func (m *MockProjectStore) FetchProject(ctx context.Context, id uint) (*ProjectDraft, error) {
	if m.FetchProjectFunc != nil {
		return m.FetchProjectFunc(ctx, id)
	}
	return &ProjectDraft{HeroParagraphs: []string{""}, Regions: []string{""}, IsActive: true}, nil
}

func (m *MockProjectStore) UpdateProject(ctx context.Context, id uint, p ProjectPayload) error {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, id, p)
	}
	return nil
}

// MockUploader is a mock implementation of ImageUploader
type MockUploader struct {
	UploadImageFunc func(ctx context.Context, f File) (string, error)
	Calls           int
}

func (m *MockUploader) UploadImage(ctx context.Context, f File) (string, error) {
	m.Calls++
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, f)
	}
	return "https://cdn.example.com/uploaded.png", nil
}

// syncOptions returns controller options with a synchronous scheduler and a
// fixed clock, so tests observe redirects and banner expiry deterministically.
func syncOptions(redirected *[]string) Options {
	return Options{
		Now: func() time.Time { return time.Unix(1700000000, 0) },
		Schedule: func(d time.Duration, fn func()) {
			fn()
		},
		Redirect: func(path string) {
			if redirected != nil {
				*redirected = append(*redirected, path)
			}
		},
	}
}
