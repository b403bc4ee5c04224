package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-admin-api/internal/domain"
	"content-admin-api/internal/dto"
	"content-admin-api/internal/metrics"
	"content-admin-api/internal/repository"
	"content-admin-api/internal/response"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]dto.CategoryResponse, error)
	GetHomepageCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// categoryServiceImpl is the implementation of CategoryService
type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	projectRepo  repository.ProjectRepository
	cache        ContentCache
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository, projectRepo repository.ProjectRepository, cache ContentCache, m *metrics.Metrics, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		projectRepo:  projectRepo,
		cache:        cache,
		metrics:      m,
		logger:       logger,
	}
}

// CreateCategory creates a new category
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsBySlug(ctx, req.Slug, 0)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check slug uniqueness", err.Error())
	}
	if exists {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A category with this slug already exists", "")
	}

	category := &domain.Category{
		Name:            req.Name,
		Slug:            req.Slug,
		Tagline:         req.Tagline,
		Heading:         req.Heading,
		Paragraphs:      req.Paragraphs,
		Regions:         req.Regions,
		ThumbnailImage:  req.ThumbnailImage,
		OGImage:         req.OGImage,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		IsActive:        true,
		ShowOnHomepage:  true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ShowOnHomepage != nil {
		category.ShowOnHomepage = *req.ShowOnHomepage
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create category", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCategoryCreated()
	}
	s.invalidateCache(ctx)
	s.logger.Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("slug", category.Slug),
	)

	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// GetCategory fetches a single category by ID
func (s *categoryServiceImpl) GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Category not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch category", err.Error())
	}

	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// GetCategoryBySlug fetches a single category by its URL slug
func (s *categoryServiceImpl) GetCategoryBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Category not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch category", err.Error())
	}

	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// ListCategories returns all categories
func (s *categoryServiceImpl) ListCategories(ctx context.Context, activeOnly bool) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch categories", err.Error())
	}
	return dto.ToCategoryResponses(categories), nil
}

// GetHomepageCategories returns active categories flagged for the homepage,
// serving from the content cache when possible
func (s *categoryServiceImpl) GetHomepageCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var cached []dto.CategoryResponse
	if s.cache != nil && s.cache.Get(ctx, cacheKeyHomepage, &cached) {
		return cached, nil
	}

	categories, err := s.categoryRepo.FindHomepage(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch categories", err.Error())
	}

	result := dto.ToCategoryResponses(categories)
	if s.cache != nil {
		s.cache.Set(ctx, cacheKeyHomepage, result)
	}
	return result, nil
}

// UpdateCategory applies a partial update to a category
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Category not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch category", err.Error())
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		exists, err := s.categoryRepo.ExistsBySlug(ctx, *req.Slug, id)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check slug uniqueness", err.Error())
		}
		if exists {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A category with this slug already exists", "")
		}
		category.Slug = *req.Slug
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Tagline != nil {
		category.Tagline = *req.Tagline
	}
	if req.Heading != nil {
		category.Heading = *req.Heading
	}
	if req.Paragraphs != nil {
		category.Paragraphs = req.Paragraphs
	}
	if req.Regions != nil {
		category.Regions = req.Regions
	}
	if req.ThumbnailImage != nil {
		category.ThumbnailImage = *req.ThumbnailImage
	}
	if req.OGImage != nil {
		category.OGImage = *req.OGImage
	}
	if req.MetaTitle != nil {
		category.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		category.MetaDescription = *req.MetaDescription
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ShowOnHomepage != nil {
		category.ShowOnHomepage = *req.ShowOnHomepage
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update category", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCategoryUpdated()
	}
	s.invalidateCache(ctx)
	s.logger.Info("Category updated", zap.Uint("category_id", id))

	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// DeleteCategory deletes a category. Categories that still contain projects
// cannot be deleted.
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Category not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch category", err.Error())
	}

	projects, err := s.projectRepo.FindByCategoryID(ctx, id, false)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check category projects", err.Error())
	}
	if len(projects) > 0 {
		return response.NewValidationError("Cannot delete a category that still contains projects", "")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete category", err.Error())
	}

	s.invalidateCache(ctx)
	s.logger.Info("Category deleted", zap.Uint("category_id", id))
	return nil
}

func (s *categoryServiceImpl) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, cacheKeyHomepage)
	}
}
