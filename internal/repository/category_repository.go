package repository

import (
	"context"

	"gorm.io/gorm"

	"content-admin-api/internal/domain"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	FindHomepage(ctx context.Context) ([]*domain.Category, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uint) error
}

// categoryRepositoryImpl is the GORM implementation of CategoryRepository
type categoryRepositoryImpl struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// Create creates a new category
func (r *categoryRepositoryImpl) Create(ctx context.Context, category *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a category by its ID, with its projects preloaded
func (r *categoryRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).
		Preload("Projects").
		First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindBySlug finds a category by its URL slug
func (r *categoryRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).
		Preload("Projects", "is_active = ?", true).
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAll returns all categories ordered by name
func (r *categoryRepositoryImpl) FindAll(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	var categories []*domain.Category
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindHomepage returns active categories flagged for the homepage
func (r *categoryRepositoryImpl) FindHomepage(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND show_on_homepage = ?", true, true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ExistsBySlug reports whether another category already uses the slug
func (r *categoryRepositoryImpl) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves all fields of the category
func (r *categoryRepositoryImpl) Update(ctx context.Context, category *domain.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a category by ID
func (r *categoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Category{}, id).Error; err != nil {
		return err
	}
	return nil
}
