package repository

import (
	"context"

	"gorm.io/gorm"

	"content-admin-api/internal/domain"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uint) (*domain.Project, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Project, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*domain.Project, error)
	FindByCategoryID(ctx context.Context, categoryID uint, activeOnly bool) ([]*domain.Project, error)
	FindFeatured(ctx context.Context) ([]*domain.Project, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Project, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uint) error
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a project by its ID, with its category preloaded
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug finds a project by its URL slug
func (r *projectRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll returns all projects ordered by most recently updated
func (r *projectRepositoryImpl) FindAll(ctx context.Context, activeOnly bool) ([]*domain.Project, error) {
	var projects []*domain.Project
	query := r.db.WithContext(ctx).
		Preload("Category").
		Order("updated_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByCategoryID returns all projects in a category
func (r *projectRepositoryImpl) FindByCategoryID(ctx context.Context, categoryID uint, activeOnly bool) ([]*domain.Project, error) {
	var projects []*domain.Project
	query := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindFeatured returns active projects flagged as featured
func (r *projectRepositoryImpl) FindFeatured(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("updated_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByIDs finds projects by their IDs. Used to resolve related project
// references, which are stored as int64 in the JSONB column.
func (r *projectRepositoryImpl) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Project, error) {
	if len(ids) == 0 {
		return []*domain.Project{}, nil
	}

	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ExistsBySlug reports whether another project already uses the slug
func (r *projectRepositoryImpl) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves all fields of the project
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a project by ID
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Project{}, id).Error; err != nil {
		return err
	}
	return nil
}
