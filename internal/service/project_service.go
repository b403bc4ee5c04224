package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-admin-api/internal/domain"
	"content-admin-api/internal/dto"
	"content-admin-api/internal/metrics"
	"content-admin-api/internal/repository"
	"content-admin-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id uint) (*dto.ProjectResponse, error)
	GetProjectBySlug(ctx context.Context, slug string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, activeOnly bool) ([]dto.ProjectResponse, error)
	ListProjectsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]dto.ProjectResponse, error)
	GetFeaturedProjects(ctx context.Context) ([]dto.ProjectResponse, error)
	GetRelatedProjects(ctx context.Context, id uint) ([]dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id uint) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo  repository.ProjectRepository
	categoryRepo repository.CategoryRepository
	cache        ContentCache
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, categoryRepo repository.CategoryRepository, cache ContentCache, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		metrics:      m,
		logger:       logger,
	}
}

// CreateProject creates a new project under a category
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewValidationError("Category does not exist", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check category", err.Error())
	}

	exists, err := s.projectRepo.ExistsBySlug(ctx, req.Slug, 0)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check slug uniqueness", err.Error())
	}
	if exists {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A project with this slug already exists", "")
	}

	if err := s.validateRelatedProjects(ctx, req.RelatedProjects, 0); err != nil {
		return nil, err
	}

	project := &domain.Project{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Slug:            req.Slug,
		Tagline:         req.Tagline,
		Heading:         req.Heading,
		HeroParagraphs:  req.HeroParagraphs,
		Regions:         req.Regions,
		RelatedProjects: req.RelatedProjects,
		ThumbnailImage:  req.ThumbnailImage,
		OGImage:         req.OGImage,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		IsActive:        true,
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}
	s.invalidateCache(ctx)
	s.logger.Info("Project created",
		zap.Uint("project_id", project.ID),
		zap.Uint("category_id", project.CategoryID),
		zap.String("slug", project.Slug),
	)

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// GetProject fetches a single project by ID
func (s *projectServiceImpl) GetProject(ctx context.Context, id uint) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// GetProjectBySlug fetches a single project by its URL slug
func (s *projectServiceImpl) GetProjectBySlug(ctx context.Context, slug string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// ListProjects returns all projects
func (s *projectServiceImpl) ListProjects(ctx context.Context, activeOnly bool) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}
	return dto.ToProjectResponses(projects), nil
}

// ListProjectsByCategory returns the projects under one category
func (s *projectServiceImpl) ListProjectsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByCategoryID(ctx, categoryID, activeOnly)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}
	return dto.ToProjectResponses(projects), nil
}

// GetFeaturedProjects returns featured projects for the public site, serving
// from the content cache when possible
func (s *projectServiceImpl) GetFeaturedProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	var cached []dto.ProjectResponse
	if s.cache != nil && s.cache.Get(ctx, cacheKeyFeatured, &cached) {
		return cached, nil
	}

	projects, err := s.projectRepo.FindFeatured(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	result := dto.ToProjectResponses(projects)
	if s.cache != nil {
		s.cache.Set(ctx, cacheKeyFeatured, result)
	}
	return result, nil
}

// GetRelatedProjects resolves the related project references of one project.
// Stale references to deleted projects are silently skipped.
func (s *projectServiceImpl) GetRelatedProjects(ctx context.Context, id uint) ([]dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	related, err := s.projectRepo.FindByIDs(ctx, project.RelatedProjects)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch related projects", err.Error())
	}
	return dto.ToProjectResponses(related), nil
}

// UpdateProject applies a partial update to a project
func (s *projectServiceImpl) UpdateProject(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if req.CategoryID != nil && *req.CategoryID != project.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewValidationError("Category does not exist", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check category", err.Error())
		}
		project.CategoryID = *req.CategoryID
	}
	if req.Slug != nil && *req.Slug != project.Slug {
		exists, err := s.projectRepo.ExistsBySlug(ctx, *req.Slug, id)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check slug uniqueness", err.Error())
		}
		if exists {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A project with this slug already exists", "")
		}
		project.Slug = *req.Slug
	}
	if req.RelatedProjects != nil {
		if err := s.validateRelatedProjects(ctx, req.RelatedProjects, id); err != nil {
			return nil, err
		}
		project.RelatedProjects = req.RelatedProjects
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Tagline != nil {
		project.Tagline = *req.Tagline
	}
	if req.Heading != nil {
		project.Heading = *req.Heading
	}
	if req.HeroParagraphs != nil {
		project.HeroParagraphs = req.HeroParagraphs
	}
	if req.Regions != nil {
		project.Regions = req.Regions
	}
	if req.ThumbnailImage != nil {
		project.ThumbnailImage = *req.ThumbnailImage
	}
	if req.OGImage != nil {
		project.OGImage = *req.OGImage
	}
	if req.MetaTitle != nil {
		project.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		project.MetaDescription = *req.MetaDescription
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectUpdated()
	}
	s.invalidateCache(ctx)
	s.logger.Info("Project updated", zap.Uint("project_id", id))

	resp := dto.ToProjectResponse(project)
	return &resp, nil
}

// DeleteProject deletes a project
func (s *projectServiceImpl) DeleteProject(ctx context.Context, id uint) error {
	if _, err := s.projectRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}

	s.invalidateCache(ctx)
	s.logger.Info("Project deleted", zap.Uint("project_id", id))
	return nil
}

// validateRelatedProjects checks the cap, self references, duplicates and
// existence of related project ids. selfID is 0 for a project being created.
func (s *projectServiceImpl) validateRelatedProjects(ctx context.Context, ids []int64, selfID uint) error {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > domain.MaxRelatedProjects {
		return response.NewValidationError(
			fmt.Sprintf("A project can reference at most %d related projects", domain.MaxRelatedProjects), "")
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, rid := range ids {
		if selfID != 0 && rid == int64(selfID) {
			return response.NewValidationError("A project cannot reference itself", "")
		}
		if _, dup := seen[rid]; dup {
			return response.NewValidationError("Related projects must be distinct", "")
		}
		seen[rid] = struct{}{}
	}

	found, err := s.projectRepo.FindByIDs(ctx, ids)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check related projects", err.Error())
	}
	if len(found) != len(ids) {
		return response.NewValidationError("One or more related projects do not exist", "")
	}
	return nil
}

func (s *projectServiceImpl) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, cacheKeyFeatured, cacheKeyHomepage)
	}
}
