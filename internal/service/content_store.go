package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-admin-api/internal/form"
	"content-admin-api/internal/repository"
)

// KeyResolver maps a public file URL back to its object storage key.
// Implemented by the S3 client.
type KeyResolver interface {
	KeyFromURL(url string) (string, bool)
}

// SiteRevalidator asks the public site frontend to regenerate cached pages.
// Implemented by the revalidation client.
type SiteRevalidator interface {
	RevalidatePaths(ctx context.Context, paths []string) error
}

// ContentStore is the persistence collaborator behind the admin edit
// sessions. It implements both form.CategoryStore and form.ProjectStore.
// Errors returned from the update methods surface verbatim as banners in the
// editor, so their messages are written for the admin user.
type ContentStore struct {
	categoryRepo repository.CategoryRepository
	projectRepo  repository.ProjectRepository
	uploadRepo   repository.UploadRepository
	keys         KeyResolver
	cache        ContentCache
	revalidator  SiteRevalidator
	logger       *zap.Logger
}

// NewContentStore creates the store collaborator for edit sessions. keys,
// cache and revalidator may be nil when the matching backend is unavailable.
func NewContentStore(categoryRepo repository.CategoryRepository, projectRepo repository.ProjectRepository, uploadRepo repository.UploadRepository, keys KeyResolver, cache ContentCache, revalidator SiteRevalidator, logger *zap.Logger) *ContentStore {
	return &ContentStore{
		categoryRepo: categoryRepo,
		projectRepo:  projectRepo,
		uploadRepo:   uploadRepo,
		keys:         keys,
		cache:        cache,
		revalidator:  revalidator,
		logger:       logger,
	}
}

var _ form.CategoryStore = (*ContentStore)(nil)
var _ form.ProjectStore = (*ContentStore)(nil)

// FetchCategory loads a category record as an editable draft
func (s *ContentStore) FetchCategory(ctx context.Context, id uint) (*form.CategoryDraft, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, form.ErrNotFound
		}
		return nil, err
	}
	return form.NewCategoryDraft(category), nil
}

// UpdateCategory persists a submitted category draft
func (s *ContentStore) UpdateCategory(ctx context.Context, id uint, p form.CategoryPayload) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load category for submit", zap.Uint("category_id", id), zap.Error(err))
		return errors.New("Failed to save category")
	}

	if p.Slug != category.Slug {
		exists, err := s.categoryRepo.ExistsBySlug(ctx, p.Slug, id)
		if err != nil {
			s.logger.Error("Slug check failed", zap.Uint("category_id", id), zap.Error(err))
			return errors.New("Failed to save category")
		}
		if exists {
			return errors.New("A category with this slug already exists")
		}
	}

	category.Name = p.Name
	category.Slug = p.Slug
	category.Tagline = p.Tagline
	category.Heading = p.Heading
	category.Paragraphs = p.Paragraphs
	category.Regions = p.Regions
	category.ThumbnailImage = p.ThumbnailImage
	category.OGImage = p.OGImage
	category.MetaTitle = p.MetaTitle
	category.MetaDescription = p.MetaDescription
	category.IsActive = p.IsActive
	category.ShowOnHomepage = p.ShowOnHomepage

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.logger.Error("Failed to save category", zap.Uint("category_id", id), zap.Error(err))
		return errors.New("Failed to save category")
	}

	s.confirmImageUploads(ctx, p.ThumbnailImage, p.OGImage)
	s.invalidate(ctx)
	s.revalidate(ctx, "/", "/categories/"+category.Slug)
	s.logger.Info("Category draft submitted", zap.Uint("category_id", id))
	return nil
}

// FetchProject loads a project record as an editable draft
func (s *ContentStore) FetchProject(ctx context.Context, id uint) (*form.ProjectDraft, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, form.ErrNotFound
		}
		return nil, err
	}
	return form.NewProjectDraft(project), nil
}

// UpdateProject persists a submitted project draft
func (s *ContentStore) UpdateProject(ctx context.Context, id uint, p form.ProjectPayload) error {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load project for submit", zap.Uint("project_id", id), zap.Error(err))
		return errors.New("Failed to save project")
	}

	if _, err := s.categoryRepo.FindByID(ctx, uint(p.CategoryID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("The selected category no longer exists")
		}
		s.logger.Error("Category check failed", zap.Int("category_id", p.CategoryID), zap.Error(err))
		return errors.New("Failed to save project")
	}

	if p.Slug != project.Slug {
		exists, err := s.projectRepo.ExistsBySlug(ctx, p.Slug, id)
		if err != nil {
			s.logger.Error("Slug check failed", zap.Uint("project_id", id), zap.Error(err))
			return errors.New("Failed to save project")
		}
		if exists {
			return errors.New("A project with this slug already exists")
		}
	}

	if len(p.RelatedProjects) > 0 {
		found, err := s.projectRepo.FindByIDs(ctx, p.RelatedProjects)
		if err != nil {
			s.logger.Error("Related project check failed", zap.Uint("project_id", id), zap.Error(err))
			return errors.New("Failed to save project")
		}
		if len(found) != len(p.RelatedProjects) {
			return errors.New("One or more related projects no longer exist")
		}
	}

	project.CategoryID = uint(p.CategoryID)
	project.Name = p.Name
	project.Slug = p.Slug
	project.Tagline = p.Tagline
	project.Heading = p.Heading
	project.HeroParagraphs = p.HeroParagraphs
	project.Regions = p.Regions
	project.RelatedProjects = p.RelatedProjects
	project.ThumbnailImage = p.ThumbnailImage
	project.OGImage = p.OGImage
	project.MetaTitle = p.MetaTitle
	project.MetaDescription = p.MetaDescription
	project.IsFeatured = p.IsFeatured
	project.IsActive = p.IsActive

	if err := s.projectRepo.Update(ctx, project); err != nil {
		s.logger.Error("Failed to save project", zap.Uint("project_id", id), zap.Error(err))
		return errors.New("Failed to save project")
	}

	s.confirmImageUploads(ctx, p.ThumbnailImage, p.OGImage)
	s.invalidate(ctx)
	s.revalidate(ctx, "/", "/projects/"+project.Slug)
	s.logger.Info("Project draft submitted", zap.Uint("project_id", id))
	return nil
}

// confirmImageUploads promotes the TEMP upload records behind the submitted
// image URLs, so the cleanup job leaves them alone. Failures are logged only;
// the record save already succeeded.
func (s *ContentStore) confirmImageUploads(ctx context.Context, urls ...string) {
	if s.keys == nil || s.uploadRepo == nil {
		return
	}

	var fileKeys []string
	for _, url := range urls {
		if url == "" {
			continue
		}
		if key, ok := s.keys.KeyFromURL(url); ok {
			fileKeys = append(fileKeys, key)
		}
	}
	if len(fileKeys) == 0 {
		return
	}

	if err := s.uploadRepo.ConfirmByFileKeys(ctx, fileKeys); err != nil {
		s.logger.Warn("Failed to confirm uploads", zap.Strings("file_keys", fileKeys), zap.Error(err))
	}
}

func (s *ContentStore) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, cacheKeyHomepage, cacheKeyFeatured)
	}
}

func (s *ContentStore) revalidate(ctx context.Context, paths ...string) {
	if s.revalidator == nil {
		return
	}
	if err := s.revalidator.RevalidatePaths(ctx, paths); err != nil {
		s.logger.Warn("Site revalidation failed", zap.Strings("paths", paths), zap.Error(err))
	}
}
