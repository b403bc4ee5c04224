package repository

import (
	"context"
	"testing"

	"content-admin-api/internal/domain"
)

func seedCategory(t *testing.T, repo CategoryRepository) *domain.Category {
	t.Helper()
	category := &domain.Category{Name: "Cloud", Slug: "cloud", IsActive: true}
	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func TestProjectRepository_CreateAndFindByID(t *testing.T) {
	db := setupContentTestDB(t)
	category := seedCategory(t, NewCategoryRepository(db))
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := &domain.Project{
		CategoryID:      category.ID,
		Name:            "Global Platform Rebuild",
		Slug:            "global-platform-rebuild",
		HeroParagraphs:  []string{"Intro"},
		Regions:         []string{"EMEA"},
		RelatedProjects: []int64{10, 11},
		IsActive:        true,
	}
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	found, err := repo.FindByID(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to find project: %v", err)
	}
	if found.CategoryID != category.ID {
		t.Errorf("unexpected category id %d", found.CategoryID)
	}
	if found.Category.Name != "Cloud" {
		t.Errorf("category not preloaded: %+v", found.Category)
	}
	if len(found.RelatedProjects) != 2 || found.RelatedProjects[0] != 10 {
		t.Errorf("related projects not round-tripped: %v", found.RelatedProjects)
	}
}

func TestProjectRepository_FindByCategoryID(t *testing.T) {
	db := setupContentTestDB(t)
	category := seedCategory(t, NewCategoryRepository(db))
	repo := NewProjectRepository(db)
	ctx := context.Background()

	for _, p := range []*domain.Project{
		{CategoryID: category.ID, Name: "Active", Slug: "active", IsActive: true},
		{CategoryID: category.ID, Name: "Retired", Slug: "retired", IsActive: false},
		{CategoryID: category.ID + 1, Name: "Other", Slug: "other", IsActive: true},
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("failed to create project: %v", err)
		}
	}

	all, err := repo.FindByCategoryID(ctx, category.ID, false)
	if err != nil {
		t.Fatalf("FindByCategoryID failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 projects in category, got %d", len(all))
	}

	active, err := repo.FindByCategoryID(ctx, category.ID, true)
	if err != nil {
		t.Fatalf("FindByCategoryID failed: %v", err)
	}
	if len(active) != 1 || active[0].Slug != "active" {
		t.Errorf("expected only the active project, got %d", len(active))
	}
}

func TestProjectRepository_FindByIDs(t *testing.T) {
	db := setupContentTestDB(t)
	category := seedCategory(t, NewCategoryRepository(db))
	repo := NewProjectRepository(db)
	ctx := context.Background()

	var ids []int64
	for _, slug := range []string{"one", "two", "three"} {
		p := &domain.Project{CategoryID: category.ID, Name: slug, Slug: slug, IsActive: true}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("failed to create project: %v", err)
		}
		ids = append(ids, int64(p.ID))
	}

	found, err := repo.FindByIDs(ctx, ids[:2])
	if err != nil {
		t.Fatalf("FindByIDs failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 projects, got %d", len(found))
	}

	empty, err := repo.FindByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("FindByIDs with no ids failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no projects, got %d", len(empty))
	}
}

func TestProjectRepository_FindFeatured(t *testing.T) {
	db := setupContentTestDB(t)
	category := seedCategory(t, NewCategoryRepository(db))
	repo := NewProjectRepository(db)
	ctx := context.Background()

	for _, p := range []*domain.Project{
		{CategoryID: category.ID, Name: "Featured", Slug: "featured", IsFeatured: true, IsActive: true},
		{CategoryID: category.ID, Name: "Plain", Slug: "plain", IsActive: true},
		{CategoryID: category.ID, Name: "Featured inactive", Slug: "featured-inactive", IsFeatured: true, IsActive: false},
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("failed to create project: %v", err)
		}
	}

	featured, err := repo.FindFeatured(ctx)
	if err != nil {
		t.Fatalf("FindFeatured failed: %v", err)
	}
	if len(featured) != 1 || featured[0].Slug != "featured" {
		t.Errorf("expected only the active featured project, got %d", len(featured))
	}
}
