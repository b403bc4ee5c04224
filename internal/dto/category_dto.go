package dto

import (
	"time"

	"content-admin-api/internal/domain"
)

// CreateCategoryRequest represents the request to create a new category
// @Description Request body for creating a marketing category
type CreateCategoryRequest struct {
	Name            string   `json:"name" binding:"required,min=2,max=100" example:"Cloud Infrastructure"`
	Slug            string   `json:"slug" binding:"required,min=2,max=100" example:"cloud-infrastructure"`
	Tagline         string   `json:"tagline" binding:"max=200" example:"Build on solid ground"`
	Heading         string   `json:"heading" binding:"max=200"`
	Paragraphs      []string `json:"paragraphs"`
	Regions         []string `json:"regions"`
	ThumbnailImage  string   `json:"thumbnailImage"`
	OGImage         string   `json:"ogImage"`
	MetaTitle       string   `json:"metaTitle" binding:"max=200"`
	MetaDescription string   `json:"metaDescription" binding:"max=500"`
	IsActive        *bool    `json:"isActive"`
	ShowOnHomepage  *bool    `json:"showOnHomepage"`
}

// UpdateCategoryRequest represents the request to update a category.
// All fields are optional; only provided fields are changed.
type UpdateCategoryRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Slug            *string  `json:"slug" binding:"omitempty,min=2,max=100"`
	Tagline         *string  `json:"tagline" binding:"omitempty,max=200"`
	Heading         *string  `json:"heading" binding:"omitempty,max=200"`
	Paragraphs      []string `json:"paragraphs"`
	Regions         []string `json:"regions"`
	ThumbnailImage  *string  `json:"thumbnailImage"`
	OGImage         *string  `json:"ogImage"`
	MetaTitle       *string  `json:"metaTitle" binding:"omitempty,max=200"`
	MetaDescription *string  `json:"metaDescription" binding:"omitempty,max=500"`
	IsActive        *bool    `json:"isActive"`
	ShowOnHomepage  *bool    `json:"showOnHomepage"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID              uint      `json:"categoryId" example:"12"`
	Name            string    `json:"name" example:"Cloud Infrastructure"`
	Slug            string    `json:"slug" example:"cloud-infrastructure"`
	Tagline         string    `json:"tagline"`
	Heading         string    `json:"heading"`
	Paragraphs      []string  `json:"paragraphs"`
	Regions         []string  `json:"regions"`
	ThumbnailImage  string    `json:"thumbnailImage"`
	OGImage         string    `json:"ogImage"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	IsActive        bool      `json:"isActive"`
	ShowOnHomepage  bool      `json:"showOnHomepage"`
	ProjectCount    int       `json:"projectCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain category to its response form
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Tagline:         c.Tagline,
		Heading:         c.Heading,
		Paragraphs:      c.Paragraphs,
		Regions:         c.Regions,
		ThumbnailImage:  c.ThumbnailImage,
		OGImage:         c.OGImage,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		IsActive:        c.IsActive,
		ShowOnHomepage:  c.ShowOnHomepage,
		ProjectCount:    len(c.Projects),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCategoryResponses converts a list of domain categories
func ToCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
