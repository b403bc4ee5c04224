package dto

import (
	"time"

	"content-admin-api/internal/domain"
)

// CreateProjectRequest represents the request to create a new project
// @Description Request body for creating a showcase project under a category
// @Description relatedProjects may reference at most 3 other projects
type CreateProjectRequest struct {
	CategoryID      uint     `json:"categoryId" binding:"required" example:"12"`
	Name            string   `json:"name" binding:"required,min=2,max=100" example:"Global Platform Rebuild"`
	Slug            string   `json:"slug" binding:"required,min=2,max=100" example:"global-platform-rebuild"`
	Tagline         string   `json:"tagline" binding:"max=200"`
	Heading         string   `json:"heading" binding:"max=200"`
	HeroParagraphs  []string `json:"heroParagraphs"`
	Regions         []string `json:"regions"`
	RelatedProjects []int64  `json:"relatedProjects" binding:"omitempty,max=3"`
	ThumbnailImage  string   `json:"thumbnailImage"`
	OGImage         string   `json:"ogImage"`
	MetaTitle       string   `json:"metaTitle" binding:"max=200"`
	MetaDescription string   `json:"metaDescription" binding:"max=500"`
	IsFeatured      *bool    `json:"isFeatured"`
	IsActive        *bool    `json:"isActive"`
}

// UpdateProjectRequest represents the request to update a project.
// All fields are optional; only provided fields are changed.
type UpdateProjectRequest struct {
	CategoryID      *uint    `json:"categoryId"`
	Name            *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Slug            *string  `json:"slug" binding:"omitempty,min=2,max=100"`
	Tagline         *string  `json:"tagline" binding:"omitempty,max=200"`
	Heading         *string  `json:"heading" binding:"omitempty,max=200"`
	HeroParagraphs  []string `json:"heroParagraphs"`
	Regions         []string `json:"regions"`
	RelatedProjects []int64  `json:"relatedProjects" binding:"omitempty,max=3"`
	ThumbnailImage  *string  `json:"thumbnailImage"`
	OGImage         *string  `json:"ogImage"`
	MetaTitle       *string  `json:"metaTitle" binding:"omitempty,max=200"`
	MetaDescription *string  `json:"metaDescription" binding:"omitempty,max=500"`
	IsFeatured      *bool    `json:"isFeatured"`
	IsActive        *bool    `json:"isActive"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID              uint      `json:"projectId" example:"42"`
	CategoryID      uint      `json:"categoryId" example:"12"`
	CategoryName    string    `json:"categoryName,omitempty"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Tagline         string    `json:"tagline"`
	Heading         string    `json:"heading"`
	HeroParagraphs  []string  `json:"heroParagraphs"`
	Regions         []string  `json:"regions"`
	RelatedProjects []int64   `json:"relatedProjects"`
	ThumbnailImage  string    `json:"thumbnailImage"`
	OGImage         string    `json:"ogImage"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	IsFeatured      bool      `json:"isFeatured"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToProjectResponse converts a domain project to its response form
func ToProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		Name:            p.Name,
		Slug:            p.Slug,
		Tagline:         p.Tagline,
		Heading:         p.Heading,
		HeroParagraphs:  p.HeroParagraphs,
		Regions:         p.Regions,
		RelatedProjects: p.RelatedProjects,
		ThumbnailImage:  p.ThumbnailImage,
		OGImage:         p.OGImage,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		IsFeatured:      p.IsFeatured,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Category.ID != 0 {
		resp.CategoryName = p.Category.Name
	}
	return resp
}

// ToProjectResponses converts a list of domain projects
func ToProjectResponses(projects []*domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectResponse(p))
	}
	return out
}
