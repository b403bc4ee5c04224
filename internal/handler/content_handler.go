package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-admin-api/internal/response"
	"content-admin-api/internal/service"
)

// ContentHandler serves the read-only endpoints the public site renders from.
// These require no authentication and lean on the Redis cache.
type ContentHandler struct {
	categoryService service.CategoryService
	projectService  service.ProjectService
}

func NewContentHandler(categoryService service.CategoryService, projectService service.ProjectService) *ContentHandler {
	return &ContentHandler{
		categoryService: categoryService,
		projectService:  projectService,
	}
}

// GetHomepage godoc
// @Summary      Homepage categories
// @Description  Returns the active categories flagged for the homepage
// @Tags         public
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.CategoryResponse} "Homepage categories"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /public/homepage [get]
func (h *ContentHandler) GetHomepage(c *gin.Context) {
	categories, err := h.categoryService.GetHomepageCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, categories)
}

// GetFeaturedProjects godoc
// @Summary      Featured projects
// @Description  Returns the active projects flagged as featured
// @Tags         public
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.ProjectResponse} "Featured projects"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /public/featured [get]
func (h *ContentHandler) GetFeaturedProjects(c *gin.Context) {
	projects, err := h.projectService.GetFeaturedProjects(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, projects)
}

// GetCategoryBySlug godoc
// @Summary      Category page content
// @Description  Returns one category and its active projects by slug
// @Tags         public
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse} "Category"
// @Failure      404 {object} response.ErrorResponse "Category not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /public/categories/{slug} [get]
func (h *ContentHandler) GetCategoryBySlug(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.categoryService.GetCategoryBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, category)
}

// GetProjectBySlug godoc
// @Summary      Project page content
// @Description  Returns one project by slug
// @Tags         public
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /public/projects/{slug} [get]
func (h *ContentHandler) GetProjectBySlug(c *gin.Context) {
	slug := c.Param("slug")

	project, err := h.projectService.GetProjectBySlug(c.Request.Context(), slug)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}
