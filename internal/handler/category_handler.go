package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-admin-api/internal/dto"
	"content-admin-api/internal/response"
	"content-admin-api/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Creates a new content category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "Category create request"
// @Success      201 {object} response.SuccessResponse{data=dto.CategoryResponse} "Category created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Slug already in use"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, category)
}

// ListCategories godoc
// @Summary      List categories
// @Description  Lists categories, optionally restricted to active ones
// @Tags         categories
// @Produce      json
// @Param        activeOnly query bool false "Only active categories"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CategoryResponse} "Categories"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	categories, err := h.categoryService.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, categories)
}

// GetCategory godoc
// @Summary      Get a category
// @Description  Returns one category by id, with its projects
// @Tags         categories
// @Produce      json
// @Param        categoryId path int true "Category ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse} "Category"
// @Failure      400 {object} response.ErrorResponse "Invalid id"
// @Failure      404 {object} response.ErrorResponse "Category not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /categories/{categoryId} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseRecordID(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Updates a category directly, outside of an edit session
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        categoryId path int true "Category ID"
// @Param        request body dto.UpdateCategoryRequest true "Category update request"
// @Success      200 {object} response.SuccessResponse{data=dto.CategoryResponse} "Category updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Category not found"
// @Failure      409 {object} response.ErrorResponse "Slug already in use"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /categories/{categoryId} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseRecordID(c, "categoryId")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Deletes a category that has no projects
// @Tags         categories
// @Produce      json
// @Param        categoryId path int true "Category ID"
// @Success      204 "Category deleted"
// @Failure      400 {object} response.ErrorResponse "Category still has projects"
// @Failure      404 {object} response.ErrorResponse "Category not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseRecordID(c, "categoryId")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendNoContent(c)
}
