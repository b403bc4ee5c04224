package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"content-admin-api/internal/dto"
	"content-admin-api/internal/response"
	"content-admin-api/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Creates a new project under an existing category
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project create request"
// @Success      201 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Slug already in use"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, project)
}

// ListProjects godoc
// @Summary      List projects
// @Description  Lists projects, optionally filtered by category or active state
// @Tags         projects
// @Produce      json
// @Param        activeOnly query bool false "Only active projects"
// @Param        categoryId query int false "Restrict to one category"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ProjectResponse} "Projects"
// @Failure      400 {object} response.ErrorResponse "Invalid category id"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	if categoryIDStr := c.Query("categoryId"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil || categoryID == 0 {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid categoryId")
			return
		}

		projects, err := h.projectService.ListProjectsByCategory(c.Request.Context(), uint(categoryID), activeOnly)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		response.SendSuccess(c, http.StatusOK, projects)
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), activeOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, projects)
}

// GetProject godoc
// @Summary      Get a project
// @Description  Returns one project by id
// @Tags         projects
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project"
// @Failure      400 {object} response.ErrorResponse "Invalid id"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseRecordID(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// GetRelatedProjects godoc
// @Summary      Get related projects
// @Description  Returns the projects a project references, skipping stale references
// @Tags         projects
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ProjectResponse} "Related projects"
// @Failure      400 {object} response.ErrorResponse "Invalid id"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /projects/{projectId}/related [get]
func (h *ProjectHandler) GetRelatedProjects(c *gin.Context) {
	id, ok := parseRecordID(c, "projectId")
	if !ok {
		return
	}

	projects, err := h.projectService.GetRelatedProjects(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, projects)
}

// UpdateProject godoc
// @Summary      Update a project
// @Description  Updates a project directly, outside of an edit session
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Param        request body dto.UpdateProjectRequest true "Project update request"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Failure      409 {object} response.ErrorResponse "Slug already in use"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseRecordID(c, "projectId")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Deletes a project
// @Tags         projects
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Success      204 "Project deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid id"
// @Failure      404 {object} response.ErrorResponse "Project not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseRecordID(c, "projectId")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendNoContent(c)
}
