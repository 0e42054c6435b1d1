package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"synergysphere/internal/api/middleware"
	"synergysphere/internal/dto"
	"synergysphere/internal/service"
	"synergysphere/pkg/responses"
	"synergysphere/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create 创建项目
// @Summary 创建项目
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "创建项目请求"
// @Success 201 {object} model.Project
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, project)
}

// List 项目列表
// @Summary 当前用户可见的项目列表
// @Tags Project
// @Produce json
// @Param q query string false "关键字"
// @Param status query string false "项目状态"
// @Success 200 {object} dto.PageResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var q dto.ProjectListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	resp, err := h.projectService.List(middleware.CurrentUserID(c), &q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// GetByID 项目详情
// @Summary 项目详情
// @Tags Project
// @Produce json
// @Param projectId path string true "项目ID"
// @Success 200 {object} model.Project
// @Router /projects/{projectId} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(projectID, middleware.CurrentUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, project)
}

// Update 更新项目
// @Summary 更新项目属性
// @Tags Project
// @Accept json
// @Produce json
// @Param projectId path string true "项目ID"
// @Param request body dto.UpdateProjectRequest true "更新项目请求"
// @Success 200 {object} model.Project
// @Router /projects/{projectId} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	project, err := h.projectService.Update(projectID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, project)
}

// Delete 删除项目
// @Summary 删除项目及其关联数据
// @Tags Project
// @Param projectId path string true "项目ID"
// @Success 204
// @Router /projects/{projectId} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	if err := h.projectService.Delete(projectID, middleware.CurrentUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}
