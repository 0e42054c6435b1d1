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

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create 创建任务
// @Summary 创建任务并指派初始受派人
// @Tags Task
// @Accept json
// @Produce json
// @Param projectId path string true "项目ID"
// @Param request body dto.CreateTaskRequest true "创建任务请求"
// @Success 201 {object} model.Task
// @Router /projects/{projectId}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	task, err := h.taskService.Create(projectID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, task)
}

// List 任务列表
// @Summary 项目任务列表
// @Tags Task
// @Produce json
// @Param projectId path string true "项目ID"
// @Param q query string false "关键字"
// @Param status query string false "任务状态"
// @Param is_archived query bool false "是否归档"
// @Success 200 {object} dto.PageResponse
// @Router /projects/{projectId}/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var q dto.TaskListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	resp, err := h.taskService.ListByProject(projectID, middleware.CurrentUserID(c), &q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// GetByID 任务详情
// @Summary 任务详情
// @Tags Task
// @Produce json
// @Param taskId path string true "任务ID"
// @Success 200 {object} model.Task
// @Router /tasks/{taskId} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(taskID, middleware.CurrentUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, task)
}

// Update 更新任务
// @Summary 更新任务属性
// @Tags Task
// @Accept json
// @Produce json
// @Param taskId path string true "任务ID"
// @Param request body dto.UpdateTaskRequest true "更新任务请求"
// @Success 200 {object} model.Task
// @Router /tasks/{taskId} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	task, err := h.taskService.Update(taskID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, task)
}

// Delete 删除任务
// @Summary 删除任务
// @Tags Task
// @Param taskId path string true "任务ID"
// @Success 204
// @Router /tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.Delete(taskID, middleware.CurrentUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}

// ListMine 我的任务
// @Summary 指派给当前用户的任务
// @Tags Task
// @Produce json
// @Param project_id query string false "项目ID"
// @Param status query string false "任务状态"
// @Success 200 {object} dto.PageResponse
// @Router /me/tasks [get]
func (h *TaskHandler) ListMine(c *gin.Context) {
	var q dto.MyTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}
	if q.ProjectID != "" && !utils.IsUUID(q.ProjectID) {
		responses.ErrorWithCode(c, http.StatusBadRequest, "Invalid project_id")
		return
	}

	resp, err := h.taskService.ListMine(middleware.CurrentUserID(c), &q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}
