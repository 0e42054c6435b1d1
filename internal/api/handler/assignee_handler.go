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

type AssigneeHandler struct {
	assigneeService service.AssigneeService
}

func NewAssigneeHandler(assigneeService service.AssigneeService) *AssigneeHandler {
	return &AssigneeHandler{assigneeService: assigneeService}
}

// List 受派人列表
// @Summary 任务受派人列表
// @Tags Assignee
// @Produce json
// @Param taskId path string true "任务ID"
// @Success 200 {object} dto.ItemsResponse
// @Router /tasks/{taskId}/assignees [get]
func (h *AssigneeHandler) List(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	items, err := h.assigneeService.List(taskID, middleware.CurrentUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, dto.ItemsResponse{Items: items})
}

// Add 批量指派
// @Summary 批量指派任务受派人
// @Tags Assignee
// @Accept json
// @Produce json
// @Param taskId path string true "任务ID"
// @Param request body dto.AddAssigneesRequest true "指派请求"
// @Success 201 {object} dto.AddAssigneesResponse
// @Router /tasks/{taskId}/assignees [post]
func (h *AssigneeHandler) Add(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req dto.AddAssigneesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	resp, err := h.assigneeService.Add(taskID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	// 全部已指派或被过滤时无新增, 返回 200
	if resp.Summary.Inserted > 0 {
		responses.Created(c, resp)
		return
	}
	responses.OK(c, resp)
}

// Remove 移除受派人
// @Summary 移除任务受派人
// @Tags Assignee
// @Param taskId path string true "任务ID"
// @Param userId path string true "用户ID"
// @Success 204
// @Router /tasks/{taskId}/assignees/{userId} [delete]
func (h *AssigneeHandler) Remove(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.assigneeService.Remove(taskID, middleware.CurrentUserID(c), userID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}
