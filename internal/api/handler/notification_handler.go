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

type NotificationHandler struct {
	notifyService service.NotificationService
}

func NewNotificationHandler(notifyService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifyService: notifyService}
}

// List 通知列表
// @Summary 当前用户通知列表
// @Tags Notification
// @Produce json
// @Param is_read query bool false "是否已读"
// @Param type query string false "通知类型"
// @Success 200 {object} dto.PageResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	var q dto.NotificationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}
	if q.ProjectID != "" && !utils.IsUUID(q.ProjectID) {
		responses.ErrorWithCode(c, http.StatusBadRequest, "Invalid project_id")
		return
	}
	if q.TaskID != "" && !utils.IsUUID(q.TaskID) {
		responses.ErrorWithCode(c, http.StatusBadRequest, "Invalid task_id")
		return
	}

	resp, err := h.notifyService.List(middleware.CurrentUserID(c), &q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// MarkRead 单条已读
// @Summary 标记通知为已读
// @Tags Notification
// @Param id path string true "通知ID"
// @Success 204
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.notifyService.MarkRead(id, middleware.CurrentUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}

// MarkAllRead 批量已读
// @Summary 按条件批量标记已读
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.MarkAllReadRequest false "过滤条件"
// @Success 200 {object} dto.MarkAllReadResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	var req dto.MarkAllReadRequest
	// 空请求体等同无过滤条件
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
			return
		}
	}

	updated, err := h.notifyService.MarkAllRead(middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, dto.MarkAllReadResponse{Updated: updated})
}
