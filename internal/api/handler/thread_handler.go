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

type ThreadHandler struct {
	threadService service.ThreadService
}

func NewThreadHandler(threadService service.ThreadService) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// Create 创建讨论主题
// @Summary 在项目下创建讨论主题
// @Tags Thread
// @Accept json
// @Produce json
// @Param projectId path string true "项目ID"
// @Param request body dto.CreateThreadRequest true "创建主题请求"
// @Success 201 {object} dto.ThreadItem
// @Router /projects/{projectId}/threads [post]
func (h *ThreadHandler) Create(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.threadService.Create(projectID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, item)
}

// List 讨论主题列表
// @Summary 项目讨论主题列表
// @Tags Thread
// @Produce json
// @Param projectId path string true "项目ID"
// @Param q query string false "标题关键字"
// @Success 200 {object} dto.PageResponse
// @Router /projects/{projectId}/threads [get]
func (h *ThreadHandler) List(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var q dto.ThreadListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	resp, err := h.threadService.ListByProject(projectID, middleware.CurrentUserID(c), &q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// GetByID 主题详情
// @Summary 讨论主题详情
// @Tags Thread
// @Produce json
// @Param threadId path string true "主题ID"
// @Success 200 {object} dto.ThreadItem
// @Router /threads/{threadId} [get]
func (h *ThreadHandler) GetByID(c *gin.Context) {
	threadID, ok := pathID(c, "threadId")
	if !ok {
		return
	}

	item, err := h.threadService.GetByID(threadID, middleware.CurrentUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, item)
}

// Update 重命名主题
// @Summary 重命名讨论主题
// @Tags Thread
// @Accept json
// @Produce json
// @Param threadId path string true "主题ID"
// @Param request body dto.UpdateThreadRequest true "重命名请求"
// @Success 200 {object} dto.ThreadItem
// @Router /threads/{threadId} [patch]
func (h *ThreadHandler) Update(c *gin.Context) {
	threadID, ok := pathID(c, "threadId")
	if !ok {
		return
	}

	var req dto.UpdateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.threadService.Update(threadID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, item)
}

// Delete 删除主题
// @Summary 删除讨论主题及其消息
// @Tags Thread
// @Param threadId path string true "主题ID"
// @Success 204
// @Router /threads/{threadId} [delete]
func (h *ThreadHandler) Delete(c *gin.Context) {
	threadID, ok := pathID(c, "threadId")
	if !ok {
		return
	}

	if err := h.threadService.Delete(threadID, middleware.CurrentUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}
