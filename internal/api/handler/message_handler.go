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

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Create 发布消息
// @Summary 在讨论主题下发布消息或回复
// @Tags Message
// @Accept json
// @Produce json
// @Param threadId path string true "主题ID"
// @Param request body dto.CreateMessageRequest true "发布消息请求"
// @Success 201 {object} dto.MessageItem
// @Router /threads/{threadId}/messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	threadID, ok := pathID(c, "threadId")
	if !ok {
		return
	}

	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.messageService.Create(threadID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, item)
}

// List 消息列表
// @Summary 讨论主题消息列表
// @Tags Message
// @Produce json
// @Param threadId path string true "主题ID"
// @Param parent_id query string false "父消息ID"
// @Success 200 {object} dto.PageResponse
// @Router /threads/{threadId}/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	threadID, ok := pathID(c, "threadId")
	if !ok {
		return
	}

	var q dto.MessageListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}
	if q.ParentID != "" && !utils.IsUUID(q.ParentID) {
		responses.ErrorWithCode(c, http.StatusBadRequest, "Invalid parent_id")
		return
	}

	resp, err := h.messageService.ListByThread(threadID, middleware.CurrentUserID(c), &q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// Update 编辑消息
// @Summary 编辑讨论消息
// @Tags Message
// @Accept json
// @Produce json
// @Param messageId path string true "消息ID"
// @Param request body dto.UpdateMessageRequest true "编辑消息请求"
// @Success 200 {object} dto.MessageItem
// @Router /messages/{messageId} [patch]
func (h *MessageHandler) Update(c *gin.Context) {
	messageID, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.messageService.Update(messageID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, item)
}

// Delete 删除消息
// @Summary 删除讨论消息
// @Tags Message
// @Param messageId path string true "消息ID"
// @Success 204
// @Router /messages/{messageId} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	messageID, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	if err := h.messageService.Delete(messageID, middleware.CurrentUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}
