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

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 发布评论
// @Summary 在任务下发布评论或回复
// @Tags Comment
// @Accept json
// @Produce json
// @Param taskId path string true "任务ID"
// @Param request body dto.CreateCommentRequest true "发布评论请求"
// @Success 201 {object} dto.CommentItem
// @Router /tasks/{taskId}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.commentService.Create(taskID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, item)
}

// List 评论列表
// @Summary 任务评论列表
// @Tags Comment
// @Produce json
// @Param taskId path string true "任务ID"
// @Param parent_id query string false "父评论ID"
// @Success 200 {object} dto.PageResponse
// @Router /tasks/{taskId}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var q dto.CommentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}
	if q.ParentID != "" && !utils.IsUUID(q.ParentID) {
		responses.ErrorWithCode(c, http.StatusBadRequest, "Invalid parent_id")
		return
	}

	resp, err := h.commentService.ListByTask(taskID, middleware.CurrentUserID(c), &q)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, resp)
}

// Update 编辑评论
// @Summary 编辑评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param commentId path string true "评论ID"
// @Param request body dto.UpdateCommentRequest true "编辑评论请求"
// @Success 200 {object} dto.CommentItem
// @Router /task-comments/{commentId} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.commentService.Update(commentID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, item)
}

// Delete 删除评论
// @Summary 删除评论
// @Tags Comment
// @Param commentId path string true "评论ID"
// @Success 204
// @Router /task-comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.Delete(commentID, middleware.CurrentUserID(c)); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}
