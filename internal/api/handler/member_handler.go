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

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Add 添加成员
// @Summary 添加项目成员
// @Tags Member
// @Accept json
// @Produce json
// @Param projectId path string true "项目ID"
// @Param request body dto.AddMemberRequest true "添加成员请求"
// @Success 201 {object} dto.MemberItem
// @Router /projects/{projectId}/members [post]
func (h *MemberHandler) Add(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.memberService.Add(projectID, middleware.CurrentUserID(c), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, item)
}

// List 成员列表
// @Summary 项目成员列表
// @Tags Member
// @Produce json
// @Param projectId path string true "项目ID"
// @Success 200 {object} dto.ItemsResponse
// @Router /projects/{projectId}/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	items, err := h.memberService.List(projectID, middleware.CurrentUserID(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, dto.ItemsResponse{Items: items})
}

// Get 成员详情
// @Summary 项目成员详情
// @Tags Member
// @Produce json
// @Param projectId path string true "项目ID"
// @Param userId path string true "用户ID"
// @Success 200 {object} dto.MemberItem
// @Router /projects/{projectId}/members/{userId} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	item, err := h.memberService.Get(projectID, middleware.CurrentUserID(c), userID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, item)
}

// UpdateRole 修改成员角色
// @Summary 修改项目成员角色
// @Tags Member
// @Accept json
// @Produce json
// @Param projectId path string true "项目ID"
// @Param userId path string true "用户ID"
// @Param request body dto.UpdateMemberRequest true "修改角色请求"
// @Success 200 {object} dto.MemberItem
// @Router /projects/{projectId}/members/{userId} [patch]
func (h *MemberHandler) UpdateRole(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithCode(c, http.StatusBadRequest, utils.FormatValidationError(err))
		return
	}

	item, err := h.memberService.UpdateRole(projectID, middleware.CurrentUserID(c), userID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, item)
}

// Remove 移除成员
// @Summary 移除项目成员
// @Tags Member
// @Param projectId path string true "项目ID"
// @Param userId path string true "用户ID"
// @Success 204
// @Router /projects/{projectId}/members/{userId} [delete]
func (h *MemberHandler) Remove(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.memberService.Remove(projectID, middleware.CurrentUserID(c), userID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}
